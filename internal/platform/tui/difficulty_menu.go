package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// presetBlurbs describes each preset in the selector.
var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "Gravity speeds up as you clear lines",
	config.DifficultyNormal: "Starts a notch faster",
	config.DifficultyHard:   "Starts close to top speed",
	config.DifficultyFixed:  "Level speed only, no extra scaling",
}

// DifficultyModel lets users choose a difficulty preset before a game.
type DifficultyModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	title     string
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a selector for the given mode title. The
// cursor starts on current when it names a preset, otherwise on normal.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	presets := config.Presets()
	if current == "" {
		current = config.DifficultyNormal
	}
	cursor := 0
	for i, p := range presets {
		if p == current {
			cursor = i
		}
	}

	return DifficultyModel{
		presets:   presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		title:     title,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = m.presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-7s %s", p, presetBlurbs[p])
		if i == m.cursor {
			line = menuCursor.Render(fmt.Sprintf("> %-7s %s", p, presetBlurbs[p]))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" if still choosing.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	if m.choosing {
		return ""
	}
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// DifficultyResult holds the outcome of the difficulty selector.
type DifficultyResult struct {
	Preset config.DifficultyPreset
	Back   bool
	Quit   bool
}

// RunDifficultySelector runs the preset selector for one mode.
func RunDifficultySelector(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (DifficultyResult, error) {
	model := NewDifficultyModel(title, current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return DifficultyResult{}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return DifficultyResult{Quit: true}, nil
	}

	switch {
	case m.IsQuitting():
		return DifficultyResult{Quit: true}, nil
	case m.WantsBack():
		return DifficultyResult{Back: true}, nil
	}
	return DifficultyResult{Preset: m.Selected()}, nil
}
