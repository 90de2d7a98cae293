// Package tetris registers the Tetris modes with the platform. It drives
// the rules engine from platform input and ticks, applies gravity and
// draws the well.
package tetris

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the win condition.
type Mode string

const (
	ModeMarathon Mode = "marathon" // Play until top-out
	ModeSprint   Mode = "sprint"   // Clear a fixed number of lines as fast as possible
)

// Minimum screen size: the well plus the side panel, and the title row.
const (
	minScreenW = layoutW
	minScreenH = wellH + 1
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, _ := config.ParsePreset(preset)
	difficultyPreset = p
}

// DifficultyPreset returns the preset applied on the next Reset.
func DifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// Game is one Tetris session in a given mode.
type Game struct {
	mode Mode

	engine     *core.Engine
	gravity    core.AutoDrop
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager

	tickRate int
	tick     uint64

	// Locked piece counts by kind.
	stats *intmap.Map[core.Kind, int]

	// Feedback for the most recent line clear.
	flash      string
	flashTicks int

	screenW int
	screenH int

	paused     bool
	tooSmall   bool
	won        bool
	finishTick uint64
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewSprint creates a sprint game.
func NewSprint() *Game {
	return &Game{mode: ModeSprint}
}

func init() {
	registry.Register(string(ModeMarathon), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeSprint), func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Tetris (Sprint)"
	}
	return "Tetris (Marathon)"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeSprint {
		return "Clear the target number of lines as fast as you can"
	}
	return "Play until the stack reaches the top"
}

// Reset loads the configuration and starts a new game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	preset := difficultyPreset
	if p, ok := config.ParsePreset(rc.Difficulty); ok {
		preset = p
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}

	seed := rc.Seed
	if seed == 0 {
		seed = core.DefaultSeed
	}
	if g.engine == nil {
		g.engine = core.NewEngine(seed)
	} else {
		g.engine.Reseed(seed)
	}

	g.tick = 0
	g.gravity = core.AutoDrop{Scale: g.scaleInterval}
	g.gravity.Reset(0)

	if g.stats == nil {
		g.stats = intmap.New[core.Kind, int](core.KindCount)
	} else {
		g.stats.Clear()
	}

	g.flash = ""
	g.flashTicks = 0
	g.paused = false
	g.won = false
	g.finishTick = 0

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// scaleInterval speeds up the engine's per-level delay by the difficulty
// factor, never going below the configured floor.
func (g *Game) scaleInterval(base time.Duration) time.Duration {
	floor := time.Duration(g.cfg.Timing.MinDelayMs) * time.Millisecond
	return g.difficulty.Interval(base, g.engine.Lines(), int(g.tick), floor)
}

// now converts the tick counter to game time.
func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * time.Second / time.Duration(g.tickRate)
}

// finished reports whether the game has ended either way.
func (g *Game) finished() bool {
	return g.won || g.engine.GameOver()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.tooSmall || g.finished() {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	linesBefore := g.engine.Lines()

	if in.Has(platformcore.ActionLeft) {
		g.apply(func() { g.engine.MoveLeft() })
	}
	if in.Has(platformcore.ActionRight) {
		g.apply(func() { g.engine.MoveRight() })
	}
	if in.Has(platformcore.ActionRotate) {
		g.apply(func() { g.engine.Rotate() })
	}
	if in.Has(platformcore.ActionSoftDrop) {
		g.apply(func() { g.engine.MoveDown() })
		if g.cfg.Timing.SoftDropResetsGravity {
			g.gravity.Reset(g.now())
		}
	}
	if in.Has(platformcore.ActionHardDrop) {
		g.apply(func() { g.engine.HardDrop() })
		g.gravity.Reset(g.now())
	}

	g.apply(func() { g.gravity.Update(g.engine, g.now()) })

	if g.mode == ModeSprint && g.engine.Lines() >= g.cfg.Gameplay.SprintLines {
		g.won = true
		g.finishTick = g.tick
	}

	return platformcore.StepResult{
		State:   g.State(),
		Cleared: g.engine.Lines() - linesBefore,
	}
}

// apply runs one engine command and records any lock it caused.
func (g *Game) apply(cmd func()) {
	if g.engine.GameOver() {
		return
	}
	kind := g.engine.Piece().Kind
	locked := g.engine.PiecesLocked()

	cmd()

	if g.engine.PiecesLocked() == locked {
		return
	}
	n, _ := g.stats.Get(kind)
	g.stats.Put(kind, n+1)

	if cleared := g.engine.LastCleared(); cleared > 0 {
		g.flash = clearName(cleared)
		g.flashTicks = g.tickRate
	}
}

// clearName is the conventional name for a multi-line clear.
func clearName(n int) string {
	switch n {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS!"
	}
}

// State returns the platform view of the game.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		GameOver: g.finished(),
		Paused:   g.paused,
	}
}

// Engine exposes the underlying rules engine.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// PieceCount returns how many pieces of kind k have locked this game.
func (g *Game) PieceCount(k core.Kind) int {
	if g.stats == nil {
		return 0
	}
	n, _ := g.stats.Get(k)
	return n
}

// Elapsed returns the game time played so far, frozen once the game ends.
func (g *Game) Elapsed() time.Duration {
	if g.tickRate <= 0 {
		return 0
	}
	tick := g.tick
	if g.won {
		tick = g.finishTick
	}
	return time.Duration(tick) * time.Second / time.Duration(g.tickRate)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑: Rotate | ↓: Soft drop | Space: Hard drop | P: Pause | R: Restart | Q: Quit"
}
