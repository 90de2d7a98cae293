package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Result{
		{GameID: "marathon", Player: "alice", Score: 1200, Lines: 9, Level: 1},
		{GameID: "marathon", Player: "bob", Score: 3400, Lines: 21, Level: 3},
		{GameID: "marathon", Player: "alice", Score: 800, Lines: 5, Level: 1},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}
	return store
}

func scoreboardUpdate(m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(ScoreboardModel), cmd
}

func TestScoreboardListsBestFirst(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "alice", 100, 30)

	if m.Mode() != "marathon" {
		t.Fatalf("Mode() = %q, want marathon first", m.Mode())
	}
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][1] != "bob" || rows[0][2] != "3400" {
		t.Errorf("top row = %v, want bob 3400", rows[0])
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Stats", "3400"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardMineOnly(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "alice", 100, 30)

	m, _ = scoreboardUpdate(m, runeKey('m'))
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows for alice, want 2", len(rows))
	}
	for _, r := range rows {
		if r[1] != "alice" {
			t.Errorf("row %v is not alice's", r)
		}
	}

	m, _ = scoreboardUpdate(m, runeKey('m'))
	if len(m.table.Rows()) != 3 {
		t.Error("toggling again should show every player")
	}
}

func TestScoreboardSwitchesMode(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "alice", 60, 24)

	m, _ = scoreboardUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != "sprint" {
		t.Fatalf("Mode() = %q after tab, want sprint", m.Mode())
	}
	if len(m.table.Rows()) != 0 {
		t.Error("sprint should have no scores")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty mode should say so")
	}

	m, _ = scoreboardUpdate(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Mode() != "marathon" {
		t.Errorf("Mode() = %q after shift+tab, want marathon", m.Mode())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	t.Setenv("USER", "carol")
	m := NewScoreboardModel(nil, "", 80, 24)

	if m.player != "carol" {
		t.Errorf("player = %q, want the OS user", m.player)
	}
	if len(m.table.Rows()) != 0 {
		t.Error("no store means no rows")
	}

	m, cmd := scoreboardUpdate(m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.IsGoingBack() || !isQuitCmd(cmd) {
		t.Error("esc should leave the scoreboard")
	}
}
