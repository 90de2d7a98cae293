package tetris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// isolate keeps user config files and package settings out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func newTestGame(t *testing.T, g *Game, seed int32) *Game {
	t.Helper()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	var in platformcore.InputFrame
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// clearBottomRow plays the seed 166 opening (I, I, O) that fills row 19.
func clearBottomRow(g *Game) int {
	cleared := 0
	script := [][]platformcore.Action{
		{platformcore.ActionLeft}, {platformcore.ActionLeft}, {platformcore.ActionLeft}, {platformcore.ActionHardDrop},
		{platformcore.ActionRight}, {platformcore.ActionRight}, {platformcore.ActionRight}, {platformcore.ActionHardDrop},
		{platformcore.ActionLeft}, {platformcore.ActionHardDrop},
	}
	for _, step := range script {
		cleared += press(g, step...).Cleared
	}
	return cleared
}

func TestModesRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"marathon", "Tetris (Marathon)"},
		{"sprint", "Tetris (Sprint)"},
	}

	for _, tc := range tests {
		if !registry.Exists(tc.id) {
			t.Fatalf("mode %q not registered", tc.id)
		}
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tc.id, err)
		}
		if g.ID() != tc.id || g.Title() != tc.title {
			t.Errorf("Create(%q) = %s/%s, want %s/%s", tc.id, g.ID(), g.Title(), tc.id, tc.title)
		}
	}
}

func TestResetUsesDefaultSeed(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)

	p := g.Engine().Piece()
	if p.Kind != core.KindI || p.X != 3 || p.Y != -1 {
		t.Errorf("first piece = %+v, want I at (3,-1)", p)
	}
	if g.Engine().Next() != core.KindO {
		t.Errorf("next = %v, want O", g.Engine().Next())
	}

	st := g.State()
	if st.Score != 0 || st.Lines != 0 || st.Level != 1 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, want fresh game", st)
	}
}

func TestStepMovesPiece(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)

	press(g, platformcore.ActionLeft)
	if x := g.Engine().Piece().X; x != 2 {
		t.Errorf("after Left X = %d, want 2", x)
	}

	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionRight)
	if x := g.Engine().Piece().X; x != 4 {
		t.Errorf("after Right x2 X = %d, want 4", x)
	}

	press(g, platformcore.ActionRotate)
	if r := g.Engine().Piece().Rotation; r != 1 {
		t.Errorf("after Rotate rotation = %d, want 1", r)
	}

	press(g, platformcore.ActionSoftDrop)
	if y := g.Engine().Piece().Y; y != 0 {
		t.Errorf("after SoftDrop Y = %d, want 0", y)
	}
}

func TestGravityFollowsTicks(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)
	startY := g.Engine().Piece().Y

	// Level 1 gravity is one row per second; at 60 ticks per second the
	// drop happens once strictly more than a second has passed.
	for i := 0; i < 60; i++ {
		press(g)
	}
	if y := g.Engine().Piece().Y; y != startY {
		t.Fatalf("after 60 ticks Y = %d, want %d", y, startY)
	}

	press(g)
	if y := g.Engine().Piece().Y; y != startY+1 {
		t.Errorf("after 61 ticks Y = %d, want %d", y, startY+1)
	}
}

func TestHardDropRecordsStats(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)

	res := press(g, platformcore.ActionHardDrop)

	if res.State.Score != 19*core.HardDropBonus {
		t.Errorf("Score = %d, want %d", res.State.Score, 19*core.HardDropBonus)
	}
	if g.PieceCount(core.KindI) != 1 {
		t.Errorf("PieceCount(I) = %d, want 1", g.PieceCount(core.KindI))
	}
	if g.PieceCount(core.KindO) != 0 {
		t.Errorf("PieceCount(O) = %d, want 0", g.PieceCount(core.KindO))
	}
	if g.Engine().Piece().Kind != core.KindO {
		t.Errorf("active piece = %v, want O", g.Engine().Piece().Kind)
	}
}

func TestLineClearFlash(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 166)

	if cleared := clearBottomRow(g); cleared != 1 {
		t.Fatalf("cleared %d rows, want 1", cleared)
	}
	if g.flash != "SINGLE" || g.flashTicks != 60 {
		t.Errorf("flash = %q/%d, want SINGLE/60", g.flash, g.flashTicks)
	}
	st := g.State()
	if st.Lines != 1 || st.Score != 212 || st.GameOver {
		t.Errorf("State() = %+v, want 1 line, score 212, running", st)
	}

	press(g)
	if g.flashTicks != 59 {
		t.Errorf("flashTicks = %d, want 59", g.flashTicks)
	}
}

func TestPauseFreezesGame(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)

	res := press(g, platformcore.ActionPause)
	if !res.State.Paused {
		t.Fatal("Pause should pause the game")
	}

	before := g.Snapshot()
	for i := 0; i < 120; i++ {
		press(g, platformcore.ActionLeft, platformcore.ActionHardDrop)
	}
	after := g.Snapshot()
	if after.Engine != before.Engine || after.Tick != before.Tick {
		t.Error("paused game should not change")
	}
	if after.State != StatePaused {
		t.Errorf("State = %s, want %s", after.State, StatePaused)
	}

	res = press(g, platformcore.ActionPause)
	if res.State.Paused {
		t.Error("second Pause should resume")
	}
}

func TestMarathonGameOver(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 3)

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		press(g, platformcore.ActionHardDrop)
	}
	if !g.State().GameOver {
		t.Fatal("repeated hard drops should top out")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot().State = %s, want %s", g.Snapshot().State, StateGameOver)
	}

	total := 0
	for _, k := range core.Kinds() {
		total += g.PieceCount(k)
	}
	if total != g.Engine().PiecesLocked() {
		t.Errorf("per-kind counts sum to %d, want %d", total, g.Engine().PiecesLocked())
	}

	// Restart
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})
	if g.State().GameOver || g.Engine().PiecesLocked() != 0 || g.PieceCount(core.KindI) != 0 {
		t.Error("Reset should start a fresh game")
	}
}

func TestSprintCompletes(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  sprint_lines: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)

	g := newTestGame(t, NewSprint(), 166)
	clearBottomRow(g)

	st := g.State()
	if !st.GameOver {
		t.Fatal("sprint should end after the target lines")
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot().State = %s, want %s", g.Snapshot().State, StateWon)
	}

	elapsed := g.Elapsed()
	press(g)
	press(g)
	if g.Elapsed() != elapsed {
		t.Error("sprint time should stop at completion")
	}
	if g.Snapshot().Tick != 10 {
		t.Errorf("Tick = %d, want 10", g.Snapshot().Tick)
	}
}

func TestFixedPresetDisablesSpeedUp(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("fixed")
	g := newTestGame(t, New(), 0)

	if g.difficulty.IsEnabled() {
		t.Error("fixed preset should disable difficulty progression")
	}
	if got := g.gravity.Interval(g.Engine()); got != g.Engine().DropInterval() {
		t.Errorf("Interval() = %v, want %v", got, g.Engine().DropInterval())
	}

	SetDifficultyPreset("bogus")
	if DifficultyPreset() != "" {
		t.Errorf("unknown preset should clear, got %q", DifficultyPreset())
	}
}

func TestSessionDifficultyOverridesDefault(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Difficulty: "fixed"})
	if g.difficulty.IsEnabled() {
		t.Error("session preset fixed should win over process default hard")
	}

	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if !g.difficulty.IsEnabled() {
		t.Error("empty session preset should fall back to hard")
	}
}

func TestDeterministicSnapshots(t *testing.T) {
	isolate(t)

	run := func() Snapshot {
		g := newTestGame(t, New(), 4242)
		seq := []platformcore.Action{
			platformcore.ActionLeft, platformcore.ActionRotate, platformcore.ActionNone,
			platformcore.ActionHardDrop, platformcore.ActionRight, platformcore.ActionSoftDrop,
		}
		for i := 0; i < 600; i++ {
			press(g, seq[i%len(seq)])
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed and input produced different snapshots:\n%+v\n%+v", a, b)
	}
}

func TestResizeKeepsGame(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)
	press(g, platformcore.ActionHardDrop)

	g.Resize(30, 10)
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}
	before := g.Snapshot().Engine
	press(g, platformcore.ActionHardDrop)
	if g.Snapshot().Engine != before {
		t.Error("game should not advance while the window is too small")
	}

	g.Resize(80, 24)
	if g.Engine().PiecesLocked() != 1 {
		t.Errorf("PiecesLocked() = %d after resize, want 1", g.Engine().PiecesLocked())
	}
}

func TestRender(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"TETRIS · MARATHON", "NEXT", "SCORE", "LEVEL", "LINES"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// The I piece sits on row 0 of the well, columns 3..6.
	originX := (80 - layoutW) / 2
	originY := (24 - minScreenH) / 2
	wellRow := originY + 2
	for bx := 3; bx <= 6; bx++ {
		cell := screen.GetCell(originX+1+bx*cellW, wellRow)
		if cell.Rune != blockGlyph || cell.Color != KindColor(core.KindI) {
			t.Errorf("well cell %d = %+v, want cyan block", bx, cell)
		}
	}

	// Ghost on the bottom row.
	ghost := screen.GetCell(originX+1+3*cellW, originY+1+core.BoardHeight)
	if ghost.Rune != ghostGlyph {
		t.Errorf("ghost cell = %+v, want %q", ghost, ghostGlyph)
	}
}

func TestRenderTooSmall(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})
	screen := platformcore.NewScreen(20, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should show a resize hint")
	}
}

func TestRenderOverlays(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 0)
	screen := platformcore.NewScreen(80, 24)

	press(g, platformcore.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause overlay")
	}

	press(g, platformcore.ActionPause)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		press(g, platformcore.ActionHardDrop)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("finished game should show the game over overlay")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0:00.0"},
		{90, "0:01.5"},
		{60 * 75, "1:15.0"},
	}

	for _, tc := range tests {
		g := &Game{tickRate: 60, tick: uint64(tc.ticks)}
		if got := formatElapsed(g.Elapsed()); got != tc.want {
			t.Errorf("formatElapsed(%d ticks) = %q, want %q", tc.ticks, got, tc.want)
		}
	}
}
