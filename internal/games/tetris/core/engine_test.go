package core

import "testing"

// emptyEngine returns an engine with an empty board and the given piece
// falling. The queued kind is T.
func emptyEngine(k Kind, rotation, x, y int) *Engine {
	e := NewEngine(DefaultSeed)
	e.board.Clear()
	e.piece = Piece{Kind: k, Rotation: rotation, X: x, Y: y}
	e.next = KindT
	e.phase = PhaseFalling
	return e
}

// filled counts occupied cells on a copy of the board.
func filled(e *Engine) int {
	b := e.Board()
	return b.FilledCount()
}

func TestNewEngineState(t *testing.T) {
	e := NewEngine(DefaultSeed)

	if e.Score() != 0 || e.Lines() != 0 || e.Level() != 1 {
		t.Errorf("score/lines/level = %d/%d/%d, want 0/0/1", e.Score(), e.Lines(), e.Level())
	}
	if e.GameOver() {
		t.Error("new engine should not be game over")
	}
	if e.Phase() != PhaseFalling {
		t.Errorf("Phase() = %v, want falling", e.Phase())
	}
	if filled(e) != 0 {
		t.Errorf("board has %d filled cells, want 0", filled(e))
	}

	// First two draws from the default seed are I then O.
	p := e.Piece()
	if p.Kind != KindI || p.Rotation != 0 || p.X != 3 || p.Y != -1 {
		t.Errorf("Piece() = %+v, want I rot 0 at (3,-1)", p)
	}
	if e.Next() != KindO {
		t.Errorf("Next() = %v, want O", e.Next())
	}
}

func TestSpawnPoints(t *testing.T) {
	tests := []struct {
		kind Kind
		x, y int
	}{
		{KindI, 3, -1},
		{KindJ, 3, 0},
		{KindL, 3, 0},
		{KindO, 4, 0},
		{KindS, 3, 0},
		{KindT, 3, 0},
		{KindZ, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			e := NewEngine(DefaultSeed)
			e.board.Clear()
			e.next = tc.kind
			e.spawn()

			p := e.Piece()
			if p.Kind != tc.kind || p.X != tc.x || p.Y != tc.y || p.Rotation != 0 {
				t.Errorf("spawned %+v, want %v rot 0 at (%d,%d)", p, tc.kind, tc.x, tc.y)
			}
			if e.Phase() != PhaseFalling {
				t.Errorf("Phase() = %v, want falling", e.Phase())
			}
		})
	}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name   string
		placed []Point
		x, y   int
		want   bool
	}{
		{"open board", nil, 0, 0, false},
		{"left wall", nil, -1, 0, true},
		{"touching right wall", nil, 7, 0, false},
		{"past right wall", nil, 8, 0, true},
		{"resting on floor", nil, 3, 18, false},
		{"through floor", nil, 3, 19, true},
		{"partly above board", nil, 3, -1, false},
		{"fully above board", nil, 3, -5, false},
		{"above board past wall", nil, -1, -5, true},
		{"overlaps placed cell", []Point{{4, 5}}, 3, 4, true},
		{"placed cell at top row", []Point{{4, 0}}, 3, -1, true},
		{"next to placed cell", []Point{{6, 5}}, 3, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := emptyEngine(KindT, 0, 3, 0)
			for _, p := range tc.placed {
				e.board.Set(p.X, p.Y, KindJ)
			}
			if got := e.Collides(tc.x, tc.y, 0); got != tc.want {
				t.Errorf("Collides(%d, %d, 0) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestInvalidKindAlwaysCollides(t *testing.T) {
	e := emptyEngine(Empty, 0, 3, 5)
	if !e.Collides(3, 5, 0) {
		t.Error("invalid kind should always collide")
	}
	if e.MoveLeft() || e.MoveDown() || e.Rotate() {
		t.Error("commands should be refused without a valid piece")
	}
}

func TestMoveBlockedByWalls(t *testing.T) {
	e := emptyEngine(KindO, 0, -1, 5)
	if e.MoveLeft() {
		t.Error("O at the left wall should not move left")
	}
	if !e.MoveRight() {
		t.Error("O at the left wall should move right")
	}

	e = emptyEngine(KindO, 0, 7, 5)
	if e.MoveRight() {
		t.Error("O at the right wall should not move right")
	}
}

func TestLockMergesPiece(t *testing.T) {
	e := emptyEngine(KindT, 0, 3, 18)

	if e.MoveDown() {
		t.Fatal("MoveDown on the floor should lock")
	}

	want := []Point{{4, 18}, {3, 19}, {4, 19}, {5, 19}}
	for _, p := range want {
		if e.Cell(p.X, p.Y) != KindT {
			t.Errorf("Cell(%d, %d) = %v, want T", p.X, p.Y, e.Cell(p.X, p.Y))
		}
	}
	if filled(e) != len(want) {
		t.Errorf("FilledCount() = %d, want %d", filled(e), len(want))
	}
	if e.PiecesLocked() != 1 {
		t.Errorf("PiecesLocked() = %d, want 1", e.PiecesLocked())
	}
	if e.Piece().Kind != KindT || e.Piece().Y != 0 {
		t.Errorf("next piece = %+v, want freshly spawned T", e.Piece())
	}
}

func TestLockSkipsCellsAboveBoard(t *testing.T) {
	e := emptyEngine(KindI, 1, 3, -2)
	e.next = KindI
	e.board.Set(5, 2, KindZ)

	if e.MoveDown() {
		t.Fatal("I resting on an obstacle should lock")
	}

	if e.Cell(5, 0) != KindI || e.Cell(5, 1) != KindI {
		t.Errorf("visible cells not written: (5,0)=%v (5,1)=%v", e.Cell(5, 0), e.Cell(5, 1))
	}
	if filled(e) != 3 {
		t.Errorf("FilledCount() = %d, want 3", filled(e))
	}
	// The spawn row is now blocked.
	if !e.GameOver() {
		t.Error("spawn onto a blocked row should end the game")
	}
}

func TestLineClearScoring(t *testing.T) {
	for _, level := range []int{1, 3} {
		for n := 1; n <= 4; n++ {
			e := emptyEngine(KindI, 1, -2, 0)
			e.level = level
			e.lines = (level - 1) * LinesPerLevel
			for y := BoardHeight - n; y < BoardHeight; y++ {
				for x := 1; x < BoardWidth; x++ {
					e.board.Set(x, y, KindJ)
				}
			}

			for e.MoveDown() {
			}

			if e.LastCleared() != n {
				t.Errorf("level %d: LastCleared() = %d, want %d", level, e.LastCleared(), n)
			}
			if want := lineScores[n] * level; e.Score() != want {
				t.Errorf("level %d, %d lines: Score() = %d, want %d", level, n, e.Score(), want)
			}
			if want := (level-1)*LinesPerLevel + n; e.Lines() != want {
				t.Errorf("level %d: Lines() = %d, want %d", level, e.Lines(), want)
			}
			// The unused top of the I stays, shifted down by n rows.
			if got := filled(e); got != 4-n {
				t.Errorf("level %d, %d lines: FilledCount() = %d, want %d", level, n, got, 4-n)
			}
		}
	}
}

func TestLevelRecomputedAfterAward(t *testing.T) {
	tests := []struct {
		level, lines int
		wantLevel    int
		wantScore    int
	}{
		{1, 9, 2, 100},
		{2, 19, 3, 200},
		{1, 0, 1, 100},
	}

	for _, tc := range tests {
		e := emptyEngine(KindT, 0, 3, 0)
		e.level = tc.level
		e.lines = tc.lines
		e.award(1)

		if e.Level() != tc.wantLevel {
			t.Errorf("lines %d+1: Level() = %d, want %d", tc.lines, e.Level(), tc.wantLevel)
		}
		if e.Score() != tc.wantScore {
			t.Errorf("lines %d+1: Score() = %d, want %d", tc.lines, e.Score(), tc.wantScore)
		}
	}
}

func TestRotateKicks(t *testing.T) {
	tests := []struct {
		name  string
		start Piece
		want  Piece
		ok    bool
	}{
		{
			name:  "in place",
			start: Piece{Kind: KindT, Rotation: 0, X: 3, Y: 5},
			want:  Piece{Kind: KindT, Rotation: 1, X: 3, Y: 5},
			ok:    true,
		},
		{
			name:  "I off left wall kicks right",
			start: Piece{Kind: KindI, Rotation: 3, X: -1, Y: 5},
			want:  Piece{Kind: KindI, Rotation: 0, X: 0, Y: 5},
			ok:    true,
		},
		{
			name:  "I off right wall kicks left",
			start: Piece{Kind: KindI, Rotation: 1, X: 7, Y: 5},
			want:  Piece{Kind: KindI, Rotation: 2, X: 6, Y: 5},
			ok:    true,
		},
		{
			name:  "T on floor kicks up",
			start: Piece{Kind: KindT, Rotation: 0, X: 3, Y: 18},
			want:  Piece{Kind: KindT, Rotation: 1, X: 3, Y: 17},
			ok:    true,
		},
		{
			name:  "no candidate fits",
			start: Piece{Kind: KindI, Rotation: 1, X: -2, Y: 5},
			want:  Piece{Kind: KindI, Rotation: 1, X: -2, Y: 5},
			ok:    false,
		},
		{
			name:  "rotation wraps",
			start: Piece{Kind: KindS, Rotation: 3, X: 4, Y: 5},
			want:  Piece{Kind: KindS, Rotation: 0, X: 4, Y: 5},
			ok:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.start
			e := emptyEngine(p.Kind, p.Rotation, p.X, p.Y)

			if got := e.Rotate(); got != tc.ok {
				t.Errorf("Rotate() = %v, want %v", got, tc.ok)
			}
			if e.Piece() != tc.want {
				t.Errorf("piece = %+v, want %+v", e.Piece(), tc.want)
			}
		})
	}
}

func TestHardDrop(t *testing.T) {
	e := NewEngine(DefaultSeed)
	start := e.Piece()
	ghost := e.GhostY()

	if ghost != 18 {
		t.Fatalf("GhostY() = %d, want 18", ghost)
	}

	rows := e.HardDrop()
	if rows != ghost-start.Y {
		t.Errorf("HardDrop() = %d, want %d", rows, ghost-start.Y)
	}
	if e.Score() != rows*HardDropBonus {
		t.Errorf("Score() = %d, want %d", e.Score(), rows*HardDropBonus)
	}
	for x := 3; x <= 6; x++ {
		if e.Cell(x, 19) != KindI {
			t.Errorf("Cell(%d, 19) = %v, want I", x, e.Cell(x, 19))
		}
	}
	if e.Piece().Kind != KindO {
		t.Errorf("active piece = %v, want O from the queue", e.Piece().Kind)
	}
}

func TestGhostYDoesNotMutate(t *testing.T) {
	e := emptyEngine(KindL, 0, 3, 2)
	e.board.Set(4, 12, KindZ)
	before := e.Snapshot()

	if got := e.GhostY(); got != 10 {
		t.Errorf("GhostY() = %d, want 10", got)
	}
	if e.Snapshot() != before {
		t.Error("GhostY changed engine state")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	e := NewEngine(DefaultSeed)
	for x := 3; x <= 6; x++ {
		e.board.Set(x, 0, KindJ)
		e.board.Set(x, 1, KindJ)
	}
	e.spawn()

	if !e.GameOver() {
		t.Fatal("blocked spawn should end the game")
	}

	before := e.Snapshot()
	e.MoveLeft()
	e.MoveRight()
	e.MoveDown()
	e.Rotate()
	e.HardDrop()
	if e.Snapshot() != before {
		t.Error("commands after game over changed state")
	}

	e.Reset()
	if e.GameOver() || filled(e) != 0 || e.Score() != 0 {
		t.Error("Reset should start a fresh game")
	}
}

func TestDropDelay(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 1000},
		{1, 1000},
		{2, 950},
		{10, 550},
		{19, 100},
		{20, 100},
		{50, 100},
	}

	for _, tc := range tests {
		e := emptyEngine(KindT, 0, 3, 0)
		e.level = tc.level
		if got := e.DropDelay(); got != tc.want {
			t.Errorf("DropDelay() at level %d = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseSpawning: "spawning",
		PhaseFalling:  "falling",
		PhaseLocking:  "locking",
		PhaseClearing: "clearing",
		PhaseGameOver: "game_over",
		Phase(99):     "unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
}
