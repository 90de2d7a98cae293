package core

// Snapshot is a read-only copy of the full engine state, used for
// determinism checks and headless replays.
type Snapshot struct {
	Board        [BoardHeight][BoardWidth]Kind
	Piece        Piece
	Next         Kind
	GhostY       int
	Score        int
	Level        int
	Lines        int
	Phase        Phase
	GameOver     bool
	Seed         int32
	LastCleared  int
	PiecesLocked int
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:        e.board.Rows(),
		Piece:        e.piece,
		Next:         e.next,
		GhostY:       e.GhostY(),
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		Phase:        e.phase,
		GameOver:     e.GameOver(),
		Seed:         e.rng.Seed(),
		LastCleared:  e.lastCleared,
		PiecesLocked: e.piecesLocked,
	}
}
