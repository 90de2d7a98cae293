package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// GameStateType is the coarse state of a session.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWon         GameStateType = "won"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	State  GameStateType
	Engine core.Snapshot
	Counts [core.KindCount + 1]int // Locked pieces indexed by kind
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.engine.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		State:  state,
		Engine: g.engine.Snapshot(),
	}
	for k, n := range g.stats.All() {
		snap.Counts[k] = n
	}
	return snap
}
