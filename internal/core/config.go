package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int32 // Piece sequencer seed; 0 lets the game pick its default

	// Difficulty names a preset for this session. Empty falls back to the
	// game's process-wide default.
	Difficulty string
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Cleared is the number of rows removed during this tick.
	Cleared int
}
