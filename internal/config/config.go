// Package config loads the YAML game configuration and turns the
// difficulty settings into a gravity speed-up.
package config

// TetrisConfig contains all tunable settings for the Tetris modes.
type TetrisConfig struct {
	Timing     TetrisTiming     `yaml:"timing"`
	Gameplay   TetrisGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisTiming controls how gravity is applied on top of the engine's
// per-level drop delay.
type TetrisTiming struct {
	MinDelayMs            int  `yaml:"min_delay_ms"`             // Floor for the scaled gravity interval
	SoftDropResetsGravity bool `yaml:"soft_drop_resets_gravity"` // Restart the gravity timer after a soft drop
}

// TetrisGameplay holds presentation and mode options.
type TetrisGameplay struct {
	Ghost       bool `yaml:"ghost"`        // Draw the landing position of the active piece
	Preview     bool `yaml:"preview"`      // Draw the next piece
	SprintLines int  `yaml:"sprint_lines"` // Lines needed to finish a sprint
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra gravity speed at max difficulty
}

// Progression types.
const (
	ProgressionLines = "lines"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset maps a name to a preset. Unknown names return "" and false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
