package config

import (
	"math"
	"time"
)

// DifficultyManager turns cleared lines or elapsed ticks into a difficulty
// level and a gravity speed-up.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(lines, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionLines:
		progress = float64(lines) / maxAt
	case ProgressionTime:
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the gravity speed factor, 1.0 meaning the engine's own
// delay.
func (d *DifficultyManager) Speed(lines, ticks int) float64 {
	mult := d.cfg.Scaling.SpeedMultiplier
	if mult < 0 {
		mult = 0
	}
	return 1.0 + d.Level(lines, ticks)*mult
}

// Interval divides base by the current speed factor and floors the result
// at floor.
func (d *DifficultyManager) Interval(base time.Duration, lines, ticks int, floor time.Duration) time.Duration {
	scaled := time.Duration(float64(base) / d.Speed(lines, ticks))
	if scaled < floor {
		return floor
	}
	return scaled
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
