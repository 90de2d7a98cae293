package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config
// directories.
const ConfigFile = "tetris.yaml"

// LoadTetris loads the Tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default -> DefaultTetrisConfig.
// Only a broken customPath is an error; broken files further down the
// chain are skipped.
func LoadTetris(customPath string) (TetrisConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseTetris(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseTetris(defaultTetrisYAML); err == nil {
		return cfg, nil
	}
	return DefaultTetrisConfig(), nil
}

// parseTetris decodes data over the built-in defaults, so a file only
// needs the keys it changes.
func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces out-of-range values with usable ones.
func (c *TetrisConfig) normalize() {
	if c.Timing.MinDelayMs < 0 {
		c.Timing.MinDelayMs = 0
	}
	if c.Gameplay.SprintLines <= 0 {
		c.Gameplay.SprintLines = DefaultTetrisConfig().Gameplay.SprintLines
	}
	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0.0, 1.0)
	switch c.Difficulty.Progression.Type {
	case ProgressionLines, ProgressionTime, ProgressionNone:
	default:
		c.Difficulty.Progression.Type = ProgressionNone
	}
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
