package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Up/W/X/K     - Rotate
  Down/S/J     - Soft drop
  Space        - Hard drop
  P            - Pause
  R            - Restart (after game over)
  ?            - Show all controls
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Speed-up grows from zero with lines cleared
  normal - Starts at 30% of the extra speed-up
  hard   - Starts at 70% of the extra speed-up
  fixed  - Level speed only, no extra scaling

Without --difficulty a selector is shown before the game starts.

Examples:
  tetris play marathon
  tetris play sprint --difficulty hard
  tetris play marathon --seed 42 --difficulty fixed
  tetris play marathon --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// chooseDifficulty returns the preset from --difficulty, or asks with the
// selector. ok is false when the player backed out.
func chooseDifficulty(title string, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	if flagDifficulty != "" {
		p, valid := config.ParsePreset(flagDifficulty)
		if !valid {
			return "", false, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		return p, true, nil
	}

	res, err := tui.RunDifficultySelector(title, tetris.DifficultyPreset(), cfg)
	if err != nil {
		return "", false, err
	}
	if res.Back || res.Quit {
		return "", false, nil
	}
	return res.Preset, true, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	tetris.SetConfigPath(flagConfig)
	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			logger.Warn("config unusable, using defaults", "path", flagConfig, "error", err)
		}
	}

	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	preset, ok, err := chooseDifficulty(game.Title(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}
	tetris.SetDifficultyPreset(string(preset))

	store := openStore()

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
