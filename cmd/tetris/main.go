// tetris is a terminal falling-block game built on a deterministic rules
// engine.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play <mode>       - Play a mode
//	tetris menu              - Start menu to pick modes interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores <mode>     - Show high scores for a mode
//	tetris replay            - Run a command script headless and print the board
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set piece sequencer seed for reproducible games
//	--db <path>          - Set database path (default: ~/.tetris/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int32
	flagDBPath   string
	flagLogLevel string
)

// logger is shared by every subcommand; its level follows --log-level.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tetris",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - Stack falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block game with a deterministic rules
engine: the same seed and the same inputs always produce the same game.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Run a command script without a terminal UI

Examples:
  tetris list
  tetris play marathon
  tetris play sprint --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris replay --seed 166 --moves "LLLH RRRH LH"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int32Var(&flagSeed, "seed", 0, "Piece sequencer seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// openStore opens the score database, logging instead of failing so games
// still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
