package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

var (
	flagMoves     string
	flagMovesFile string
	flagAuto      int
	flagVerbose   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a command script headless and print the result",
	Long: `Run the rules engine without a terminal UI. Commands are applied in
order to a game started from --seed (default 12345), then the final board
and session state are printed. The same seed and script always give the
same result.

Script commands (case-insensitive, whitespace ignored):
  L  move left
  R  move right
  D  move down (locks when blocked)
  U  rotate clockwise
  H  hard drop

--auto N applies N gravity steps after the script, as if the game had
been left running.

Examples:
  tetris replay --seed 166 --moves "LLLH RRRH LH"
  tetris replay --moves-file ./opening.txt --verbose
  tetris replay --auto 500`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Command script, e.g. \"LLUH\"")
	replayCmd.Flags().StringVar(&flagMovesFile, "moves-file", "", "Read the command script from a file")
	replayCmd.Flags().IntVar(&flagAuto, "auto", 0, "Gravity steps to apply after the script")
	replayCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every command at debug level")
}

func runReplay(cmd *cobra.Command, _ []string) error {
	script := flagMoves
	if flagMovesFile != "" {
		data, err := os.ReadFile(flagMovesFile)
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		script += string(data)
	}

	cmds, err := core.ParseScript(script)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = core.DefaultSeed
	}
	e := core.NewEngine(seed)

	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	executed := 0
	for i, c := range cmds {
		if e.GameOver() {
			break
		}
		changed := e.Apply(c)
		executed++
		logger.Debug("command", "n", i, "cmd", c, "changed", changed,
			"piece", e.Piece().Kind, "x", e.Piece().X, "y", e.Piece().Y, "score", e.Score())
	}

	steps := 0
	for ; steps < flagAuto && !e.GameOver(); steps++ {
		e.MoveDown()
	}
	if steps > 0 {
		logger.Debug("gravity", "steps", steps)
	}

	out := cmd.OutOrStdout()
	board := e.Board()
	fmt.Fprintln(out, board.String())
	fmt.Fprintln(out, strings.Repeat("-", core.BoardWidth))
	fmt.Fprintf(out, "seed:     %d\n", seed)
	fmt.Fprintf(out, "commands: %d/%d\n", executed, len(cmds))
	fmt.Fprintf(out, "score:    %d\n", e.Score())
	fmt.Fprintf(out, "level:    %d\n", e.Level())
	fmt.Fprintf(out, "lines:    %d\n", e.Lines())
	fmt.Fprintf(out, "pieces:   %d\n", e.PiecesLocked())
	fmt.Fprintf(out, "piece:    %s at (%d, %d) rotation %d\n", e.Piece().Kind, e.Piece().X, e.Piece().Y, e.Piece().Rotation)
	fmt.Fprintf(out, "next:     %s\n", e.Next())
	fmt.Fprintf(out, "state:    %s\n", e.Phase())
	return nil
}
