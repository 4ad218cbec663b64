package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeviz"
)

var applyDebug bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a sequence of face turns to a solved cube and print the result.

Moves use face letters R L U D F B, with a trailing ' for counter-clockwise.

Examples:
  cubeviz apply "R U R' U'"
  cubeviz apply R U R\' U\' --debug`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyDebug, "debug", false, "Print every cubie with its stickers")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	moves, err := cubeviz.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("failed to parse moves: %w", err)
	}
	logger.WithField("moves", len(moves)).Debugf("applying %s", cubeviz.FormatMoves(moves))

	tracker := cubeviz.NewTracker()
	tracker.ApplyMoves(moves)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s\n\n", cubeviz.FormatMoves(moves))
	fmt.Fprint(out, tracker.CubeString())
	fmt.Fprintln(out)

	if tracker.IsSolved() {
		fmt.Fprintln(out, "Solved: yes")
	} else {
		fmt.Fprintln(out, "Solved: no")
	}

	if applyDebug {
		fmt.Fprintln(out)
		fmt.Fprint(out, tracker.Cube().Debug())
	}
	return nil
}
