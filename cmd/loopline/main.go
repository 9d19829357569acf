// Command loopline is a developer tool around the puzzle engine: it
// generates puzzle instances and prints ASCII previews, which is handy for
// eyeballing generator output and tuning hint densities.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bendworks/loopline/grid"
	"github.com/bendworks/loopline/session"
	"github.com/bendworks/loopline/turns"
)

var (
	difficulty string
	seed       int64
	count      int
	showLoop   bool
)

func main() {
	root := &cobra.Command{
		Use:   "loopline",
		Short: "Loop-puzzle generation toolbox",
	}

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles and print ASCII previews",
		Long: `Generate one or more loop puzzles.

Examples:
  loopline gen --difficulty easy
  loopline gen -d hard -n 5
  loopline gen -d medium --seed 20260830 --loop`,
		RunE: runGen,
	}
	genCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy, medium, or hard")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Deterministic seed; 0 draws a random puzzle")
	genCmd.Flags().IntVarP(&count, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().BoolVar(&showLoop, "loop", false, "Also print the solution loop with bend markers")
	root.AddCommand(genCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGen(cmd *cobra.Command, _ []string) error {
	d, err := parseDifficulty(difficulty)
	if err != nil {
		return err
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	for i := 0; i < count; i++ {
		opts := []session.Option{session.WithLogger(log)}
		if seed != 0 {
			opts = append(opts, session.WithSeed(seed+int64(i)))
		}
		s, err := session.New(d, opts...)
		if err != nil {
			return err
		}
		printPuzzle(cmd, s)
	}

	return nil
}

func parseDifficulty(s string) (session.Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return session.Easy, nil
	case "medium":
		return session.Medium, nil
	case "hard":
		return session.Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q (want easy, medium, or hard)", s)
	}
}

// printPuzzle renders the player-facing view: hint counts on their cells,
// everything else blank. With --loop, a second grid marks the solution:
// '+' on bend cells, 'o' on straight ones.
func printPuzzle(cmd *cobra.Command, s *session.Session) {
	out := cmd.OutOrStdout()
	size := s.GridSize()
	hints := s.HintCells()

	fmt.Fprintf(out, "# %s  seed=%d  hints=%d\n", s.Difficulty(), s.Seed(), len(hints))
	for r := 0; r < size; r++ {
		row := make([]string, size)
		for c := 0; c < size; c++ {
			row[c] = "."
			if n, ok := hints[grid.Key(r, c)]; ok {
				row[c] = fmt.Sprintf("%d", n)
			}
		}
		fmt.Fprintln(out, strings.Join(row, " "))
	}

	if showLoop {
		tm := turns.SolutionMap(s.SolutionPath())
		fmt.Fprintln(out, "solution:")
		for r := 0; r < size; r++ {
			row := make([]string, size)
			for c := 0; c < size; c++ {
				row[c] = "o"
				if tm[grid.Key(r, c)] {
					row[c] = "+"
				}
			}
			fmt.Fprintln(out, strings.Join(row, " "))
		}
	}
	fmt.Fprintln(out)
}
