package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cubesolve/cubesolve"
	"github.com/cubesolve/cubesolve/internal/cubeconv"
	"github.com/cubesolve/cubesolve/internal/history"
	"github.com/cubesolve/cubesolve/internal/notation"
	"github.com/cubesolve/cubesolve/internal/scramble"
	"github.com/cubesolve/cubesolve/internal/search"
	"github.com/cubesolve/cubesolve/internal/verify"
)

var (
	solveScramble   string
	solveFacelets   string
	solveRandom     int
	solveSeed       int64
	solveAlgorithm  string
	solveMaxDepth   int
	solveMaxIters   int
	solveNoRecord   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube and print the move sequence that returns it to
the solved state.

The scramble can be given as a move sequence (--scramble "R U R' U'"), a
54-character facelet color string (--facelets), or generated randomly
(--random N). With none of these, the solved state is used.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble as a move sequence, e.g. \"R U R' U'\"")
	solveCmd.Flags().StringVar(&solveFacelets, "facelets", "", "Scramble as a 54-character facelet color string (U L F R B D)")
	solveCmd.Flags().IntVar(&solveRandom, "random", 0, "Generate a random scramble of this many moves")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 1, "Seed for --random")
	solveCmd.Flags().StringVar(&solveAlgorithm, "algorithm", "idastar", "Search algorithm: idastar or iddfs")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 20, "Maximum search depth (iddfs only)")
	solveCmd.Flags().IntVar(&solveMaxIters, "max-iterations", 50, "Maximum IDA* threshold iterations")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Don't save this solve to history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	initial, scrambleMoves, err := resolveScramble()
	if err != nil {
		return err
	}

	algorithm, err := parseAlgorithm(solveAlgorithm)
	if err != nil {
		return err
	}

	h, err := buildHeuristic()
	if err != nil {
		return err
	}

	result, err := search.Solve(initial, algorithm, h,
		search.WithMaxDepth(solveMaxDepth), search.WithMaxIterations(solveMaxIters))
	if err != nil {
		return fmt.Errorf("%s %v", errorStyle.Render("no solution found within budget:"), err)
	}
	if result.Status != search.StatusFound {
		return fmt.Errorf("%s", errorStyle.Render("no solution found within budget"))
	}

	if !verify.Solution(initial, result.Moves) {
		return fmt.Errorf("internal error: search reported a solution that does not verify")
	}

	fmt.Println(titleStyle.Render("Solution"))
	fmt.Println(moveStyle.Render(notation.FormatSequence(result.Moves)))
	fmt.Println()
	fmt.Println(statusStyle.Render(fmt.Sprintf(
		"%d moves, %d nodes expanded, %d iterations, %dms",
		len(result.Moves), result.Stats.ExpandedNodes, result.Stats.Iterations, result.Stats.ElapsedMs)))

	if !solveNoRecord {
		if err := recordSolve(algorithm, scrambleMoves, result); err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("warning: failed to save to history: %v", err)))
		}
	}

	return nil
}

// resolveScramble determines the scrambled state to solve from whichever
// of --scramble, --facelets, or --random was given, in that priority
// order, and the move list that produced it (nil if it came from
// --facelets, since facelet strings don't name a move sequence).
func resolveScramble() (cube.State, []cube.MoveID, error) {
	switch {
	case solveScramble != "":
		moves, err := notation.ParseSequence(solveScramble)
		if err != nil {
			return cube.State{}, nil, fmt.Errorf("invalid --scramble: %w", err)
		}
		return cube.ApplySequence(cube.Solved(), moves), moves, nil

	case solveFacelets != "":
		state, err := cubeconv.FromFacelets(solveFacelets)
		if err != nil {
			return cube.State{}, nil, fmt.Errorf("invalid --facelets: %w", err)
		}
		return state, nil, nil

	case solveRandom > 0:
		state, moves := scramble.Generate(solveRandom, solveSeed)
		fmt.Println(statusStyle.Render("Scramble: " + notation.FormatSequence(moves)))
		return state, moves, nil

	default:
		return cube.Solved(), nil, nil
	}
}

func parseAlgorithm(name string) (search.Algorithm, error) {
	switch name {
	case "idastar", "":
		return search.IDAStar, nil
	case "iddfs":
		return search.IDDFS, nil
	default:
		return 0, fmt.Errorf("unknown --algorithm %q, want idastar or iddfs", name)
	}
}

func recordSolve(algorithm search.Algorithm, scrambleMoves []cube.MoveID, result search.Result) error {
	db, err := openHistoryDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := history.NewRepository(db)
	_, err = repo.Record(algorithm, scrambleMoves, result.Moves, result.Stats)
	return err
}

func openHistoryDB() (*history.DB, error) {
	path := getDBPath()
	if path == "" {
		return history.OpenDefault()
	}
	return history.Open(path)
}

// newSeed is used by the scramble subcommand's default seed when the user
// asks for a fresh random scramble rather than a reproducible one.
func newSeed() int64 {
	return rand.Int63()
}
