package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubesolve/cubesolve/internal/cubeconv"
	"github.com/cubesolve/cubesolve/internal/notation"
	"github.com/cubesolve/cubesolve/internal/scramble"
)

var (
	scrambleLength       int
	scrambleSeed         int64
	scrambleShowFacelets bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	RunE:  runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 25, "Number of moves in the scramble")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Seed for reproducible scrambles (default: random)")
	scrambleCmd.Flags().BoolVar(&scrambleShowFacelets, "facelets", false, "Also print the scrambled state as a facelet string")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if !cmd.Flags().Changed("seed") {
		seed = newSeed()
	}

	state, moves := scramble.Generate(scrambleLength, seed)
	fmt.Println(moveStyle.Render(notation.FormatSequence(moves)))
	if scrambleShowFacelets {
		fmt.Println(statusStyle.Render(cubeconv.ToFacelets(state)))
	}
	return nil
}
