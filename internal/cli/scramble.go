package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
)

var (
	scrambleMoves int
	scrambleState bool
	scrambleCount int
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate random scrambles",
	Long: `Generate random scrambles.

By default prints a random move sequence. With --state prints a
uniformly distributed solvable facelet string instead.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 25, "Number of random moves")
	scrambleCmd.Flags().BoolVarP(&scrambleState, "state", "s", false, "Print a random facelet state instead of moves")
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "c", 1, "Number of scrambles to generate")
}

func runScramble(cmd *cobra.Command, args []string) error {
	for i := 0; i < scrambleCount; i++ {
		if scrambleState {
			f := cubesolver.RandomCube()
			fmt.Println(f)
			if verbose {
				fmt.Println(renderNet(f))
			}
			continue
		}
		moves := cubesolver.RandomMoves(scrambleMoves)
		fmt.Println(moveStyle.Render(moves))
		if verbose {
			fmt.Println(renderNet(cubesolver.FromMoves(moves)))
		}
	}
	return nil
}
