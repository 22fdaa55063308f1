package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/storage"
)

var (
	solveMax       int
	solveSeparator bool
	solveLength    bool
	solveInverse   bool
	solveNoRecord  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <facelets>",
	Short: "Solve a cube state",
	Long: `Solve a cube state given as a 54-character facelet string.

The solution is recorded to the history database unless --no-record is
given. Use "cubesolver scramble --state" to produce test inputs.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveMax, "max", "m", 21, "Maximum solution length (face turns)")
	solveCmd.Flags().BoolVar(&solveSeparator, "separator", false, "Insert a . between phase 1 and phase 2")
	solveCmd.Flags().BoolVar(&solveLength, "length", false, "Append the move count as (Nf)")
	solveCmd.Flags().BoolVar(&solveInverse, "inverse", false, "Emit the generator instead of the solution")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Do not record the solve to the database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	facelets := args[0]

	start := time.Now()
	solution := cubesolver.SolveWith(facelets, solveMax, cubesolver.Options{
		UseSeparator:    solveSeparator,
		AppendLength:    solveLength,
		InverseSolution: solveInverse,
	})
	elapsed := time.Since(start)

	if strings.HasPrefix(solution, "Error") {
		fmt.Println(errorStyle.Render(solution))
		return nil
	}

	if verbose {
		fmt.Println(renderNet(facelets))
	}
	fmt.Println(moveStyle.Render(solution))
	if verbose {
		fmt.Println(statusStyle.Render(fmt.Sprintf("%d moves in %s", moveCount(solution), elapsed.Round(time.Millisecond))))
	}

	if solveNoRecord {
		return nil
	}
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	if _, err := repo.Record(facelets, solution, moveCount(solution), solveMax, elapsed); err != nil {
		return err
	}
	return nil
}

// moveCount counts face-turn tokens, ignoring the separator and length
// markers of the verbose formats.
func moveCount(solution string) int {
	n := 0
	for _, tok := range strings.Fields(solution) {
		if tok == "." || strings.HasPrefix(tok, "(") {
			continue
		}
		n++
	}
	return n
}
