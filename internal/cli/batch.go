package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
)

var batchMax int

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Solve a file of scrambles",
	Long: `Solve every scramble in a file, one per line.

A line is either a 54-character facelet string or a move sequence
applied to the solved cube. Blank lines and lines starting with # are
skipped. Prints each solution and a summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVarP(&batchMax, "max", "m", 21, "Maximum solution length per scramble")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open scramble file: %w", err)
	}
	defer file.Close()

	var (
		solved, failed int
		totalMoves     int
		longest        int
	)
	start := time.Now()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		facelets := line
		if len(line) != 54 || strings.ContainsAny(line, " '2") {
			// Treat as a move sequence.
			facelets = cubesolver.FromMoves(line)
			if facelets == "" {
				fmt.Printf("%4d: %s\n", lineNo, errorStyle.Render("bad move sequence"))
				failed++
				continue
			}
		}

		solution := cubesolver.Solve(facelets, batchMax)
		if strings.HasPrefix(solution, "Error") {
			fmt.Printf("%4d: %s\n", lineNo, errorStyle.Render(solution))
			failed++
			continue
		}
		n := moveCount(solution)
		solved++
		totalMoves += n
		if n > longest {
			longest = n
		}
		fmt.Printf("%4d: %s\n", lineNo, moveStyle.Render(solution))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read scramble file: %w", err)
	}

	elapsed := time.Since(start)
	fmt.Println()
	fmt.Printf("Solved:  %d\n", solved)
	fmt.Printf("Failed:  %d\n", failed)
	if solved > 0 {
		fmt.Printf("Average: %.1f moves\n", float64(totalMoves)/float64(solved))
		fmt.Printf("Longest: %d moves\n", longest)
	}
	fmt.Printf("Elapsed: %s\n", elapsed.Round(time.Millisecond))
	return nil
}
