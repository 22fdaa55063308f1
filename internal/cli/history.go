package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded solves",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of solves to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	total, err := repo.Count()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("Solve history (%d total)", total)))
	fmt.Println()
	for _, s := range solves {
		fmt.Printf("%s  %2d moves  %5dms  %s\n",
			s.CreatedAt.Local().Format(time.DateTime),
			s.Length, s.DurationMs, moveStyle.Render(s.Solution))
		if verbose {
			fmt.Printf("          %s\n", statusStyle.Render(s.Facelets))
		}
	}
	return nil
}
