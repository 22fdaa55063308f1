package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
)

var applyCmd = &cobra.Command{
	Use:   "apply <facelets> <moves>",
	Short: "Apply a move sequence to a cube state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := cubesolver.ApplyMoves(args[0], args[1])
		if result == "" {
			fmt.Println(errorStyle.Render("invalid facelet state or move sequence"))
			return nil
		}
		fmt.Println(result)
		if verbose {
			fmt.Println(renderNet(result))
		}
		return nil
	},
}

var fromCmd = &cobra.Command{
	Use:   "from <moves>",
	Short: "Apply a move sequence to the solved cube",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := cubesolver.FromMoves(args[0])
		if result == "" {
			fmt.Println(errorStyle.Render("invalid move sequence"))
			return nil
		}
		fmt.Println(result)
		if verbose {
			fmt.Println(renderNet(result))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <facelets>",
	Short: "Render a cube state as a colored net",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cubesolver.Verify(args[0]); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return nil
		}
		fmt.Println(renderNet(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(fromCmd)
	rootCmd.AddCommand(showCmd)
}
