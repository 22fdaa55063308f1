package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/ble"
	"github.com/seamusw/cubesolver/internal/protocol"
)

var hintMax int

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Live solving hints for a GoCube smart cube",
	Long: `Connect to a GoCube over Bluetooth and print an updated solution
after every physical move.

Start with the cube solved (or press its reset combination) so the
tracked state matches the physical state. Press Ctrl+C to exit.`,
	RunE: runHint,
}

func init() {
	rootCmd.AddCommand(hintCmd)
	hintCmd.Flags().IntVarP(&hintMax, "max", "m", 21, "Maximum solution length")
}

func runHint(cmd *cobra.Command, args []string) error {
	client, err := ble.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create BLE client: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracked facelet state; rotations arrive one at a time.
	state := cubesolver.SolvedFacelets

	client.SetMessageCallback(func(msg *protocol.Message) {
		if msg.Type != protocol.MsgTypeRotation {
			return
		}
		rotations, err := protocol.DecodeRotation(msg.Payload)
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("rotation decode error: %v", err)))
			return
		}
		for _, rot := range rotations {
			next := cubesolver.ApplyMoves(state, rot.Notation())
			if next == "" {
				continue
			}
			state = next
		}

		last := rotations[len(rotations)-1]
		if state == cubesolver.SolvedFacelets {
			fmt.Printf("%-4s %s\n", last.Notation(), titleStyle.Render("SOLVED!"))
			return
		}
		solution := cubesolver.Solve(state, hintMax)
		if strings.HasPrefix(solution, "Error") {
			fmt.Printf("%-4s %s\n", last.Notation(), errorStyle.Render(solution))
			return
		}
		fmt.Printf("%-4s hint: %s\n", last.Notation(), moveStyle.Render(solution))
	})

	fmt.Println("Scanning for GoCube...")
	if err := client.ConnectFirst(ctx); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer client.Disconnect()

	fmt.Printf("Connected to %s (battery %d%%)\n", client.DeviceName(), client.Battery())
	fmt.Println("Tracking starts from the solved state - make moves on the cube.")
	fmt.Println("Press Ctrl+C to exit.")
	fmt.Println(strings.Repeat("-", 60))

	// Warm the tables before the first hint is needed.
	cubesolver.Solve(cubesolver.SolvedFacelets, 21)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nDisconnecting...")
	return nil
}
