package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <percent>",
	Short: "Record how far along your recovery is",
	Long: `Store a self-assessed recovery percentage (0-100) on the active injury.

EXAMPLES:

  rehab progress 60`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("percent must be a whole number: %s", args[0])
		}
		return runProgress(cmd.Context(), app, percent)
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(ctx context.Context, a *application, percent int) error {
	if percent < 0 || percent > 100 {
		return errorvalues.ErrInvalidProgress
	}
	injury, err := a.api.CurrentInjury(ctx, a.playerID)
	if err != nil {
		return fmt.Errorf("failed to load active injury: %w", err)
	}
	if injury == nil {
		return fmt.Errorf("no protocol is running: %w", errorvalues.ErrNoActiveInjury)
	}
	updated, err := a.api.UpdateProgress(ctx, injury.ID, percent)
	if errors.Is(err, errorvalues.ErrInjuryNotFound) {
		return fmt.Errorf("the protocol was resolved meanwhile: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	color.New(color.FgGreen).Fprintf(a.out, "✓ %s at %d%%\n", updated.InjuryType, updated.ProgressPercent)
	return nil
}
