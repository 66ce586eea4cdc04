package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:     "complete <task-id>",
	Aliases: []string{"done"},
	Short:   "Mark an exercise done for this protocol day",
	Long: `Record that you finished an exercise. Task ids are shown by 'rehab today'.

Completing every exercise of the protocol day adds one to your streak.

EXAMPLES:

  rehab complete locked_12_0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComplete(cmd.Context(), app, args[0])
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(ctx context.Context, a *application, taskID string) error {
	res, err := a.protocol.Complete(ctx, a.playerID, taskID)
	switch {
	case errors.Is(err, errorvalues.ErrNoActiveInjury):
		return fmt.Errorf("no protocol is running: %w", err)
	case errors.Is(err, errorvalues.ErrTaskNotFound):
		return fmt.Errorf("%s is not one of today's exercises: %w", taskID, err)
	case err != nil:
		return fmt.Errorf("failed to complete %s: %w", taskID, err)
	}

	color.New(color.FgGreen).Fprintf(a.out, "✓ Completed %s\n", taskID)
	fmt.Fprintf(a.out, "  %d/%d done today\n", res.Progress.SatisfiedCount, res.Progress.TotalTasks)
	if res.StreakIncreased {
		color.New(color.FgMagenta, color.Bold).Fprintf(a.out, "Protocol day complete! Streak: %d\n", res.Progress.Streak.Count)
	}
	return nil
}
