package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/spf13/cobra"
)

var resolveYes bool

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Close the active protocol once you are healed",
	Long: `Mark your active injury as healed and return to the standard training plan.

CAUTION:

  Resolution cannot be undone. You are asked to confirm unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.Context(), app, resolveYes)
	},
}

func init() {
	resolveCmd.Flags().BoolVarP(&resolveYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(ctx context.Context, a *application, yes bool) error {
	var promptErr error
	confirm := func(injury *entity.ActiveInjury) bool {
		if yes {
			return true
		}
		answer, err := a.prompt(fmt.Sprintf("Mark %s (%s) as healed? This cannot be undone [y/N]: ", injury.InjuryType, injury.BodyArea))
		if err != nil {
			promptErr = err
			return false
		}
		return answer == "y" || answer == "yes"
	}

	resolved, err := a.protocol.Resolve(ctx, a.playerID, confirm)
	switch {
	case promptErr != nil:
		return promptErr
	case errors.Is(err, errorvalues.ErrResolutionNotConfirmed):
		fmt.Fprintln(a.out, "Aborted. The protocol is still active.")
		return nil
	case errors.Is(err, errorvalues.ErrNoActiveInjury):
		fmt.Fprintln(a.out, "No active protocol to resolve.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to resolve protocol: %w", err)
	}

	color.New(color.FgGreen).Fprintf(a.out, "✓ %s resolved. Back to the standard training plan.\n", resolved.InjuryType)
	return nil
}
