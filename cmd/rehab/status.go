package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the active injury",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd.Context(), app, time.Now())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(ctx context.Context, a *application, now time.Time) error {
	injury, err := a.api.CurrentInjury(ctx, a.playerID)
	if err != nil {
		return fmt.Errorf("failed to load active injury: %w", err)
	}
	if injury == nil {
		color.New(color.FgGreen).Fprintln(a.out, "No active injury. You are on the standard training plan.")
		return nil
	}
	printInjury(a, injury, now)
	return nil
}

func printInjury(a *application, injury *entity.ActiveInjury, now time.Time) {
	faint := color.New(color.Faint)
	color.New(color.FgYellow, color.Bold).Fprintf(a.out, "%s (%s)\n", injury.InjuryType, injury.BodyArea)
	fmt.Fprintf(a.out, "  day %d of ~%d  progress %d%%\n",
		protocolDayNumber(injury.StartDate, now),
		injury.EstimatedRecoveryDays,
		injury.ProgressPercent)
	faint.Fprintf(a.out, "  started %s  injury #%d\n", injury.StartDate.Format(time.DateOnly), injury.ID)
}

// protocolDayNumber counts calendar days since start, the start date being day 1.
func protocolDayNumber(start, now time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(startDay).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
