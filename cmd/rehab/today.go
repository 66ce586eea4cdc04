package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's protocol exercises",
	Long: `Show the exercises of the current protocol day, which ones are done and
your streak. A check mark means the exercise was completed after the most
recent 05:00.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd.Context(), app, time.Now())
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(ctx context.Context, a *application, now time.Time) error {
	view, err := a.protocol.Today(ctx, a.playerID)
	if err != nil {
		return fmt.Errorf("failed to load today's protocol: %w", err)
	}
	if view.Injury == nil {
		color.New(color.FgGreen).Fprintln(a.out, "No active protocol. Run 'rehab triage <body-area>' if something hurts.")
		return nil
	}
	printInjury(a, view.Injury, now)
	progress := view.Progress
	if progress == nil || progress.TotalTasks == 0 {
		fmt.Fprintln(a.out, "No exercises prescribed today.")
		return nil
	}

	green := color.New(color.FgGreen)
	faint := color.New(color.Faint)
	fmt.Fprintln(a.out)
	for _, task := range progress.Tasks {
		mark := faint.Sprint("○")
		if task.Satisfied {
			mark = green.Sprint("✓")
		}
		fmt.Fprintf(a.out, "  %s %s  %s  %s\n", mark, padRight(task.Title, 24), dosage(task.Reps, task.Sets), faint.Sprint(task.ID))
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%d/%d done (%.0f%%)  resets %s\n",
		progress.SatisfiedCount, progress.TotalTasks, progress.Percent,
		progress.WindowEnd.Format("Mon 15:04"))
	fmt.Fprintf(a.out, "Streak: %d\n", progress.Streak.Count)
	return nil
}

func padRight(s string, width int) string {
	if len([]rune(s)) >= width {
		return s
	}
	return s + fmt.Sprintf("%*s", width-len([]rune(s)), "")
}
