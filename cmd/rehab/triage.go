package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/internal/triage"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/spf13/cobra"
)

var triageCmd = &cobra.Command{
	Use:   "triage <body-area>",
	Short: "Find your injury and start its recovery protocol",
	Long: `Triage lists the known injuries for a body area and walks you to a protocol.

STEPS:

  1. Pick the injury that matches what you feel.
  2. If the injury has warning signs, confirm you have none of them.
     Reporting any of them stops here: see a medical professional.
  3. Read the medical card and start the protocol.

Answer b to go back a step, q to cancel. Nothing is saved until you start
the protocol.

EXAMPLES:

  rehab triage Knee
  rehab triage "Lower Back"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTriage(cmd.Context(), app, args[0])
	},
}

func init() {
	rootCmd.AddCommand(triageCmd)
}

func runTriage(ctx context.Context, a *application, region string) error {
	wizard := triage.NewController(a.api, a.api, a.logger)
	if err := wizard.SelectRegion(ctx, region); err != nil {
		return fmt.Errorf("failed to load injuries for %s: %w", region, err)
	}
	hint := color.New(color.FgYellow)
	for {
		switch st := wizard.State().(type) {
		case triage.Symptom:
			if len(st.Candidates) == 0 {
				fmt.Fprintf(a.out, "No injuries listed for %s.\n", region)
				return nil
			}
			printCandidates(a, st)
			answer, err := a.prompt(fmt.Sprintf("Select injury [1-%d] or q to cancel: ", len(st.Candidates)))
			if err != nil {
				return err
			}
			if answer == "q" {
				return cancelTriage(a, wizard)
			}
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(st.Candidates) {
				hint.Fprintln(a.out, "Pick a number from the list.")
				continue
			}
			if err = wizard.Pick(st.Candidates[n-1].ID); err != nil {
				return err
			}
		case triage.RedFlags:
			printRedFlags(a, st.Selected)
			answer, err := a.prompt("Do you have any of these symptoms? [y/n, b back, q cancel]: ")
			if err != nil {
				return err
			}
			switch answer {
			case "y", "yes":
				referral, err := wizard.ReportSymptoms()
				if err != nil {
					return err
				}
				printReferral(a, referral)
				return nil
			case "n", "no":
				err = wizard.AffirmSafety()
			case "b":
				err = wizard.Back()
			case "q":
				return cancelTriage(a, wizard)
			default:
				hint.Fprintln(a.out, "Answer y or n.")
			}
			if err != nil {
				return err
			}
		case triage.MedicalCard:
			printMedicalCard(a, st.Selected)
			answer, err := a.prompt("Start this recovery protocol? [y/n, b back]: ")
			if err != nil {
				return err
			}
			switch answer {
			case "y", "yes":
				injury, err := wizard.Activate(ctx, a.playerID)
				if errors.Is(err, errorvalues.ErrActivationConflict) {
					return fmt.Errorf("a protocol is already running, resolve it first: %w", err)
				}
				if err != nil {
					return fmt.Errorf("failed to start protocol: %w", err)
				}
				color.New(color.FgGreen).Fprintf(a.out, "✓ Protocol started: %s (%s)\n", injury.InjuryType, injury.BodyArea)
				fmt.Fprintln(a.out, "Run 'rehab today' to see your exercises.")
				return nil
			case "n", "no", "q":
				return cancelTriage(a, wizard)
			case "b":
				if err = wizard.Back(); err != nil {
					return err
				}
			default:
				hint.Fprintln(a.out, "Answer y or n.")
			}
		default:
			return nil
		}
	}
}

func cancelTriage(a *application, wizard *triage.Controller) error {
	wizard.Cancel()
	fmt.Fprintln(a.out, "Cancelled. Nothing was saved.")
	return nil
}

func printCandidates(a *application, st triage.Symptom) {
	color.New(color.Bold).Fprintf(a.out, "%s injuries:\n", st.Region)
	faint := color.New(color.Faint)
	for i, c := range st.Candidates {
		fmt.Fprintf(a.out, "  %d) %s", i+1, c.InjuryType)
		if c.EstimatedRecoveryDays > 0 {
			faint.Fprintf(a.out, "  ~%d days", c.EstimatedRecoveryDays)
		}
		fmt.Fprintln(a.out)
	}
}

func printRedFlags(a *application, entry entity.InjuryCatalogEntry) {
	color.New(color.FgRed, color.Bold).Fprintf(a.out, "⚠ Warning signs for %s:\n", entry.InjuryType)
	fmt.Fprintf(a.out, "  %s\n", strings.TrimSpace(*entry.RedFlags))
}

func printReferral(a *application, entry *entity.InjuryCatalogEntry) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintln(a.out, "Stop. Do not start a self-guided protocol.")
	if entry != nil {
		fmt.Fprintf(a.out, "The symptoms you reported for %s need a medical professional.\n", entry.InjuryType)
		if entry.ImmediateAction != "" {
			fmt.Fprintf(a.out, "Until then: %s\n", entry.ImmediateAction)
		}
	}
}

func printMedicalCard(a *application, entry entity.InjuryCatalogEntry) {
	faint := color.New(color.Faint)
	color.New(color.Bold).Fprintf(a.out, "%s (%s)\n", entry.InjuryType, entry.BodyArea)
	if entry.ImmediateAction != "" {
		fmt.Fprintf(a.out, "  Immediate action: %s\n", entry.ImmediateAction)
	}
	if entry.EstimatedRecoveryDays > 0 {
		fmt.Fprintf(a.out, "  Estimated recovery: %d days\n", entry.EstimatedRecoveryDays)
	}
	if len(entry.RecoveryExercises) > 0 {
		fmt.Fprintln(a.out, "  Daily exercises:")
		for _, ex := range entry.RecoveryExercises {
			fmt.Fprintf(a.out, "    - %s  %s\n", ex.Name, dosage(ex.Reps, ex.Sets))
		}
	}
	if entry.VideoURL != nil && *entry.VideoURL != "" {
		faint.Fprintf(a.out, "  Video: %s\n", *entry.VideoURL)
	}
}

func dosage(reps, sets string) string {
	if sets == "" {
		return reps
	}
	return sets + " x " + reps
}
