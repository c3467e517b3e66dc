package cli

import (
	"github.com/spf13/cobra"

	"github.com/hyperborg/hyperborg/internal/tracker"
)

var (
	logInit       bool
	logTitle      string
	logStatus     string
	logAction     string
	logOutcome    string
	logArtifacts  []string
	logObjective  string
	logFinding    string
	logNextStep   string
	logUsageTitle string
	logUsageCode  string
	logUsageDesc  string
)

var logCmd = &cobra.Command{
	Use:   "log <phase-id>",
	Short: "Manage phase results",
	Long:  `Initialize and update the results document of a phase. Mutations compose: one invocation may set the status, add an objective and record an execution log entry.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTracker()
		if err != nil {
			return err
		}
		return t.Log(tracker.LogOptions{
			PhaseID:    args[0],
			Init:       logInit,
			Title:      logTitle,
			Status:     logStatus,
			Action:     logAction,
			Outcome:    logOutcome,
			Artifacts:  logArtifacts,
			Objective:  logObjective,
			Finding:    logFinding,
			NextStep:   logNextStep,
			UsageTitle: logUsageTitle,
			UsageCode:  logUsageCode,
			UsageDesc:  logUsageDesc,
		})
	},
}

func init() {
	logCmd.Flags().BoolVar(&logInit, "init", false, "Initialize a new phase")
	logCmd.Flags().StringVar(&logTitle, "title", "", "Phase title (required with --init)")
	logCmd.Flags().StringVar(&logStatus, "status", "", "Update the phase status")
	logCmd.Flags().StringVar(&logAction, "action", "", "Log an execution action")
	logCmd.Flags().StringVar(&logOutcome, "outcome", "", "Outcome of the logged action")
	logCmd.Flags().StringArrayVar(&logArtifacts, "artifact", nil, "Artifact produced by the logged action (repeatable)")
	logCmd.Flags().StringVar(&logObjective, "add-obj", "", "Add an objective")
	logCmd.Flags().StringVar(&logFinding, "add-finding", "", "Add a key finding")
	logCmd.Flags().StringVar(&logNextStep, "add-next", "", "Add a next step")
	logCmd.Flags().StringVar(&logUsageTitle, "add-usage-title", "", "Title for a usage example")
	logCmd.Flags().StringVar(&logUsageCode, "add-usage-code", "", "Code for a usage example")
	logCmd.Flags().StringVar(&logUsageDesc, "add-usage-desc", "", "Description for a usage example")
}
