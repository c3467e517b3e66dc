package cli

import (
	"github.com/spf13/cobra"

	"github.com/hyperborg/hyperborg/internal/tracker"
)

var (
	planInit   bool
	planAdd    string
	planRender bool
)

var planCmd = &cobra.Command{
	Use:   "plan <phase-id>",
	Short: "Manage phase plans",
	Long:  `Initialize a phase execution plan and append steps to it. The plan's Markdown mirror is regenerated whenever the plan is touched or even just loaded.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTracker()
		if err != nil {
			return err
		}
		return t.Plan(tracker.PlanOptions{
			PhaseID: args[0],
			Init:    planInit,
			Step:    planAdd,
			Render:  planRender,
		})
	},
}

func init() {
	planCmd.Flags().BoolVar(&planInit, "init", false, "Initialize the plan (no-op if it exists)")
	planCmd.Flags().StringVar(&planAdd, "add", "", "Append a plan step")
	planCmd.Flags().BoolVar(&planRender, "render", false, "Report the rendered Markdown location")
}
