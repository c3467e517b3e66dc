package cli

import (
	"github.com/spf13/cobra"

	"github.com/hyperborg/hyperborg/internal/tracker"
)

var (
	reportRender  bool
	reportPhaseID string
	reportTitle   string
	reportStatus  string
	reportDesc    string
	reportFAQQ    string
	reportFAQA    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage the project overview",
	Long:  `Update the project overview roadmap and FAQ, or render the overview document to Markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTracker()
		if err != nil {
			return err
		}
		return t.Report(tracker.ReportOptions{
			Render:      reportRender,
			PhaseID:     reportPhaseID,
			Title:       reportTitle,
			Status:      reportStatus,
			Description: reportDesc,
			FAQQuestion: reportFAQQ,
			FAQAnswer:   reportFAQA,
		})
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportRender, "render", false, "Render the overview to Markdown instead of updating")
	reportCmd.Flags().StringVar(&reportPhaseID, "phase-id", "", "Roadmap phase id")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Roadmap phase title")
	reportCmd.Flags().StringVar(&reportStatus, "status", "", "Roadmap phase status")
	reportCmd.Flags().StringVar(&reportDesc, "desc", "", "Roadmap phase description")
	reportCmd.Flags().StringVar(&reportFAQQ, "add-faq-q", "", "FAQ question")
	reportCmd.Flags().StringVar(&reportFAQA, "add-faq-a", "", "FAQ answer")
}
