package cli

import (
	"github.com/spf13/cobra"

	"github.com/hyperborg/hyperborg/internal/tracker"
)

var (
	lessonsPhase  string
	lessonsText   string
	lessonsRender bool
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Manage lessons learned",
	Long:  `Record lessons learned against a phase, or render the global lessons registry to Markdown. Duplicate lesson text within a phase is ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTracker()
		if err != nil {
			return err
		}
		return t.Lessons(tracker.LessonsOptions{
			Phase:  lessonsPhase,
			Text:   lessonsText,
			Render: lessonsRender,
		})
	},
}

func init() {
	lessonsCmd.Flags().StringVar(&lessonsPhase, "phase", "", "Phase id the lesson belongs to")
	lessonsCmd.Flags().StringVar(&lessonsText, "text", "", "Lesson content")
	lessonsCmd.Flags().BoolVar(&lessonsRender, "render", false, "Render the registry to Markdown instead of adding")
}
