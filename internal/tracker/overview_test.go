package tracker

import (
	"os"
	"strings"
	"testing"

	"github.com/hyperborg/hyperborg/internal/record"
	"github.com/hyperborg/hyperborg/internal/store"
)

func TestReportMutations(t *testing.T) {
	t.Run("faq needs both question and answer", func(t *testing.T) {
		tr, cfg, _ := newTestTracker(t)

		if err := tr.Report(ReportOptions{FAQQuestion: "why?"}); err != nil {
			t.Fatalf("half a FAQ is simply not applied: %v", err)
		}
		if _, err := os.Stat(cfg.OverviewPath()); !os.IsNotExist(err) {
			t.Error("nothing should be persisted when no mutation applies")
		}
	})

	t.Run("faq and phase entry apply in one invocation", func(t *testing.T) {
		tr, cfg, _ := newTestTracker(t)

		err := tr.Report(ReportOptions{
			FAQQuestion: "why?",
			FAQAnswer:   "because",
			PhaseID:     "3",
			Title:       "Bootstrap",
			Description: "initial infra",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reg, _ := store.Load[record.OverviewRegistry](cfg.OverviewPath())
		if len(reg.FAQ) != 1 || len(reg.Phases) != 1 {
			t.Errorf("faq = %v, phases = %v", reg.FAQ, reg.Phases)
		}
		if reg.Title != record.DefaultOverviewTitle {
			t.Errorf("title = %q, want the default", reg.Title)
		}
	})

	t.Run("phase entry upserts in place", func(t *testing.T) {
		tr, cfg, _ := newTestTracker(t)

		tr.Report(ReportOptions{PhaseID: "3", Title: "Bootstrap"})
		tr.Report(ReportOptions{PhaseID: "3", Title: "Bootstrap v2", Status: "Active"})

		reg, _ := store.Load[record.OverviewRegistry](cfg.OverviewPath())
		if len(reg.Phases) != 1 {
			t.Fatalf("got %d entries, want 1", len(reg.Phases))
		}
		if reg.Phases[0].Title != "Bootstrap v2" || reg.Phases[0].Status != "Active" {
			t.Errorf("entry not updated in place: %+v", reg.Phases[0])
		}
	})
}

func TestReportRender(t *testing.T) {
	tr, cfg, _ := newTestTracker(t)
	tr.Report(ReportOptions{PhaseID: "10", Title: "Scale"})
	tr.Report(ReportOptions{PhaseID: "2", Title: "Build", Status: "Active"})

	before, _ := os.ReadFile(cfg.OverviewPath())

	if err := tr.Report(ReportOptions{Render: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	md, err := os.ReadFile(cfg.OverviewMarkdownPath())
	if err != nil {
		t.Fatalf("rendered markdown missing: %v", err)
	}
	text := string(md)
	if !strings.Contains(text, "# "+record.DefaultOverviewTitle) {
		t.Errorf("missing title heading:\n%s", text)
	}
	if strings.Index(text, "Phase 2 (Build)") > strings.Index(text, "Phase 10 (Scale)") {
		t.Errorf("roadmap out of order:\n%s", text)
	}

	after, _ := os.ReadFile(cfg.OverviewPath())
	if string(before) != string(after) {
		t.Error("render mode must not mutate the registry")
	}
}
