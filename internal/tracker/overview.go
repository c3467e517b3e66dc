package tracker

import (
	"fmt"

	"github.com/hyperborg/hyperborg/internal/publish"
	"github.com/hyperborg/hyperborg/internal/record"
	"github.com/hyperborg/hyperborg/internal/render"
	"github.com/hyperborg/hyperborg/internal/store"
)

// ReportOptions holds one overview invocation. The FAQ append and the phase
// upsert are independent; both may apply in a single call.
type ReportOptions struct {
	Render      bool
	PhaseID     string
	Title       string
	Status      string
	Description string
	FAQQuestion string
	FAQAnswer   string
}

// Report mutates or renders the project overview. Each applied mutation
// persists the registry immediately.
func (t *Tracker) Report(opts ReportOptions) error {
	path := t.cfg.OverviewPath()
	reg, _ := store.Load[record.OverviewRegistry](path)

	if opts.Render {
		mdPath := t.cfg.OverviewMarkdownPath()
		if err := publish.Write(mdPath, render.Overview(&reg)); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Rendered overview to %s\n", mdPath)
		return nil
	}

	if opts.FAQQuestion != "" && opts.FAQAnswer != "" {
		reg.AddFAQ(opts.FAQQuestion, opts.FAQAnswer)
		if err := store.Save(path, &reg); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Added FAQ item: %s\n", opts.FAQQuestion)
	}

	if opts.PhaseID != "" && opts.Title != "" {
		reg.UpsertPhase(record.PhaseEntry{
			ID:          opts.PhaseID,
			Title:       opts.Title,
			Status:      opts.Status,
			Description: opts.Description,
		})
		if err := store.Save(path, &reg); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Updated overview for Phase %s\n", opts.PhaseID)
	}

	return nil
}
