package tracker

import (
	"fmt"

	"github.com/hyperborg/hyperborg/internal/publish"
	"github.com/hyperborg/hyperborg/internal/record"
	"github.com/hyperborg/hyperborg/internal/render"
	"github.com/hyperborg/hyperborg/internal/store"
)

// PlanOptions holds one plan invocation. Step is the text of an item to
// append; empty means no append.
type PlanOptions struct {
	PhaseID string
	Init    bool
	Step    string
	Render  bool
}

// Plan initializes or extends a phase plan. Whenever a plan exists in memory
// by the end of the invocation, even a plain load with no mutation, its
// Markdown mirror is regenerated and published.
func (t *Tracker) Plan(opts PlanOptions) error {
	planPath := t.cfg.PlanPath(opts.PhaseID)

	var plan *record.PhasePlan
	if loaded, found := store.Load[record.PhasePlan](planPath); found {
		p := loaded
		plan = &p
		if plan.PhaseID == "" {
			plan.PhaseID = opts.PhaseID
		}
	}

	if opts.Init {
		if plan != nil {
			// Idempotent: the existing plan is preserved untouched.
			fmt.Fprintf(t.out, "Plan for Phase %s already exists.\n", opts.PhaseID)
		} else {
			title := record.UntitledPlan
			if res, found := store.Load[record.PhaseResults](t.cfg.ResultsPath(opts.PhaseID)); found && res.Title != "" {
				title = res.Title
			}
			plan = record.NewPhasePlan(opts.PhaseID, title)
			if err := store.Save(planPath, plan); err != nil {
				return err
			}
			fmt.Fprintf(t.out, "Initialized Plan for Phase %s\n", opts.PhaseID)
		}
	}

	if opts.Step != "" {
		if plan == nil {
			return fmt.Errorf("plan for phase %s not found, run --init first", opts.PhaseID)
		}
		plan.Items = append(plan.Items, record.NewPlanItem(opts.Step))
		if err := store.Save(planPath, plan); err != nil {
			return err
		}
		fmt.Fprintln(t.out, "Added plan item.")
	}

	if plan == nil {
		return nil
	}

	mdPath := t.cfg.PlanMarkdownPath(opts.PhaseID)
	if err := publish.Write(mdPath, render.Plan(plan)); err != nil {
		return err
	}
	if err := publish.Sync(mdPath, t.cfg.DocsDir()); err != nil {
		return err
	}
	if opts.Render {
		fmt.Fprintf(t.out, "Rendered plan to %s\n", mdPath)
	}
	return nil
}
