package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hyperborg/hyperborg/internal/publish"
	"github.com/hyperborg/hyperborg/internal/record"
	"github.com/hyperborg/hyperborg/internal/render"
	"github.com/hyperborg/hyperborg/internal/store"
)

// LogOptions holds the mutations for one phase results invocation. All of
// them compose: a single call may set status, append an objective and log an
// execution entry.
type LogOptions struct {
	PhaseID    string
	Init       bool
	Title      string
	Status     string
	Action     string
	Outcome    string
	Artifacts  []string
	Objective  string
	Finding    string
	NextStep   string
	UsageTitle string
	UsageCode  string
	UsageDesc  string
}

// Log applies mutations to a phase results document, then persists it and
// regenerates its Markdown mirror. Rendering happens on every invocation so
// the Markdown always reflects the latest on-disk JSON.
func (t *Tracker) Log(opts LogOptions) error {
	resultsPath := t.cfg.ResultsPath(opts.PhaseID)

	var res *record.PhaseResults
	if opts.Init {
		if opts.Title == "" {
			return fmt.Errorf("--title is required with --init")
		}
		// A fresh document is built even when one exists on disk; init on
		// an existing phase discards its history.
		res = record.NewPhaseResults(opts.PhaseID, opts.Title)
		fmt.Fprintf(t.out, "Initialized Phase %s\n", opts.PhaseID)
	} else {
		loaded, found := store.Load[record.PhaseResults](resultsPath)
		if !found {
			return fmt.Errorf("phase %s not found, use --init", opts.PhaseID)
		}
		res = &loaded
		if res.PhaseID == "" {
			// Recovered from an unreadable file; re-anchor the id.
			res.PhaseID = opts.PhaseID
		}
	}

	if opts.Status != "" {
		if strings.EqualFold(opts.Status, record.StatusActive) {
			if err := t.requirePlan(opts.PhaseID); err != nil {
				return err
			}
		}
		res.Status = opts.Status
	}

	if opts.Objective != "" {
		res.Objectives = append(res.Objectives, opts.Objective)
	}
	if opts.Finding != "" {
		res.KeyFindings = append(res.KeyFindings, opts.Finding)
	}
	if opts.NextStep != "" {
		res.NextSteps = append(res.NextSteps, opts.NextStep)
	}
	if opts.UsageTitle != "" && opts.UsageCode != "" {
		res.UsageExamples = append(res.UsageExamples, record.UsageExample{
			Title:       opts.UsageTitle,
			Code:        opts.UsageCode,
			Description: opts.UsageDesc,
		})
	}
	if opts.Action != "" && opts.Outcome != "" {
		res.ExecutionLog = append(res.ExecutionLog, record.NewLogEntry(opts.Action, opts.Outcome, opts.Artifacts))
	}

	if err := store.Save(resultsPath, res); err != nil {
		return err
	}

	mdPath := t.cfg.PhaseMarkdownPath(opts.PhaseID)
	if err := publish.Write(mdPath, render.Phase(res)); err != nil {
		return err
	}
	if err := publish.Sync(mdPath, t.cfg.DocsDir()); err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Updated Phase %s results.\n", opts.PhaseID)
	return nil
}

// requirePlan enforces the Active-status gate: the sibling plan document
// must exist on disk and contain at least one item. The file is read
// directly so the generic loader's recovery policy cannot mask a missing or
// broken plan.
func (t *Tracker) requirePlan(phaseID string) error {
	data, err := os.ReadFile(t.cfg.PlanPath(phaseID))
	if err != nil {
		return fmt.Errorf("cannot move to Active without a plan, run 'hyperborg plan %s --init' first", phaseID)
	}
	var plan record.PhasePlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return fmt.Errorf("failed to parse plan for phase %s: %w", phaseID, err)
	}
	if len(plan.Items) == 0 {
		return fmt.Errorf("plan for phase %s is empty, add items with 'hyperborg plan %s --add'", phaseID, phaseID)
	}
	return nil
}
