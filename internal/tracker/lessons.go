package tracker

import (
	"fmt"

	"github.com/hyperborg/hyperborg/internal/publish"
	"github.com/hyperborg/hyperborg/internal/record"
	"github.com/hyperborg/hyperborg/internal/render"
	"github.com/hyperborg/hyperborg/internal/store"
)

// LessonsOptions holds one lessons invocation: either a render pass or an
// add keyed by phase.
type LessonsOptions struct {
	Phase  string
	Text   string
	Render bool
}

// Lessons records a lesson against a phase or renders the whole registry.
// Duplicate text within a phase is a reported no-op, not an error.
func (t *Tracker) Lessons(opts LessonsOptions) error {
	path := t.cfg.LessonsPath()
	reg, _ := store.Load[record.LessonsRegistry](path)

	if opts.Render {
		mdPath := t.cfg.LessonsMarkdownPath()
		if err := publish.Write(mdPath, render.Lessons(&reg)); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Rendered lessons to %s\n", mdPath)
		return nil
	}

	if opts.Phase == "" || opts.Text == "" {
		return fmt.Errorf("--phase and --text are required to add a lesson")
	}

	key := record.NormalizePhaseKey(opts.Phase)
	if !reg.Add(key, opts.Text) {
		fmt.Fprintln(t.out, "Duplicate lesson ignored.")
		return nil
	}
	if err := store.Save(path, &reg); err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Lesson added to Phase %s.\n", key)
	return nil
}
