// Package tracker implements the command handlers behind the CLI. Each
// handler loads its document, applies the requested mutations, persists the
// JSON, then regenerates the Markdown mirror.
package tracker

import (
	"io"

	"github.com/hyperborg/hyperborg/internal/config"
)

// Tracker orchestrates document lifecycles against one workspace.
type Tracker struct {
	cfg *config.Config
	out io.Writer
}

// New returns a tracker for the given workspace. Status lines for applied
// actions are written to out.
func New(cfg *config.Config, out io.Writer) *Tracker {
	return &Tracker{cfg: cfg, out: out}
}
