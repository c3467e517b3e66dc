package tracker

import (
	"fmt"

	"github.com/hyperborg/hyperborg/internal/publish"
	"github.com/hyperborg/hyperborg/internal/record"
	"github.com/hyperborg/hyperborg/internal/render"
	"github.com/hyperborg/hyperborg/internal/store"
)

// InventoryOptions holds one inventory invocation: either a render pass or
// an upsert keyed by path.
type InventoryOptions struct {
	Path        string
	Description string
	Category    string
	Status      string
	Render      bool
}

// Inventory upserts a script entry or renders the inventory table.
// Re-registering an existing path replaces the entry whole.
func (t *Tracker) Inventory(opts InventoryOptions) error {
	path := t.cfg.InventoryPath()
	reg, _ := store.Load[record.InventoryRegistry](path)

	if opts.Render {
		mdPath := t.cfg.InventoryMarkdownPath()
		if err := publish.Write(mdPath, render.Inventory(&reg)); err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Rendered inventory to %s\n", mdPath)
		return nil
	}

	if opts.Path == "" {
		return fmt.Errorf("--path is required")
	}

	reg.Upsert(record.InventoryItem{
		Path:        opts.Path,
		Category:    opts.Category,
		Description: opts.Description,
		Status:      opts.Status,
	})
	if err := store.Save(path, &reg); err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Updated inventory: %s\n", opts.Path)
	return nil
}
