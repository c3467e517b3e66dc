package cli

import (
	"github.com/spf13/cobra"

	"github.com/hyperborg/hyperborg/internal/tracker"
)

var (
	inventoryPath   string
	inventoryDesc   string
	inventoryCat    string
	inventoryStatus string
	inventoryRender bool
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage the script inventory",
	Long:  `Register project scripts and tools in the global inventory, or render it as a Markdown table. Re-registering a path replaces its entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTracker()
		if err != nil {
			return err
		}
		return t.Inventory(tracker.InventoryOptions{
			Path:        inventoryPath,
			Description: inventoryDesc,
			Category:    inventoryCat,
			Status:      inventoryStatus,
			Render:      inventoryRender,
		})
	},
}

func init() {
	inventoryCmd.Flags().StringVar(&inventoryPath, "path", "", "Script path (registry key)")
	inventoryCmd.Flags().StringVar(&inventoryDesc, "desc", "", "Description")
	inventoryCmd.Flags().StringVar(&inventoryCat, "cat", "", "Category")
	inventoryCmd.Flags().StringVar(&inventoryStatus, "status", "", "Status")
	inventoryCmd.Flags().BoolVar(&inventoryRender, "render", false, "Render the inventory to Markdown instead of adding")
}
