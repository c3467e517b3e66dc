package record

// Inventory item defaults applied when the corresponding inputs are absent.
const (
	DefaultDescription = "No description"
	DefaultCategory    = "Uncategorized"
	DefaultItemStatus  = "Active"
)

// InventoryItem is a registration entry for a project script or tool.
type InventoryItem struct {
	Path        string `json:"path"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// InventoryRegistry is the global script/tool inventory, keyed by path.
type InventoryRegistry struct {
	Items map[string]InventoryItem `json:"items"`
}

// ApplyDefaults ensures the item map serializes as {} rather than null.
func (r *InventoryRegistry) ApplyDefaults() {
	if r.Items == nil {
		r.Items = map[string]InventoryItem{}
	}
}

// Upsert registers an item under its path, replacing any existing entry
// whole. Empty fields fall back to the registry defaults.
func (r *InventoryRegistry) Upsert(item InventoryItem) {
	if item.Description == "" {
		item.Description = DefaultDescription
	}
	if item.Category == "" {
		item.Category = DefaultCategory
	}
	if item.Status == "" {
		item.Status = DefaultItemStatus
	}
	r.Items[item.Path] = item
}
