package record

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultOverviewTitle is used when the overview document is first created.
const DefaultOverviewTitle = "Project HYPERBORG Overview"

// PhaseEntry is a roadmap entry in the project overview.
type PhaseEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// OverviewRegistry is the global project overview document. Extra sections
// keep their insertion order across save/load, which a plain map cannot
// guarantee.
type OverviewRegistry struct {
	Title         string                                 `json:"title"`
	Mission       string                                 `json:"mission"`
	Architecture  string                                 `json:"architecture"`
	Phases        []PhaseEntry                           `json:"phases"`
	FAQ           []FAQItem                              `json:"faq"`
	ExtraSections *orderedmap.OrderedMap[string, string] `json:"extra_sections"`
}

// ApplyDefaults fills zero-valued fields so a fresh or recovered document
// serializes with the expected shape.
func (r *OverviewRegistry) ApplyDefaults() {
	if r.Title == "" {
		r.Title = DefaultOverviewTitle
	}
	if r.Phases == nil {
		r.Phases = []PhaseEntry{}
	}
	if r.FAQ == nil {
		r.FAQ = []FAQItem{}
	}
	if r.ExtraSections == nil {
		r.ExtraSections = orderedmap.New[string, string]()
	}
}

// UpsertPhase updates the entry with the given id in place, or appends a new
// one. Status and description are only overwritten when non-empty; a new
// entry without a status starts as Pending.
func (r *OverviewRegistry) UpsertPhase(entry PhaseEntry) {
	for i := range r.Phases {
		if r.Phases[i].ID != entry.ID {
			continue
		}
		r.Phases[i].Title = entry.Title
		if entry.Status != "" {
			r.Phases[i].Status = entry.Status
		}
		if entry.Description != "" {
			r.Phases[i].Description = entry.Description
		}
		return
	}
	if entry.Status == "" {
		entry.Status = StatusPending
	}
	r.Phases = append(r.Phases, entry)
}

// AddFAQ appends a question/answer pair to the overview FAQ.
func (r *OverviewRegistry) AddFAQ(question, answer string) {
	r.FAQ = append(r.FAQ, FAQItem{Question: question, Answer: answer})
}
