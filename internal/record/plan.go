package record

import "time"

// PlanItem is a single planned execution step.
type PlanItem struct {
	Step      string `json:"step"`
	Timestamp string `json:"timestamp"`
}

// NewPlanItem stamps a plan item with the current time.
func NewPlanItem(step string) PlanItem {
	return PlanItem{
		Step:      step,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// UntitledPlan is the placeholder title used when a plan is initialized
// before its phase has a results document.
const UntitledPlan = "Untitled Plan"

// PhasePlan is the per-phase execution plan, stored next to the results
// document as plan.json.
type PhasePlan struct {
	PhaseID string     `json:"phase_id"`
	Title   string     `json:"title"`
	Items   []PlanItem `json:"items"`
}

// NewPhasePlan constructs an empty plan for a phase.
func NewPhasePlan(phaseID, title string) *PhasePlan {
	p := &PhasePlan{PhaseID: phaseID, Title: title}
	p.ApplyDefaults()
	return p
}

// ApplyDefaults ensures the item list serializes as [] rather than null.
func (p *PhasePlan) ApplyDefaults() {
	if p.Items == nil {
		p.Items = []PlanItem{}
	}
}
