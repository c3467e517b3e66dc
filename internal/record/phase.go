package record

import "time"

// Phase status constants. Status is a free-text label; these are the two
// states the tooling itself assigns or gates on.
const (
	StatusPending = "Pending"
	StatusActive  = "Active"
)

// LogEntry is one execution log line for a phase.
type LogEntry struct {
	Timestamp string   `json:"timestamp"`
	Action    string   `json:"action"`
	Outcome   string   `json:"outcome"`
	Artifacts []string `json:"artifacts"`
}

// NewLogEntry stamps an execution log entry with the current time.
func NewLogEntry(action, outcome string, artifacts []string) LogEntry {
	if artifacts == nil {
		artifacts = []string{}
	}
	return LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Action:    action,
		Outcome:   outcome,
		Artifacts: artifacts,
	}
}

// UsageExample is a code example recorded against a phase outcome.
type UsageExample struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// FAQItem is a question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PhaseResults is the per-phase results document, one per phase at
// artifacts/phases/<token>/results.json.
type PhaseResults struct {
	PhaseID        string         `json:"phase_id"`
	Title          string         `json:"title"`
	Status         string         `json:"status"`
	StartDate      string         `json:"start_date"`
	EndDate        *string        `json:"end_date"`
	Objectives     []string       `json:"objectives"`
	ExecutionLog   []LogEntry     `json:"execution_log"`
	Metrics        map[string]any `json:"metrics"`
	KeyFindings    []string       `json:"key_findings"`
	Conclusion     *string        `json:"conclusion"`
	NextSteps      []string       `json:"next_steps"`
	FAQ            []FAQItem      `json:"faq"`
	UsageExamples  []UsageExample `json:"usage_examples"`
	Logs           []string       `json:"logs"`
	AdditionalDocs []string       `json:"additional_docs"`
}

// NewPhaseResults constructs a fresh results document with status Pending
// and today's date as the start date.
func NewPhaseResults(phaseID, title string) *PhaseResults {
	res := &PhaseResults{
		PhaseID:   phaseID,
		Title:     title,
		Status:    StatusPending,
		StartDate: time.Now().Format("2006-01-02"),
	}
	res.ApplyDefaults()
	return res
}

// ApplyDefaults fills zero-valued fields so the document serializes with
// empty collections rather than nulls.
func (r *PhaseResults) ApplyDefaults() {
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.Objectives == nil {
		r.Objectives = []string{}
	}
	if r.ExecutionLog == nil {
		r.ExecutionLog = []LogEntry{}
	}
	if r.Metrics == nil {
		r.Metrics = map[string]any{}
	}
	if r.KeyFindings == nil {
		r.KeyFindings = []string{}
	}
	if r.NextSteps == nil {
		r.NextSteps = []string{}
	}
	if r.FAQ == nil {
		r.FAQ = []FAQItem{}
	}
	if r.UsageExamples == nil {
		r.UsageExamples = []UsageExample{}
	}
	if r.Logs == nil {
		r.Logs = []string{}
	}
	if r.AdditionalDocs == nil {
		r.AdditionalDocs = []string{}
	}
}
