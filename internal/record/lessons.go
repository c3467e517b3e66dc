package record

import "time"

// Lesson is a technical or process lesson learned during a phase.
type Lesson struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// LessonsRegistry is the global lessons-learned document, keyed by phase id.
type LessonsRegistry struct {
	Phases map[string][]Lesson `json:"phases"`
}

// ApplyDefaults ensures the phase map serializes as {} rather than null.
func (r *LessonsRegistry) ApplyDefaults() {
	if r.Phases == nil {
		r.Phases = map[string][]Lesson{}
	}
}

// Add inserts a lesson under the given phase key unless the exact text is
// already recorded for that phase. Returns false for the duplicate no-op.
func (r *LessonsRegistry) Add(phase, text string) bool {
	for _, lesson := range r.Phases[phase] {
		if lesson.Text == text {
			return false
		}
	}
	r.Phases[phase] = append(r.Phases[phase], Lesson{
		Text:      text,
		Timestamp: time.Now(),
	})
	return true
}
