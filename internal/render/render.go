// Package render turns tracker documents into deterministic Markdown.
// Renderers are pure: same document in, same text out, no side effects.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyperborg/hyperborg/internal/record"
)

// Phase renders a phase results document.
func Phase(res *record.PhaseResults) string {
	lines := []string{
		fmt.Sprintf("# Phase %s: %s", res.PhaseID, res.Title),
		"",
		fmt.Sprintf("**Status:** %s", res.Status),
		fmt.Sprintf("**Date:** %s", res.StartDate),
		"",
		"## Objectives",
	}
	for _, o := range res.Objectives {
		lines = append(lines, "- "+o)
	}
	lines = append(lines, "")

	if len(res.ExecutionLog) > 0 {
		lines = append(lines, "## Execution Log")
		for _, entry := range res.ExecutionLog {
			lines = append(lines,
				fmt.Sprintf("- **%s**: %s", datePart(entry.Timestamp), entry.Action),
				fmt.Sprintf("  - Outcome: %s", entry.Outcome),
			)
		}
	}

	if len(res.Metrics) > 0 {
		lines = append(lines, "## Metrics")
		keys := make([]string, 0, len(res.Metrics))
		for k := range res.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("- **%s:** %v", k, res.Metrics[k]))
		}
	}

	if len(res.KeyFindings) > 0 {
		lines = append(lines, "## Key Findings")
		for _, f := range res.KeyFindings {
			lines = append(lines, "- "+f)
		}
	}

	if len(res.NextSteps) > 0 {
		lines = append(lines, "## Next Steps")
		for _, n := range res.NextSteps {
			lines = append(lines, "- "+n)
		}
	}

	if len(res.UsageExamples) > 0 {
		lines = append(lines, "## Usage Examples")
		for _, ex := range res.UsageExamples {
			lines = append(lines, "### "+ex.Title)
			if ex.Description != "" {
				lines = append(lines, ex.Description, "")
			}
			lines = append(lines, fmt.Sprintf("```bash\n%s\n```", ex.Code))
		}
	}

	return strings.Join(lines, "\n")
}

// Plan renders a phase plan as a numbered step list.
func Plan(p *record.PhasePlan) string {
	lines := []string{
		fmt.Sprintf("# Plan: Phase %s - %s", p.PhaseID, p.Title),
		"",
	}
	for i, item := range p.Items {
		lines = append(lines, fmt.Sprintf("%d. **[%s]** %s", i+1, datePart(item.Timestamp), item.Step))
	}
	return strings.Join(lines, "\n")
}

// Lessons renders the lessons registry, phases sorted numeric-first.
func Lessons(reg *record.LessonsRegistry) string {
	lines := []string{"# Project HYPERBORG - Lessons Learned", ""}

	keys := make([]string, 0, len(reg.Phases))
	for k := range reg.Phases {
		keys = append(keys, k)
	}
	record.SortPhaseKeys(keys)

	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("## Phase %s", key))
		for _, lesson := range reg.Phases[key] {
			lines = append(lines, fmt.Sprintf("- **[%s]** %s", lesson.Timestamp.Format("2006-01-02"), lesson.Text))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// Inventory renders the script inventory as a table sorted by path.
func Inventory(reg *record.InventoryRegistry) string {
	lines := []string{
		"# Hyperborg Script & Tool Inventory",
		"",
		"| Path | Description | Status |",
		"|---|---|---|",
	}

	keys := make([]string, 0, len(reg.Items))
	for k := range reg.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		item := reg.Items[k]
		lines = append(lines, fmt.Sprintf("| `%s` | %s | %s |", item.Path, item.Description, item.Status))
	}

	return strings.Join(lines, "\n")
}

// Overview renders the project overview: roadmap, FAQ, then each extra
// section in its insertion order.
func Overview(reg *record.OverviewRegistry) string {
	lines := []string{
		"# " + reg.Title,
		"",
		reg.Mission,
		"",
		"## Roadmap",
	}

	entries := make([]record.PhaseEntry, len(reg.Phases))
	copy(entries, reg.Phases)
	record.SortPhaseEntries(entries)
	for _, p := range entries {
		lines = append(lines, fmt.Sprintf("- **Phase %s (%s)**: [%s]", p.ID, p.Title, p.Status))
	}

	if len(reg.FAQ) > 0 {
		lines = append(lines, "", "## FAQ", "")
		for _, item := range reg.FAQ {
			lines = append(lines, "### "+item.Question, item.Answer, "")
		}
	}

	if reg.ExtraSections != nil {
		for pair := reg.ExtraSections.Oldest(); pair != nil; pair = pair.Next() {
			lines = append(lines, "", "## "+pair.Key, "", pair.Value)
		}
	}

	return strings.Join(lines, "\n")
}

// datePart extracts the date from an ISO timestamp.
func datePart(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}
