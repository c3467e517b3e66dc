package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hyperborg/hyperborg/internal/record"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns zero value and found=false", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.json")

		reg, found := Load[record.LessonsRegistry](path)
		if found {
			t.Error("expected found=false for a missing file")
		}
		if reg.Phases == nil {
			t.Error("defaults should be applied to the zero value")
		}
	})

	t.Run("corrupt file substitutes a default document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "inventory.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}

		reg, found := Load[record.InventoryRegistry](path)
		if !found {
			t.Error("expected found=true for an existing file")
		}
		if len(reg.Items) != 0 {
			t.Errorf("got %d items, want an empty substitute", len(reg.Items))
		}
		if reg.Items == nil {
			t.Error("defaults should be applied to the substitute")
		}
	})

	t.Run("shape mismatch substitutes a default document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plan.json")
		if err := os.WriteFile(path, []byte(`{"items": "not a list"}`), 0644); err != nil {
			t.Fatal(err)
		}

		plan, found := Load[record.PhasePlan](path)
		if !found {
			t.Error("expected found=true for an existing file")
		}
		if len(plan.Items) != 0 {
			t.Errorf("got %d items, want an empty substitute", len(plan.Items))
		}
	})

	t.Run("valid file loads with defaults filled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.json")
		if err := os.WriteFile(path, []byte(`{"phase_id": "3", "title": "Bootstrap"}`), 0644); err != nil {
			t.Fatal(err)
		}

		res, found := Load[record.PhaseResults](path)
		if !found {
			t.Fatal("expected found=true")
		}
		if res.Title != "Bootstrap" {
			t.Errorf("title = %q, want %q", res.Title, "Bootstrap")
		}
		if res.Objectives == nil || res.Metrics == nil {
			t.Error("collections absent from the file should decode as empty, not nil")
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "phases", "phase_03", "results.json")

		if err := Save(path, record.NewPhaseResults("3", "Bootstrap")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("saved file missing: %v", err)
		}
	})

	t.Run("uses two-space indentation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plan.json")

		if err := Save(path, record.NewPhasePlan("3", "Bootstrap")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(data, []byte("\n  \"phase_id\"")) {
			t.Errorf("expected 2-space indentation, got:\n%s", data)
		}
	})
}

// Round-trip: save(load(save(D))) must equal save(D) for every document type.
func TestRoundTrip(t *testing.T) {
	end := "2026-02-01"
	extra := orderedmap.New[string, string]()
	extra.Set("Zeta", "last section stays last")
	extra.Set("Alpha", "insertion order, not sort order")

	t.Run("phase results", func(t *testing.T) {
		res := record.NewPhaseResults("3", "Bootstrap")
		res.EndDate = &end
		res.Objectives = append(res.Objectives, "stand up infra")
		res.ExecutionLog = append(res.ExecutionLog, record.NewLogEntry("deploy", "ok", []string{"run.log"}))
		res.Metrics["latency_ms"] = 12.5
		res.UsageExamples = append(res.UsageExamples, record.UsageExample{Title: "Run", Code: "make run"})
		checkRoundTrip(t, *res)
	})

	t.Run("phase plan", func(t *testing.T) {
		plan := record.NewPhasePlan("3", "Bootstrap")
		plan.Items = append(plan.Items, record.NewPlanItem("stand up infra"))
		checkRoundTrip(t, *plan)
	})

	t.Run("lessons registry", func(t *testing.T) {
		reg := record.LessonsRegistry{Phases: map[string][]record.Lesson{
			"3": {{Text: "pad ids", Timestamp: time.Now()}},
		}}
		checkRoundTrip(t, reg)
	})

	t.Run("inventory registry", func(t *testing.T) {
		reg := record.InventoryRegistry{}
		reg.ApplyDefaults()
		reg.Upsert(record.InventoryItem{Path: "scripts/run.sh", Description: "runner"})
		checkRoundTrip(t, reg)
	})

	t.Run("overview registry", func(t *testing.T) {
		reg := record.OverviewRegistry{
			Mission:       "ship it",
			ExtraSections: extra,
		}
		reg.ApplyDefaults()
		reg.UpsertPhase(record.PhaseEntry{ID: "3", Title: "Bootstrap"})
		reg.AddFAQ("why", "because")
		checkRoundTrip(t, reg)
	})
}

func checkRoundTrip[T any](t *testing.T, doc T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := Save(path, doc); err != nil {
		t.Fatalf("first save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded, found := Load[T](path)
	if !found {
		t.Fatal("expected found=true after save")
	}
	if err := Save(path, loaded); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("round trip not byte-identical:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}
