package record

import (
	"reflect"
	"testing"
)

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "single digit is zero-padded", id: "7", want: "07"},
		{name: "two digits pass through", id: "42", want: "42"},
		{name: "three digits pass through", id: "425", want: "425"},
		{name: "already-prefixed id is not numeric", id: "phase_07", want: "phase_07"},
		{name: "alphabetic id passes through", id: "alpha", want: "alpha"},
		{name: "zero is padded", id: "0", want: "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalID(tt.id); got != tt.want {
				t.Errorf("CanonicalID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestDirToken(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "3", want: "phase_03"},
		{id: "42", want: "phase_42"},
		{id: "425", want: "phase_425"},
		{id: "alpha", want: "phase_alpha"},
		{id: "phase_07", want: "phase_phase_07"},
	}

	for _, tt := range tests {
		if got := DirToken(tt.id); got != tt.want {
			t.Errorf("DirToken(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNormalizePhaseKey(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "7", want: "7"},
		{id: "phase 7", want: "7"},
		{id: "phase7", want: "7"},
		{id: "  3  ", want: "3"},
		{id: "alpha", want: "alpha"},
	}

	for _, tt := range tests {
		if got := NormalizePhaseKey(tt.id); got != tt.want {
			t.Errorf("NormalizePhaseKey(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestSortPhaseKeys(t *testing.T) {
	t.Run("numeric keys sort by value", func(t *testing.T) {
		keys := []string{"10", "2", "1"}
		SortPhaseKeys(keys)
		want := []string{"1", "2", "10"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("got %v, want %v", keys, want)
		}
	})

	t.Run("non-numeric keys sort after numeric ones", func(t *testing.T) {
		keys := []string{"beta", "3", "alpha", "12"}
		SortPhaseKeys(keys)
		want := []string{"3", "12", "alpha", "beta"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("got %v, want %v", keys, want)
		}
	})
}

func TestSortPhaseEntries(t *testing.T) {
	entries := []PhaseEntry{
		{ID: "final"},
		{ID: "10"},
		{ID: "2"},
	}
	SortPhaseEntries(entries)
	want := []string{"2", "10", "final"}
	for i, entry := range entries {
		if entry.ID != want[i] {
			t.Errorf("entries[%d].ID = %q, want %q", i, entry.ID, want[i])
		}
	}
}
