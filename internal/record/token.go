package record

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CanonicalID normalizes a phase identifier for use in file and directory
// names. Integer-parsable ids are zero-padded to two digits ("3" -> "03");
// anything else passes through verbatim. This rule must match everywhere a
// phase id maps to a filesystem location.
func CanonicalID(id string) string {
	if n, err := strconv.Atoi(id); err == nil {
		return fmt.Sprintf("%02d", n)
	}
	return id
}

// DirToken derives the phase directory name for an id, e.g. "3" -> "phase_03".
func DirToken(id string) string {
	return "phase_" + CanonicalID(id)
}

// NormalizePhaseKey strips any literal "phase" prefix label and surrounding
// whitespace from an id so "phase 7" and "7" address the same registry key.
func NormalizePhaseKey(id string) string {
	return strings.TrimSpace(strings.ReplaceAll(id, "phase", ""))
}

// SortPhaseKeys orders phase ids numerically when they parse as integers,
// with non-numeric ids after all numeric ones in lexicographic order.
func SortPhaseKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		ni, iNum := phaseKeyNum(keys[i])
		nj, jNum := phaseKeyNum(keys[j])
		switch {
		case iNum && jNum:
			return ni < nj
		case iNum != jNum:
			return iNum
		default:
			return keys[i] < keys[j]
		}
	})
}

// SortPhaseEntries orders roadmap entries by id using the same rule as
// SortPhaseKeys.
func SortPhaseEntries(entries []PhaseEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ni, iNum := phaseKeyNum(entries[i].ID)
		nj, jNum := phaseKeyNum(entries[j].ID)
		switch {
		case iNum && jNum:
			return ni < nj
		case iNum != jNum:
			return iNum
		default:
			return entries[i].ID < entries[j].ID
		}
	})
}

func phaseKeyNum(id string) (int, bool) {
	n, err := strconv.Atoi(id)
	return n, err == nil
}
