// Package merge combines freshly extracted skills with the resume's existing
// skills under a fixed per-category capacity.
package merge

import (
	"slices"

	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

// Capacity is the maximum number of skills kept per category. Chosen so a
// category renders on a single resume line without wrapping.
const Capacity = 9

// Merge produces an ordered, duplicate-free union of baseline and incoming,
// capped at capacity. When over capacity, baseline items are evicted first in
// their original order; incoming items are only dropped (by truncating from
// the front of the result) once every removable baseline item is gone.
//
// Dedup is exact string equality: no case folding, no trimming.
func Merge(baseline []string, incoming []string, capacity int) []string {
	merged := make([]string, 0, len(baseline)+len(incoming))
	merged = append(merged, baseline...)
	for _, skill := range incoming {
		if !slices.Contains(merged, skill) {
			merged = append(merged, skill)
		}
	}

	for len(merged) > capacity {
		evicted := false
		for _, old := range baseline {
			if i := slices.Index(merged, old); i >= 0 {
				merged = slices.Delete(merged, i, i+1)
				evicted = true
				break
			}
		}
		if !evicted {
			merged = merged[:capacity]
		}
	}

	return merged
}

// Sets merges each category of incoming into baseline at the standard capacity.
func Sets(baseline types.SkillSet, incoming types.SkillSet) types.SkillSet {
	return types.SkillSet{
		Programming: Merge(baseline.Programming, incoming.Programming, Capacity),
		Development: Merge(baseline.Development, incoming.Development, Capacity),
		AI:          Merge(baseline.AI, incoming.AI, Capacity),
	}
}
