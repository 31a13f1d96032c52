package util

import (
	"sort"

	"golang.org/x/exp/maps"
)

// RankByCount returns the map's keys ordered by descending count.
// Ties break alphabetically so the ordering is stable.
func RankByCount(counts map[string]int) []string {
	var sorted []string
	sorted = maps.Keys(counts)
	sort.Slice(sorted, func(i, j int) bool {
		if counts[sorted[i]] != counts[sorted[j]] {
			return counts[sorted[i]] > counts[sorted[j]]
		}
		return sorted[i] < sorted[j]
	})

	return sorted
}

// Truncate shortens s to max runes for chart tooltips.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
