package hierarchy

// Size caps for the computed sets.
const (
	comprehensiveSize = 5
	focusedSize       = 8
	minimalSize       = 6
	highLevelSize     = 6
)

// BuildSets partitions an efficiency-ranked optimal-parents list into the
// four computed predicate sets. Every sub-filter preserves the incoming rank
// order; nothing is re-sorted.
func BuildSets(optimalParents []NodeMetrics) map[string][]string {
	return map[string][]string{
		// Top performers, unfiltered by size.
		"comprehensive": pick(optimalParents, comprehensiveSize, func(NodeMetrics) bool {
			return true
		}),
		// Moderate coverage.
		"focused": pick(optimalParents, focusedSize, func(m NodeMetrics) bool {
			return m.TotalChildren >= 20 && m.TotalChildren <= 50
		}),
		// Smaller, more specific.
		"minimal": pick(optimalParents, minimalSize, func(m NodeMetrics) bool {
			return m.TotalChildren >= 5 && m.TotalChildren <= 20
		}),
		// Shallow parents only.
		"high_level": pick(optimalParents, highLevelSize, func(m NodeMetrics) bool {
			return m.Depth <= 2
		}),
	}
}

func pick(parents []NodeMetrics, limit int, keep func(NodeMetrics) bool) []string {
	names := make([]string, 0, limit)
	for _, p := range parents {
		if len(names) == limit {
			break
		}
		if keep(p) {
			names = append(names, p.Name)
		}
	}
	return names
}
