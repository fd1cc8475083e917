package hierarchy

import "sort"

// RootPredicate is the maximally broad relation at the top of the Biolink
// hierarchy. It matches everything and therefore filters nothing, so it is
// never a candidate parent no matter how the thresholds are set.
const RootPredicate = "related_to"

// SelectorConfig holds the candidate-filter thresholds.
type SelectorConfig struct {
	MinChildren   int
	MaxDepth      int
	RootPredicate string
}

// ReportProfile is the looser profile used for ranked top-N reporting.
func ReportProfile() SelectorConfig {
	return SelectorConfig{MinChildren: 5, MaxDepth: 3, RootPredicate: RootPredicate}
}

// SetProfile is the tighter profile that feeds the set builder.
func SetProfile() SelectorConfig {
	return SelectorConfig{MinChildren: 10, MaxDepth: 2, RootPredicate: RootPredicate}
}

// FindOptimalParents filters the analysis down to candidate parent predicates
// and ranks them by efficiency, descending. The sort is stable: candidates of
// equal efficiency keep their pre-order traversal order.
func FindOptimalParents(metrics []NodeMetrics, cfg SelectorConfig) []NodeMetrics {
	var candidates []NodeMetrics
	for _, m := range metrics {
		if !m.HasChildren || m.TotalChildren < cfg.MinChildren || m.Depth > cfg.MaxDepth {
			continue
		}
		if m.Name == cfg.RootPredicate {
			continue
		}
		candidates = append(candidates, m)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Efficiency > candidates[j].Efficiency
	})

	return candidates
}
