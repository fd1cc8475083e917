package hierarchy

import "fmt"

// CoverageReport aggregates one analysis run for the report emitter.
type CoverageReport struct {
	Analysis       []NodeMetrics       `json:"analysis"`
	OptimalParents []NodeMetrics       `json:"optimal_parents"`
	PredicateSets  map[string][]string `json:"predicate_sets"`
}

// BuildReport runs the full pipeline: analyze the tree, select optimal
// parents with the reporting profile, select again with the tighter
// set-builder profile, build the sets through the provider, and assemble.
func BuildReport(root *Node, reportCfg SelectorConfig, provider PredicateSetProvider) (*CoverageReport, error) {
	metrics, err := Analyze(root)
	if err != nil {
		return nil, err
	}

	optimal := FindOptimalParents(metrics, reportCfg)

	setCfg := SetProfile()
	setCfg.RootPredicate = reportCfg.RootPredicate
	setParents := FindOptimalParents(metrics, setCfg)

	sets, err := provider.BuildSets(setParents)
	if err != nil {
		return nil, fmt.Errorf("building predicate sets: %w", err)
	}

	return &CoverageReport{
		Analysis:       metrics,
		OptimalParents: optimal,
		PredicateSets:  sets,
	}, nil
}
