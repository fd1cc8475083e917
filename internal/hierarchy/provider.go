package hierarchy

// PredicateSetProvider builds the named predicate sets from the ranked
// optimal-parents list. Implementations are interchangeable; downstream
// consumers only ever see the set-name to members mapping.
type PredicateSetProvider interface {
	// Strategy names the implementation ("computed", "curated").
	Strategy() string
	// BuildSets returns the named sets. Implementations that do not derive
	// their membership from the tree may ignore the argument.
	BuildSets(optimalParents []NodeMetrics) (map[string][]string, error)
}

// ComputedProvider derives sets from the tree itself via BuildSets.
type ComputedProvider struct{}

func (ComputedProvider) Strategy() string { return "computed" }

func (ComputedProvider) BuildSets(optimalParents []NodeMetrics) (map[string][]string, error) {
	return BuildSets(optimalParents), nil
}
