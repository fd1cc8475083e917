package hierarchy

import "errors"

// NodeMetrics is the derived record for one named node. Metrics are computed
// once per analysis run and never updated in place.
type NodeMetrics struct {
	Name           string  `json:"name"`
	Depth          int     `json:"depth"`
	DirectChildren int     `json:"direct_children"`
	TotalChildren  int     `json:"total_children"`
	CoverageRatio  float64 `json:"coverage_ratio"`
	Efficiency     float64 `json:"efficiency"`
	HasChildren    bool    `json:"has_children"`
}

// MaxTreeDepth bounds traversal depth. Hierarchies arrive from scraped
// documents, so depth is untrusted input.
const MaxTreeDepth = 4096

// ErrTreeTooDeep indicates the input nests past MaxTreeDepth.
var ErrTreeTooDeep = errors.New("hierarchy: tree exceeds maximum depth")

// kept reports whether a node participates in the analysis at all. A node
// missing its name is malformed, and its entire subtree is excised: it never
// appears in the predicate list, in any count, or in the output.
func kept(n *Node) bool {
	return n != nil && n.Name != ""
}

// Analyze walks the tree and produces one NodeMetrics per retained node, in
// pre-order, with depth 0 at the root. The predicate list is collected once
// up front and serves as the fixed coverage denominator for the whole run.
// All traversal is done with explicit stacks rather than recursion.
func Analyze(root *Node) ([]NodeMetrics, error) {
	if !kept(root) {
		return nil, nil
	}

	predicates, err := Predicates(root)
	if err != nil {
		return nil, err
	}
	totals, err := subtreeTotals(root)
	if err != nil {
		return nil, err
	}

	denominator := float64(len(predicates))
	metrics := make([]NodeMetrics, 0, len(predicates))

	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		direct := 0
		for _, c := range f.node.Children {
			if kept(c) {
				direct++
			}
		}
		total := totals[f.node]

		coverage := 0.0
		if denominator > 0 {
			coverage = float64(total) / denominator
		}
		efficiency := float64(total)
		if f.depth > 0 {
			efficiency = float64(total) / float64(f.depth)
		}

		metrics = append(metrics, NodeMetrics{
			Name:           f.node.Name,
			Depth:          f.depth,
			DirectChildren: direct,
			TotalChildren:  total,
			CoverageRatio:  coverage,
			Efficiency:     efficiency,
			HasChildren:    f.node.Children != nil,
		})

		// Push in reverse so children pop in document order.
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			if c := f.node.Children[i]; kept(c) {
				stack = append(stack, frame{c, f.depth + 1})
			}
		}
	}

	return metrics, nil
}

// Predicates returns every retained predicate name in pre-order.
func Predicates(root *Node) ([]string, error) {
	if !kept(root) {
		return nil, nil
	}

	var names []string
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > MaxTreeDepth {
			return nil, ErrTreeTooDeep
		}
		names = append(names, f.node.Name)
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			if c := f.node.Children[i]; kept(c) {
				stack = append(stack, frame{c, f.depth + 1})
			}
		}
	}
	return names, nil
}

// subtreeTotals computes total_children for every retained node, bottom-up:
// each node's total is the number of retained strict descendants beneath it.
func subtreeTotals(root *Node) (map[*Node]int, error) {
	totals := make(map[*Node]int)

	type frame struct {
		node     *Node
		depth    int
		expanded bool
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if !f.expanded {
			if f.depth > MaxTreeDepth {
				return nil, ErrTreeTooDeep
			}
			stack[len(stack)-1].expanded = true
			for _, c := range f.node.Children {
				if kept(c) {
					stack = append(stack, frame{node: c, depth: f.depth + 1})
				}
			}
			continue
		}

		stack = stack[:len(stack)-1]
		total := 0
		for _, c := range f.node.Children {
			if kept(c) {
				total += 1 + totals[c]
			}
		}
		totals[f.node] = total
	}

	return totals, nil
}
