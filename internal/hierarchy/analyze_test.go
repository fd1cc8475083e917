package hierarchy

import (
	"errors"
	"math"
	"testing"
)

func leaf(name string) *Node { return &Node{Name: name} }

func node(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// workedExample: A -> [B, C]; B -> five leaves; C has a present-but-empty
// children list. Eight nodes total.
func workedExample() *Node {
	return node("A",
		node("B", leaf("D"), leaf("E"), leaf("F"), leaf("G"), leaf("H")),
		&Node{Name: "C", Children: []*Node{}},
	)
}

func metricsByName(t *testing.T, metrics []NodeMetrics) map[string]NodeMetrics {
	t.Helper()
	byName := make(map[string]NodeMetrics, len(metrics))
	for _, m := range metrics {
		byName[m.Name] = m
	}
	return byName
}

func TestAnalyze_WorkedExample(t *testing.T) {
	metrics, err := Analyze(workedExample())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(metrics) != 8 {
		t.Fatalf("expected 8 metrics, got %d", len(metrics))
	}

	wantOrder := []string{"A", "B", "D", "E", "F", "G", "H", "C"}
	for i, name := range wantOrder {
		if metrics[i].Name != name {
			t.Errorf("pre-order position %d: got %s, want %s", i, metrics[i].Name, name)
		}
	}

	m := metricsByName(t, metrics)

	a := m["A"]
	if a.TotalChildren != 7 || a.DirectChildren != 2 || a.Depth != 0 {
		t.Errorf("A: got total=%d direct=%d depth=%d, want 7/2/0",
			a.TotalChildren, a.DirectChildren, a.Depth)
	}
	if a.Efficiency != 7 {
		t.Errorf("A at depth 0 should have efficiency = total_children, got %f", a.Efficiency)
	}

	b := m["B"]
	if b.TotalChildren != 5 || b.DirectChildren != 5 || b.Depth != 1 {
		t.Errorf("B: got total=%d direct=%d depth=%d, want 5/5/1",
			b.TotalChildren, b.DirectChildren, b.Depth)
	}
	if math.Abs(b.CoverageRatio-0.625) > 1e-9 {
		t.Errorf("B coverage: got %f, want 0.625", b.CoverageRatio)
	}
	if b.Efficiency != 5.0 {
		t.Errorf("B efficiency: got %f, want 5.0", b.Efficiency)
	}

	c := m["C"]
	if c.TotalChildren != 0 || c.DirectChildren != 0 {
		t.Errorf("C: got total=%d direct=%d, want 0/0", c.TotalChildren, c.DirectChildren)
	}
	if !c.HasChildren {
		t.Error("C has an empty-but-present children list, so has_children must be true")
	}
	if m["D"].HasChildren {
		t.Error("D has no children field, so has_children must be false")
	}
}

func TestAnalyze_DirectChildrenSum(t *testing.T) {
	trees := map[string]*Node{
		"worked example": workedExample(),
		"single node":    leaf("only"),
		"chain":          node("a", node("b", node("c", leaf("d")))),
		"wide":           node("r", leaf("1"), leaf("2"), leaf("3"), leaf("4")),
	}
	for name, tree := range trees {
		metrics, err := Analyze(tree)
		if err != nil {
			t.Fatalf("%s: Analyze() error: %v", name, err)
		}
		sum := 0
		for _, m := range metrics {
			sum += m.DirectChildren
		}
		if sum != len(metrics)-1 {
			t.Errorf("%s: sum of direct_children = %d, want node count - 1 = %d",
				name, sum, len(metrics)-1)
		}
	}
}

func TestAnalyze_TotalChildrenInvariant(t *testing.T) {
	tree := workedExample()
	metrics, err := Analyze(tree)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	m := metricsByName(t, metrics)

	// total(A) = direct(A) + total(B) + total(C)
	a, b, c := m["A"], m["B"], m["C"]
	if a.TotalChildren != a.DirectChildren+b.TotalChildren+c.TotalChildren {
		t.Errorf("total_children invariant broken at A: %d != %d + %d + %d",
			a.TotalChildren, a.DirectChildren, b.TotalChildren, c.TotalChildren)
	}
}

func TestAnalyze_CoverageBounds(t *testing.T) {
	metrics, err := Analyze(workedExample())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	for _, m := range metrics {
		if m.CoverageRatio < 0 || m.CoverageRatio > 1 {
			t.Errorf("%s: coverage %f out of [0,1]", m.Name, m.CoverageRatio)
		}
	}
	wantRoot := float64(len(metrics)-1) / float64(len(metrics))
	if math.Abs(metrics[0].CoverageRatio-wantRoot) > 1e-9 {
		t.Errorf("root coverage: got %f, want %f", metrics[0].CoverageRatio, wantRoot)
	}
}

func TestAnalyze_MalformedNodeDropsSubtree(t *testing.T) {
	// B has no name; its children D and E must vanish with it.
	tree := node("A",
		node("", leaf("D"), leaf("E")),
		leaf("C"),
	)
	metrics, err := Analyze(tree)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	var names []string
	for _, m := range metrics {
		names = append(names, m.Name)
	}
	if len(names) != 2 || names[0] != "A" || names[1] != "C" {
		t.Fatalf("expected exactly [A C], got %v", names)
	}

	// The dropped subtree is excised from every count, so the denominator is
	// 2 and A retains a single descendant.
	a := metrics[0]
	if a.TotalChildren != 1 || a.DirectChildren != 1 {
		t.Errorf("A: got total=%d direct=%d, want 1/1", a.TotalChildren, a.DirectChildren)
	}
	if math.Abs(a.CoverageRatio-0.5) > 1e-9 {
		t.Errorf("A coverage: got %f, want 0.5", a.CoverageRatio)
	}
}

func TestAnalyze_NamelessRoot(t *testing.T) {
	metrics, err := Analyze(node("", leaf("X")))
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(metrics) != 0 {
		t.Errorf("nameless root should drop the whole tree, got %d metrics", len(metrics))
	}
}

func TestAnalyze_DepthBound(t *testing.T) {
	root := leaf("0")
	current := root
	for i := 0; i < MaxTreeDepth+2; i++ {
		next := leaf("n")
		current.Children = []*Node{next}
		current = next
	}
	if _, err := Analyze(root); !errors.Is(err, ErrTreeTooDeep) {
		t.Errorf("expected ErrTreeTooDeep, got %v", err)
	}
}

func TestPredicates_Preorder(t *testing.T) {
	names, err := Predicates(workedExample())
	if err != nil {
		t.Fatalf("Predicates() error: %v", err)
	}
	want := []string{"A", "B", "D", "E", "F", "G", "H", "C"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, names[i], want[i])
		}
	}
}
