// Package curated ships the hand-authored parent-predicate table for a known
// Biolink hierarchy snapshot, as an alternative to deriving sets from the
// tree. Membership is manually assigned, not threshold-derived.
package curated

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"metakg/predtree/internal/hierarchy"
)

//go:embed biolink.toml
var embeddedTable []byte

// Coverage grades how much of the hierarchy a curated parent summarizes.
type Coverage string

const (
	CoverageUniversal Coverage = "universal"
	CoverageVeryHigh  Coverage = "very_high"
	CoverageHigh      Coverage = "high"
	CoverageModerate  Coverage = "moderate"
)

func (c Coverage) valid() bool {
	switch c {
	case CoverageUniversal, CoverageVeryHigh, CoverageHigh, CoverageModerate:
		return true
	}
	return false
}

// ParentEntry describes one curated parent predicate.
type ParentEntry struct {
	Children       []string `toml:"children" json:"children"`
	Coverage       Coverage `toml:"coverage" json:"coverage"`
	Recommendation string   `toml:"recommendation" json:"recommendation"`
}

// Table is the full curated snapshot: parent entries plus named use-case sets.
type Table struct {
	Parents map[string]ParentEntry `toml:"parents" json:"parents"`
	Sets    map[string][]string    `toml:"sets" json:"sets"`
}

// Default returns the embedded snapshot table.
func Default() (*Table, error) {
	var t Table
	if err := toml.Unmarshal(embeddedTable, &t); err != nil {
		return nil, fmt.Errorf("parsing embedded curated table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFromFile reads a curated table from a TOML file, overriding the
// embedded snapshot.
func LoadFromFile(path string) (*Table, error) {
	var t Table
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("loading curated table from %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &t, nil
}

func (t *Table) validate() error {
	for name, entry := range t.Parents {
		if !entry.Coverage.valid() {
			return fmt.Errorf("curated parent %q has unknown coverage grade %q", name, entry.Coverage)
		}
	}
	return nil
}

// UseCaseSets returns the named sets with universal-coverage predicates
// stripped. The root-equivalent entry is graded universal exactly so it can
// never leak into a default filter.
func (t *Table) UseCaseSets() map[string][]string {
	sets := make(map[string][]string, len(t.Sets))
	for name, members := range t.Sets {
		filtered := make([]string, 0, len(members))
		for _, m := range members {
			if entry, ok := t.Parents[m]; ok && entry.Coverage == CoverageUniversal {
				continue
			}
			filtered = append(filtered, m)
		}
		sets[name] = filtered
	}
	return sets
}

// Provider adapts a Table to the PredicateSetProvider contract.
type Provider struct {
	table *Table
}

// NewProvider wraps an already-loaded table.
func NewProvider(t *Table) *Provider {
	return &Provider{table: t}
}

func (p *Provider) Strategy() string { return "curated" }

// BuildSets ignores the computed optimal parents: membership comes from the
// snapshot table alone.
func (p *Provider) BuildSets(_ []hierarchy.NodeMetrics) (map[string][]string, error) {
	return p.table.UseCaseSets(), nil
}

// Table exposes the underlying snapshot for detail rendering.
func (p *Provider) Table() *Table { return p.table }
