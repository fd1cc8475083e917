package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"metakg/predtree/internal/curated"
	"metakg/predtree/internal/hierarchy"
	"metakg/predtree/internal/source"
)

var (
	strategy      string
	curatedTable  string
	rootPredicate string
)

var rootCmd = &cobra.Command{
	Use:   "predtree",
	Short: "Predicate hierarchy analysis and set building",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "computed", "Set-building strategy: computed or curated")
	rootCmd.PersistentFlags().StringVar(&curatedTable, "curated-table", "", "Path to a TOML table overriding the embedded curated snapshot")
	rootCmd.PersistentFlags().StringVar(&rootPredicate, "root-predicate", hierarchy.RootPredicate, "Root-equivalent predicate always excluded from candidacy")
}

// LoadTree reads and decodes the hierarchy named by the positional argument.
func LoadTree(path string) (*hierarchy.Node, error) {
	root, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading hierarchy: %w", err)
	}
	return root, nil
}

// SelectProvider resolves the configured set-building strategy.
func SelectProvider() (hierarchy.PredicateSetProvider, error) {
	switch strategy {
	case "computed":
		return hierarchy.ComputedProvider{}, nil
	case "curated":
		table, err := loadCuratedTable()
		if err != nil {
			return nil, err
		}
		return curated.NewProvider(table), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want computed or curated)", strategy)
	}
}

func loadCuratedTable() (*curated.Table, error) {
	if curatedTable != "" {
		return curated.LoadFromFile(curatedTable)
	}
	return curated.Default()
}
