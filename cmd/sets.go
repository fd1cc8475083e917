package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"metakg/predtree/internal/curated"
	"metakg/predtree/internal/hierarchy"
)

var setsJSON bool

var setsCmd = &cobra.Command{
	Use:   "sets <input>",
	Short: "Build named predicate sets for use as default query filters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := LoadTree(args[0])
		if err != nil {
			return err
		}
		provider, err := SelectProvider()
		if err != nil {
			return err
		}

		metrics, err := hierarchy.Analyze(root)
		if err != nil {
			return err
		}
		cfg := hierarchy.SetProfile()
		cfg.RootPredicate = rootPredicate
		parents := hierarchy.FindOptimalParents(metrics, cfg)

		sets, err := provider.BuildSets(parents)
		if err != nil {
			return err
		}

		if setsJSON {
			return writeJSON(cmd.OutOrStdout(), sets)
		}

		w := cmd.OutOrStdout()
		printSets(w, sets, metrics)
		if p, ok := provider.(*curated.Provider); ok {
			printCuratedTable(w, p.Table())
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	setsCmd.Flags().BoolVar(&setsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(setsCmd)
}

// printCuratedTable renders the snapshot table, skipping the universal root
// entry: it is never a usable filter.
func printCuratedTable(w io.Writer, table *curated.Table) {
	fmt.Fprintln(w, "\n  CURATED PARENTS BY COVERAGE")
	fmt.Fprintln(w, "  ────────────────────────────────────────")

	names := make([]string, 0, len(table.Parents))
	for name, entry := range table.Parents {
		if entry.Coverage == curated.CoverageUniversal {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := table.Parents[name]
		fmt.Fprintf(w, "  %-32s %2d children  %-10s %s\n",
			name, len(entry.Children), entry.Coverage, entry.Recommendation)
	}
}
