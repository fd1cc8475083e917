package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"metakg/predtree/internal/hierarchy"
)

var (
	analyzeJSON        bool
	analyzeMinChildren int
	analyzeMaxDepth    int
	analyzeTopN        int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input>",
	Short: "Analyze a predicate hierarchy: metrics, optimal parents, predicate sets",
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

		cfg := hierarchy.SelectorConfig{
			MinChildren:   analyzeMinChildren,
			MaxDepth:      analyzeMaxDepth,
			RootPredicate: rootPredicate,
		}
		report, err := hierarchy.BuildReport(root, cfg, provider)
		if err != nil {
			return err
		}

		if analyzeJSON {
			return writeJSON(cmd.OutOrStdout(), report)
		}
		printReport(cmd.OutOrStdout(), report, analyzeTopN)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	analyzeCmd.Flags().IntVar(&analyzeMinChildren, "min-children", 5, "Minimum total descendants for a candidate parent")
	analyzeCmd.Flags().IntVar(&analyzeMaxDepth, "max-depth", 3, "Maximum depth for a candidate parent")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 10, "Number of ranked parents to show")
	rootCmd.AddCommand(analyzeCmd)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func printReport(w io.Writer, report *hierarchy.CoverageReport, topN int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PREDICATE HIERARCHY ANALYSIS")
	fmt.Fprintln(w, "  ────────────────────────────────────────")
	fmt.Fprintf(w, "  Predicates: %d  Optimal parent candidates: %d\n",
		len(report.Analysis), len(report.OptimalParents))

	ranked := report.OptimalParents
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	if len(ranked) > 0 {
		fmt.Fprintf(w, "\n  Top %d most efficient parents:\n", len(ranked))
		for i, p := range ranked {
			fmt.Fprintf(w, "  %2d. %-35s children=%3d depth=%d efficiency=%.1f\n",
				i+1, p.Name, p.TotalChildren, p.Depth, p.Efficiency)
		}
	}

	printSets(w, report.PredicateSets, report.Analysis)
	fmt.Fprintln(w)
}

// printSets lists each set, annotating members with descendant counts when
// the predicate appears in the analysis.
func printSets(w io.Writer, sets map[string][]string, analysis []hierarchy.NodeMetrics) {
	counts := make(map[string]int, len(analysis))
	for _, m := range analysis {
		// Names are not globally unique: first pre-order occurrence wins.
		if _, ok := counts[m.Name]; !ok {
			counts[m.Name] = m.TotalChildren
		}
	}

	fmt.Fprintln(w, "\n  PREDICATE SETS")
	fmt.Fprintln(w, "  ────────────────────────────────────────")
	for _, name := range sortedSetNames(sets) {
		members := sets[name]
		fmt.Fprintf(w, "\n  %s (%d predicates):\n", strings.ToUpper(name), len(members))
		for _, m := range members {
			if n, ok := counts[m]; ok {
				fmt.Fprintf(w, "    - %-35s (%d children)\n", m, n)
			} else {
				fmt.Fprintf(w, "    - %s\n", m)
			}
		}
	}
}

func sortedSetNames(sets map[string][]string) []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
