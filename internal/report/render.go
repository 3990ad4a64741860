package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmfunderburk/Reader/internal/metrics"
	"github.com/cmfunderburk/Reader/internal/stats"
)

// WriteComparison renders per-metric statistics for two populations with the
// signed effect size in the header.
func WriteComparison(w io.Writer, a TierSample, b TierSample, comps []MetricComparison) {
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(w, "  READABILITY METRIC COMPARISON: %s vs %s\n", a.Name, b.Name)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 70))

	for _, comp := range comps {
		fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", 70))
		fmt.Fprintf(w, "  %s  (Cohen's d = %s)\n", comp.Def.Label, formatCohenD(comp))
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 70))
		fmt.Fprintf(w, "  %-12s %8s %8s %8s %8s %8s %8s %8s\n",
			"", "Mean", "Median", "StDev", "P10", "P25", "P75", "P90")
		writeSummaryRow(w, a.Name, comp.Def, comp.A)
		writeSummaryRow(w, b.Name, comp.Def, comp.B)
		fmt.Fprintf(w, "  Gap (%s - %s): %s\n",
			b.Name, a.Name, metrics.Format(comp.Def, comp.Gap))
	}
}

// writeSummaryRow renders one population's statistics at the metric's
// display precision.
func writeSummaryRow(w io.Writer, name string, def metrics.Definition, s stats.Summary) {
	fmt.Fprintf(w, "  %-12s %8s %8s %8s %8s %8s %8s %8s\n",
		name,
		metrics.Format(def, s.Mean), metrics.Format(def, s.Median),
		metrics.Format(def, s.Stdev),
		metrics.Format(def, s.P10), metrics.Format(def, s.P25),
		metrics.Format(def, s.P75), metrics.Format(def, s.P90))
}

func formatCohenD(comp MetricComparison) string {
	if !comp.CohenOK {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f", comp.CohenD)
}

// WriteCorrelations renders the symmetric Pearson matrix with short labels.
func WriteCorrelations(w io.Writer, name string, defs []metrics.Definition, matrix [][]float64) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(w, "  INTER-METRIC CORRELATIONS (%s)\n", name)
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", 70))

	fmt.Fprintf(w, "  %-8s", "")
	for _, def := range defs {
		fmt.Fprintf(w, "%8s", shortLabel(def))
	}
	fmt.Fprintln(w)

	for i, def := range defs {
		fmt.Fprintf(w, "  %-8s", shortLabel(def))
		for j := range defs {
			fmt.Fprintf(w, "%8.2f", matrix[i][j])
		}
		fmt.Fprintln(w)
	}
}

// WriteSeparationRanking renders metrics ordered by separation power.
func WriteSeparationRanking(w io.Writer, ranked []MetricComparison) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(w, "  SEPARATION POWER RANKING (|Cohen's d|)\n")
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", 70))

	for _, comp := range ranked {
		if !comp.CohenOK {
			fmt.Fprintf(w, "  %5s  %-20s  %s\n", "N/A", "", comp.Def.Label)
			continue
		}
		d := abs(comp.CohenD)
		bar := strings.Repeat("#", int(d*10))
		fmt.Fprintf(w, "  %5.2f  %-20s  %s\n", d, bar, comp.Def.Label)
	}
}

var shortLabels = map[string]string{
	"fk_grade":      "FK",
	"dale_chall":    "D-C",
	"mean_zipf":     "Zipf",
	"pct_rare":      "%Rare",
	"pct_poly":      "%Poly",
	"mean_word_len": "WdLen",
	"ttr":           "TTR",
}

func shortLabel(def metrics.Definition) string {
	if s, ok := shortLabels[def.Key]; ok {
		return s
	}
	return def.Key
}
