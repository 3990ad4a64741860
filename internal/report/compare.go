// Package report produces the diagnostic readability comparison between
// corpus tiers: per-metric descriptive statistics, effect sizes, correlation
// matrices, and terminal histograms. It never feeds decisions back into
// corpus construction — output is observational only.
package report

import (
	"sort"

	"github.com/cmfunderburk/Reader/internal/metrics"
	"github.com/cmfunderburk/Reader/internal/stats"
)

// TierSample is a named population of scored articles.
type TierSample struct {
	Name    string
	Vectors []metrics.Vector
}

// Series extracts one metric's values from a population.
func Series(vectors []metrics.Vector, def metrics.Definition) []float64 {
	out := make([]float64, len(vectors))
	for i, v := range vectors {
		out[i] = def.Value(v)
	}
	return out
}

// MetricComparison holds one metric's statistics for two populations.
// CohenD is signed B minus A: positive when B averages higher.
type MetricComparison struct {
	Def     metrics.Definition
	A       stats.Summary
	B       stats.Summary
	Gap     float64
	CohenD  float64
	CohenOK bool
}

// Compare computes comparisons between two populations for the selected
// metrics, in the given order.
func Compare(a TierSample, b TierSample, defs []metrics.Definition) []MetricComparison {
	out := make([]MetricComparison, 0, len(defs))
	for _, def := range defs {
		seriesA := Series(a.Vectors, def)
		seriesB := Series(b.Vectors, def)
		d, ok := stats.CohenD(seriesA, seriesB)
		out = append(out, MetricComparison{
			Def:     def,
			A:       stats.Summarize(seriesA),
			B:       stats.Summarize(seriesB),
			Gap:     stats.Mean(seriesB) - stats.Mean(seriesA),
			CohenD:  d,
			CohenOK: ok,
		})
	}
	return out
}

// Correlations computes the symmetric Pearson matrix across all metric pairs
// within one population. Element [i][j] correlates defs[i] with defs[j].
func Correlations(vectors []metrics.Vector, defs []metrics.Definition) [][]float64 {
	series := make([][]float64, len(defs))
	for i, def := range defs {
		series[i] = Series(vectors, def)
	}

	matrix := make([][]float64, len(defs))
	for i := range defs {
		matrix[i] = make([]float64, len(defs))
		for j := range defs {
			if j < i {
				matrix[i][j] = matrix[j][i]
				continue
			}
			matrix[i][j] = stats.Pearson(series[i], series[j])
		}
	}
	return matrix
}

// SeparationRanking orders comparisons by descending |Cohen's d|: the
// metrics that best separate the two populations come first. Comparisons
// without a defined effect size sort last.
func SeparationRanking(comps []MetricComparison) []MetricComparison {
	ranked := append([]MetricComparison(nil), comps...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CohenOK != ranked[j].CohenOK {
			return ranked[i].CohenOK
		}
		return abs(ranked[i].CohenD) > abs(ranked[j].CohenD)
	})
	return ranked
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
