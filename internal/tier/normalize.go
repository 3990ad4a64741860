// Package tier turns per-article metric vectors into a single difficulty
// ranking and carves percentile slices out of a corpus. Scoring is two-phase:
// population statistics are fitted over every scorable article first, then
// each article is z-scored against that fit. Lower composite means easier
// text; the partitioner takes the lowest slice to build an easier sub-tier.
package tier

import (
	"errors"
	"fmt"

	"github.com/cmfunderburk/Reader/internal/metrics"
	"github.com/cmfunderburk/Reader/internal/stats"
)

// ErrInsufficientPopulation is returned when fewer than two scorable articles
// exist to fit normalization statistics. This is fatal to a scoring run: a
// reference distribution cannot come from one point.
var ErrInsufficientPopulation = errors.New("need at least 2 scorable articles to fit normalization")

// Composite weights. Lexical familiarity (Dale-Chall) is the primary
// difficulty signal; grade level and polysyllable density are secondary,
// equally weighted.
const (
	weightDaleChall = 0.50
	weightFKGrade   = 0.25
	weightPctPoly   = 0.25
)

// MetricStats is the fitted mean and sample standard deviation of one metric
// over a reference population.
type MetricStats struct {
	Mean  float64
	Stdev float64
}

// Normalizer holds the population statistics needed to z-score the composite
// metrics. It is ephemeral: fitted once per run against a fixed reference
// corpus, consumed, and discarded.
type Normalizer struct {
	FKGrade   MetricStats
	DaleChall MetricStats
	PctPoly   MetricStats
}

// Fit computes normalization statistics over a reference population of
// scored vectors. The reference is conventionally the Hard tier: Medium is
// always carved out of Hard, never out of Easy.
func Fit(vectors []metrics.Vector) (Normalizer, error) {
	if len(vectors) < 2 {
		return Normalizer{}, fmt.Errorf("%w (have %d)", ErrInsufficientPopulation, len(vectors))
	}

	fk := make([]float64, len(vectors))
	dc := make([]float64, len(vectors))
	poly := make([]float64, len(vectors))
	for i, v := range vectors {
		fk[i] = v.FKGrade
		dc[i] = v.DaleChall
		poly[i] = v.PctPoly
	}

	norm := Normalizer{
		FKGrade:   MetricStats{Mean: stats.Mean(fk), Stdev: stats.Stdev(fk)},
		DaleChall: MetricStats{Mean: stats.Mean(dc), Stdev: stats.Stdev(dc)},
		PctPoly:   MetricStats{Mean: stats.Mean(poly), Stdev: stats.Stdev(poly)},
	}
	if norm.FKGrade.Stdev == 0 || norm.DaleChall.Stdev == 0 || norm.PctPoly.Stdev == 0 {
		return Normalizer{}, fmt.Errorf("%w: zero variance in reference population", ErrInsufficientPopulation)
	}
	return norm, nil
}

// Composite computes the weighted z-score combination for one article. It is
// a pure function of the vector and the fitted statistics: the same vector
// scores identically no matter which population it came from.
func (n Normalizer) Composite(v metrics.Vector) float64 {
	zDC := (v.DaleChall - n.DaleChall.Mean) / n.DaleChall.Stdev
	zFK := (v.FKGrade - n.FKGrade.Mean) / n.FKGrade.Stdev
	zPoly := (v.PctPoly - n.PctPoly.Mean) / n.PctPoly.Stdev
	return weightDaleChall*zDC + weightFKGrade*zFK + weightPctPoly*zPoly
}
