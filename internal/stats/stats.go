// Package stats holds the small set of descriptive-statistic primitives the
// corpus tooling shares: means, sample deviations, nearest-rank percentiles,
// Pearson correlation, and pooled effect size. All functions are pure and
// operate on float64 slices without mutating them.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean. Empty input returns 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the unbiased sample variance (n-1 denominator).
// Fewer than two values return 0.
func Variance(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(n-1)
}

// Stdev returns the unbiased sample standard deviation.
func Stdev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Median returns the middle value, averaging the two central values for even
// lengths. Empty input returns 0.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	s := sortedCopy(values)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// Summary is a fixed set of descriptive statistics for one sample.
// Percentiles use nearest-rank indexing: the value at floor(n*p).
type Summary struct {
	N      int
	Mean   float64
	Median float64
	Stdev  float64
	P10    float64
	P25    float64
	P75    float64
	P90    float64
	Min    float64
	Max    float64
}

// Summarize computes a Summary. Empty input returns the zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}
	s := sortedCopy(values)
	return Summary{
		N:      n,
		Mean:   Mean(s),
		Median: Median(s),
		Stdev:  Stdev(s),
		P10:    nearestRank(s, 0.10),
		P25:    nearestRank(s, 0.25),
		P75:    nearestRank(s, 0.75),
		P90:    nearestRank(s, 0.90),
		Min:    s[0],
		Max:    s[n-1],
	}
}

// Pearson returns the sample Pearson correlation of two equal-length series.
// Degenerate inputs (length mismatch, fewer than two points, or zero
// deviation in either series) return 0.
func Pearson(a []float64, b []float64) float64 {
	n := len(a)
	if n != len(b) || n < 2 {
		return 0
	}
	meanA := Mean(a)
	meanB := Mean(b)
	cov := 0.0
	for i := range a {
		cov += (a[i] - meanA) * (b[i] - meanB)
	}
	cov /= float64(n - 1)

	sdA := Stdev(a)
	sdB := Stdev(b)
	if sdA == 0 || sdB == 0 {
		return 0
	}
	return cov / (sdA * sdB)
}

// CohenD returns the pooled-variance effect size of b relative to a: positive
// when b's mean exceeds a's. Returns ok=false when either sample has fewer
// than two values or the pooled deviation is zero.
func CohenD(a []float64, b []float64) (d float64, ok bool) {
	if len(a) < 2 || len(b) < 2 {
		return 0, false
	}
	pooled := math.Sqrt((Variance(a) + Variance(b)) / 2)
	if pooled == 0 {
		return 0, false
	}
	return (Mean(b) - Mean(a)) / pooled, true
}

func nearestRank(sorted []float64, p float64) float64 {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func sortedCopy(values []float64) []float64 {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	return s
}
