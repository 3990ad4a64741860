package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	t.Parallel()

	if got := Mean([]float64{1, 2, 3, 4}); !almostEqual(got, 2.5) {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}

func TestVariance_SampleDenominator(t *testing.T) {
	t.Parallel()

	// Sample variance of {2, 4, 4, 4, 5, 5, 7, 9} is 32/7.
	got := Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(got, 32.0/7.0) {
		t.Errorf("Variance = %v, want %v", got, 32.0/7.0)
	}
}

func TestVariance_FewerThanTwoValues(t *testing.T) {
	t.Parallel()

	if got := Variance([]float64{3}); got != 0 {
		t.Errorf("Variance of one value = %v, want 0", got)
	}
}

func TestStdev(t *testing.T) {
	t.Parallel()

	got := Stdev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(got, math.Sqrt(32.0/7.0)) {
		t.Errorf("Stdev = %v, want %v", got, math.Sqrt(32.0/7.0))
	}
}

func TestMedian_OddAndEven(t *testing.T) {
	t.Parallel()

	if got := Median([]float64{3, 1, 2}); !almostEqual(got, 2) {
		t.Errorf("odd Median = %v, want 2", got)
	}
	if got := Median([]float64{4, 1, 3, 2}); !almostEqual(got, 2.5) {
		t.Errorf("even Median = %v, want 2.5", got)
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 2}
	Median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestSummarize_NearestRankPercentiles(t *testing.T) {
	t.Parallel()

	values := make([]float64, 10)
	for i := range values {
		values[i] = float64(i) // 0..9 already sorted
	}
	s := Summarize(values)
	if s.N != 10 {
		t.Errorf("N = %d, want 10", s.N)
	}
	// Nearest rank: index floor(n*p).
	if s.P10 != 1 || s.P25 != 2 || s.P75 != 7 || s.P90 != 9 {
		t.Errorf("percentiles = %v/%v/%v/%v, want 1/2/7/9", s.P10, s.P25, s.P75, s.P90)
	}
	if s.Min != 0 || s.Max != 9 {
		t.Errorf("Min/Max = %v/%v, want 0/9", s.Min, s.Max)
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", s)
	}
}

func TestPearson_PerfectCorrelation(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 4}
	b := []float64{2, 4, 6, 8}
	if got := Pearson(a, b); !almostEqual(got, 1) {
		t.Errorf("Pearson = %v, want 1", got)
	}
	inv := []float64{8, 6, 4, 2}
	if got := Pearson(a, inv); !almostEqual(got, -1) {
		t.Errorf("Pearson = %v, want -1", got)
	}
}

func TestPearson_Degenerate(t *testing.T) {
	t.Parallel()

	if got := Pearson([]float64{1, 2}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("mismatched lengths: got %v, want 0", got)
	}
	if got := Pearson([]float64{5, 5, 5}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("constant series: got %v, want 0", got)
	}
}

func TestCohenD_Signed(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3}
	b := []float64{3, 4, 5}
	d, ok := CohenD(a, b)
	if !ok {
		t.Fatal("expected defined effect size")
	}
	// Both variances are 1, pooled deviation 1, gap 2.
	if !almostEqual(d, 2) {
		t.Errorf("CohenD = %v, want 2", d)
	}
	rev, _ := CohenD(b, a)
	if !almostEqual(rev, -2) {
		t.Errorf("reversed CohenD = %v, want -2", rev)
	}
}

func TestCohenD_Undefined(t *testing.T) {
	t.Parallel()

	if _, ok := CohenD([]float64{1}, []float64{1, 2}); ok {
		t.Error("expected undefined for one-value sample")
	}
	if _, ok := CohenD([]float64{2, 2}, []float64{3, 3}); ok {
		t.Error("expected undefined for zero pooled deviation")
	}
}
