package report

import (
	"fmt"
	"io"
)

const (
	histogramBins     = 20
	histogramBarWidth = 40
)

// WriteHistogram renders two overlapping distributions as a fixed-width
// terminal histogram. Bin counts normalize to in-population fractions so
// samples of different sizes compare visually.
func WriteHistogram(w io.Writer, label string, a []float64, b []float64, binMin float64, binMax float64) {
	binWidth := (binMax - binMin) / histogramBins

	fracsA := binFractions(a, binMin, binWidth)
	fracsB := binFractions(b, binMin, binWidth)

	maxFrac := 0.001
	for i := 0; i < histogramBins; i++ {
		if fracsA[i] > maxFrac {
			maxFrac = fracsA[i]
		}
		if fracsB[i] > maxFrac {
			maxFrac = fracsB[i]
		}
	}

	fmt.Fprintf(w, "\n  %s\n", label)
	fmt.Fprintf(w, "  %-8s first ▓  second ░  overlap █\n", "")
	for i := 0; i < histogramBins; i++ {
		lo := binMin + float64(i)*binWidth
		barA := int(fracsA[i] / maxFrac * histogramBarWidth)
		barB := int(fracsB[i] / maxFrac * histogramBarWidth)

		row := make([]rune, histogramBarWidth)
		for j := range row {
			row[j] = ' '
		}
		for j := 0; j < barB; j++ {
			row[j] = '░'
		}
		for j := 0; j < barA; j++ {
			if row[j] == '░' {
				row[j] = '█'
			} else {
				row[j] = '▓'
			}
		}
		fmt.Fprintf(w, "  %7.1f |%s|\n", lo, string(row))
	}
}

func binFractions(values []float64, binMin float64, binWidth float64) []float64 {
	counts := make([]float64, histogramBins)
	if len(values) == 0 {
		return counts
	}
	for _, v := range values {
		idx := int((v - binMin) / binWidth)
		if idx < 0 {
			idx = 0
		}
		if idx > histogramBins-1 {
			idx = histogramBins - 1
		}
		counts[idx]++
	}
	total := float64(len(values))
	for i := range counts {
		counts[i] /= total
	}
	return counts
}
