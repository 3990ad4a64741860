package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/cmfunderburk/Reader/internal/corpus"
	"github.com/cmfunderburk/Reader/internal/metrics"
	"github.com/cmfunderburk/Reader/internal/stats"
	"github.com/cmfunderburk/Reader/internal/tier"
	"github.com/cmfunderburk/Reader/internal/zipf"
)

var (
	candidatePercentiles = []int{5, 10, 15, 20, 25, 30, 35, 40, 50}
	profilePercentiles   = []int{15, 20, 25}
)

// runScore explores candidate medium-tier cutoffs: it fits the composite
// normalizer on the hard tier, then shows what each bottom-percentile slice
// would look like next to the easy tier.
func runScore(args []string) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	easyPath := fs.String("easy", "corpus-easy.jsonl", "easy-tier corpus")
	hardPath := fs.String("hard", "corpus-hard.jsonl", "hard-tier corpus")
	tablePath := fs.String("zipf-table", "", "path to word frequency table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tablePath == "" {
		return errors.New("score requires --zipf-table")
	}

	oracle, err := zipf.LoadTable(*tablePath)
	if err != nil {
		return err
	}

	easyArticles, err := corpus.Read(*easyPath)
	if err != nil {
		return err
	}
	hardArticles, err := corpus.Read(*hardPath)
	if err != nil {
		return err
	}
	fmt.Printf("easy: %d articles  hard: %d articles\n", len(easyArticles), len(hardArticles))

	easyScored, easyCounts, err := tier.ScoreAll(easyArticles, oracle)
	if err != nil {
		return err
	}
	hardScored, hardCounts, err := tier.ScoreAll(hardArticles, oracle)
	if err != nil {
		return err
	}
	fmt.Printf("scored easy: %d (skipped %d)  hard: %d (skipped %d)\n",
		easyCounts.Scored, easyCounts.Skipped, hardCounts.Scored, hardCounts.Skipped)

	hardVectors := make([]metrics.Vector, len(hardScored))
	for i, s := range hardScored {
		hardVectors[i] = s.Vector
	}
	norm, err := tier.Fit(hardVectors)
	if err != nil {
		return err
	}

	fmt.Println("\nHard corpus stats:")
	fmt.Printf("  FK:     mean=%.2f  std=%.2f\n", norm.FKGrade.Mean, norm.FKGrade.Stdev)
	fmt.Printf("  D-C:    mean=%.2f  std=%.2f\n", norm.DaleChall.Mean, norm.DaleChall.Stdev)
	fmt.Printf("  %%Poly:  mean=%.4f  std=%.4f\n", norm.PctPoly.Mean, norm.PctPoly.Stdev)

	for i := range hardScored {
		hardScored[i].Composite = norm.Composite(hardScored[i].Vector)
	}
	sort.SliceStable(hardScored, func(i, j int) bool {
		return hardScored[i].Composite < hardScored[j].Composite
	})

	hardComposites := make([]float64, len(hardScored))
	for i, s := range hardScored {
		hardComposites[i] = s.Composite
	}
	easyComposites := make([]float64, len(easyScored))
	for i, s := range easyScored {
		easyComposites[i] = norm.Composite(s.Vector)
	}

	fmt.Println("\nComposite score distribution:")
	fmt.Printf("  Easy:  mean=%.2f  median=%.2f\n", stats.Mean(easyComposites), stats.Median(easyComposites))
	fmt.Printf("  Hard:  mean=%.2f  median=%.2f\n", stats.Mean(hardComposites), stats.Median(hardComposites))

	printCutoffTable(easyScored, hardScored, norm)
	for _, pick := range profilePercentiles {
		printCutoffProfile(pick, easyScored, hardScored)
	}
	printEasyPlacement(easyComposites, hardComposites)
	return nil
}

func metricSeries(scored []tier.Scored, value func(metrics.Vector) float64) []float64 {
	out := make([]float64, len(scored))
	for i, s := range scored {
		out[i] = value(s.Vector)
	}
	return out
}

func printCutoffTable(easyScored []tier.Scored, hardScored []tier.Scored, norm tier.Normalizer) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 78))
	fmt.Println("  CANDIDATE MEDIUM-TIER CUTOFFS (lowest-composite slice of hard corpus)")
	fmt.Printf("%s\n\n", strings.Repeat("=", 78))

	easyFK := stats.Mean(metricSeries(easyScored, func(v metrics.Vector) float64 { return v.FKGrade }))
	easyDC := stats.Mean(metricSeries(easyScored, func(v metrics.Vector) float64 { return v.DaleChall }))
	easyPoly := stats.Mean(metricSeries(easyScored, func(v metrics.Vector) float64 { return v.PctPoly }))

	fmt.Printf("  %8s %11s %8s %8s %9s %8s  vs Easy FK  vs Easy D-C\n",
		"Cutoff", "N articles", "Comp <=", "FK mean", "D-C mean", "%Poly")
	fmt.Printf("  %s\n", strings.Repeat("-", 76))
	fmt.Printf("  %8s %11d %8s %8.2f %9.2f %7.1f%%\n",
		"Easy", len(easyScored), "", easyFK, easyDC, 100*easyPoly)

	for _, pctile := range candidatePercentiles {
		n := len(hardScored) * pctile / 100
		if n == 0 {
			continue
		}
		subset := hardScored[:n]
		fkMean := stats.Mean(metricSeries(subset, func(v metrics.Vector) float64 { return v.FKGrade }))
		dcMean := stats.Mean(metricSeries(subset, func(v metrics.Vector) float64 { return v.DaleChall }))
		polyMean := stats.Mean(metricSeries(subset, func(v metrics.Vector) float64 { return v.PctPoly }))
		fmt.Printf("  %7d%% %11d %+8.2f %8.2f %9.2f %7.1f%%  %+8.2f    %+8.2f\n",
			pctile, n, subset[n-1].Composite, fkMean, dcMean, 100*polyMean,
			fkMean-easyFK, dcMean-easyDC)
	}

	fmt.Printf("  %8s %11d %8s %8.2f %9.2f %7.1f%%  %+8.2f    %+8.2f\n",
		"Hard", len(hardScored), "",
		norm.FKGrade.Mean, norm.DaleChall.Mean, 100*norm.PctPoly.Mean,
		norm.FKGrade.Mean-easyFK, norm.DaleChall.Mean-easyDC)
}

func printCutoffProfile(pctile int, easyScored []tier.Scored, hardScored []tier.Scored) {
	n := len(hardScored) * pctile / 100
	subset := hardScored[:n]

	fmt.Printf("\n%s\n", strings.Repeat("-", 78))
	fmt.Printf("  DETAILED PROFILE: bottom %d%% of hard corpus (%d articles)\n", pctile, n)
	fmt.Printf("%s\n", strings.Repeat("-", 78))

	rows := []struct {
		label string
		value func(metrics.Vector) float64
	}{
		{"FK Grade", func(v metrics.Vector) float64 { return v.FKGrade }},
		{"Dale-Chall", func(v metrics.Vector) float64 { return v.DaleChall }},
		{"% Polysyllabic", func(v metrics.Vector) float64 { return v.PctPoly }},
	}
	for _, row := range rows {
		easySummary := stats.Summarize(metricSeries(easyScored, row.value))
		mediumSummary := stats.Summarize(metricSeries(subset, row.value))
		fmt.Printf("\n  %s:\n", row.label)
		fmt.Printf("    %-8s %8s %8s %8s %8s %8s %8s\n",
			"", "Mean", "Median", "P10", "P25", "P75", "P90")
		printProfileRow("Easy", easySummary)
		printProfileRow("Medium", mediumSummary)
	}
}

func printProfileRow(name string, s stats.Summary) {
	fmt.Printf("    %-8s %8.2f %8.2f %8.2f %8.2f %8.2f %8.2f\n",
		name, s.Mean, s.Median, s.P10, s.P25, s.P75, s.P90)
}

// printEasyPlacement shows where easy articles would rank inside the hard
// composite distribution.
func printEasyPlacement(easyComposites []float64, hardComposites []float64) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 78))
	fmt.Println("  WHERE EASY ARTICLES FALL IN HARD COMPOSITE DISTRIBUTION")
	fmt.Printf("%s\n", strings.Repeat("=", 78))

	// hardComposites is sorted ascending; rank by binary search.
	ranks := make([]float64, len(easyComposites))
	for i, ec := range easyComposites {
		rank := sort.SearchFloat64s(hardComposites, ec)
		for rank < len(hardComposites) && hardComposites[rank] <= ec {
			rank++
		}
		ranks[i] = 100 * float64(rank) / float64(len(hardComposites))
	}

	s := stats.Summarize(ranks)
	fmt.Println("\nEasy articles' percentile rank in hard composite:")
	fmt.Printf("  Mean: %.1f%%ile  Median: %.1f%%ile\n", s.Mean, s.Median)
	fmt.Printf("  P10:  %.1f%%ile   P90: %.1f%%ile\n", s.P10, s.P90)
	fmt.Printf("\nThe median easy article is easier than %.0f%% of hard articles by this composite.\n", s.Median)
}
