package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/cmfunderburk/Reader/internal/corpus"
	"github.com/cmfunderburk/Reader/internal/stats"
	"github.com/cmfunderburk/Reader/internal/tier"
	"github.com/cmfunderburk/Reader/internal/zipf"
)

// Bottom share of the hard tier that becomes the medium tier.
const defaultCarvePercentile = 20.0

func runCarve(args []string) error {
	fs := flag.NewFlagSet("carve", flag.ContinueOnError)
	input := fs.String("in", "corpus-hard.jsonl", "hard-tier corpus to carve from")
	output := fs.String("out", "corpus-medium.jsonl", "output JSONL path")
	percentile := fs.Float64("percentile", defaultCarvePercentile, "bottom composite percentile to select")
	tablePath := fs.String("zipf-table", "", "path to word frequency table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tablePath == "" {
		return errors.New("carve requires --zipf-table")
	}

	oracle, err := zipf.LoadTable(*tablePath)
	if err != nil {
		return err
	}
	articles, err := corpus.Read(*input)
	if err != nil {
		return err
	}
	fmt.Printf("loaded %d articles from %s\n", len(articles), *input)

	selection, err := tier.Select(articles, oracle, *percentile)
	if err != nil {
		return err
	}
	if err := corpus.Write(*output, selection.Articles); err != nil {
		return err
	}

	fmt.Printf("processed: %d  skipped: %d  scored: %d\n",
		selection.Counts.Processed, selection.Counts.Skipped, selection.Counts.Scored)
	fmt.Printf("cutoff: bottom %.0f%% -> %d articles\n", *percentile, selection.Cutoff)
	fmt.Printf("wrote %d articles to %s\n", len(selection.Articles), *output)

	printCarveProfile(selection)
	return nil
}

func printCarveProfile(selection tier.Selection) {
	n := selection.Cutoff
	if n == 0 {
		return
	}
	fk := make([]float64, n)
	dc := make([]float64, n)
	poly := make([]float64, n)
	for i, s := range selection.Scored[:n] {
		fk[i] = s.Vector.FKGrade
		dc[i] = s.Vector.DaleChall
		poly[i] = s.Vector.PctPoly
	}

	fmt.Println("\nMedium tier profile:")
	fmt.Printf("  FK Grade:    mean=%.2f  median=%.2f\n", stats.Mean(fk), stats.Median(fk))
	fmt.Printf("  Dale-Chall:  mean=%.2f  median=%.2f\n", stats.Mean(dc), stats.Median(dc))
	fmt.Printf("  %%Polysyllab: mean=%.1f%%  median=%.1f%%\n", 100*stats.Mean(poly), 100*stats.Median(poly))
}
