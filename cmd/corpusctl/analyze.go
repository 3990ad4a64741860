package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/cmfunderburk/Reader/internal/corpus"
	"github.com/cmfunderburk/Reader/internal/metrics"
	"github.com/cmfunderburk/Reader/internal/report"
	"github.com/cmfunderburk/Reader/internal/tier"
	"github.com/cmfunderburk/Reader/internal/zipf"
)

const (
	analyzeSampleSize = 1000
	analyzeSampleSeed = 42
)

// histogramRanges fixes the bin range per metric so easy and hard land on a
// shared axis.
var histogramRanges = map[string][2]float64{
	"fk_grade":   {0, 25},
	"dale_chall": {4, 14},
	"mean_zipf":  {3.0, 5.5},
	"pct_rare":   {0, 0.5},
	"pct_poly":   {0, 0.4},
}

// runAnalyze compares the readability metric distributions of the easy and
// hard corpora.
func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	easyPath := fs.String("easy", "corpus-easy.jsonl", "easy-tier corpus")
	hardPath := fs.String("hard", "corpus-hard.jsonl", "hard-tier corpus")
	tablePath := fs.String("zipf-table", "", "path to word frequency table")
	metricsRaw := fs.String("metrics", "", "comma-separated metric keys (default: all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tablePath == "" {
		return errors.New("analyze requires --zipf-table")
	}
	defs, err := metrics.Resolve(metrics.SplitList(*metricsRaw))
	if err != nil {
		return err
	}

	oracle, err := zipf.LoadTable(*tablePath)
	if err != nil {
		return err
	}

	easy, err := scoredVectors(*easyPath, oracle, "easy")
	if err != nil {
		return err
	}
	hard, err := scoredVectors(*hardPath, oracle, "hard")
	if err != nil {
		return err
	}

	// A fixed-seed sample keeps the hard population comparable in size
	// without making successive runs disagree.
	hardSample := hard
	if len(hard) > analyzeSampleSize {
		hardSample = sampleVectors(hard, analyzeSampleSize, analyzeSampleSeed)
		fmt.Printf("sampled hard corpus to %d articles\n", len(hardSample))
	}

	easyTier := report.TierSample{Name: "Easy", Vectors: easy}
	hardTier := report.TierSample{Name: "Hard", Vectors: hardSample}

	comps := report.Compare(easyTier, hardTier, defs)
	report.WriteComparison(os.Stdout, easyTier, hardTier, comps)

	for _, def := range defs {
		bounds, ok := histogramRanges[def.Key]
		if !ok {
			continue
		}
		report.WriteHistogram(os.Stdout, def.Label,
			report.Series(easy, def), report.Series(hardSample, def),
			bounds[0], bounds[1])
	}

	report.WriteCorrelations(os.Stdout, hardTier.Name, defs,
		report.Correlations(hardSample, defs))
	report.WriteSeparationRanking(os.Stdout, report.SeparationRanking(comps))
	return nil
}

func scoredVectors(path string, oracle zipf.Oracle, name string) ([]metrics.Vector, error) {
	articles, err := corpus.Read(path)
	if err != nil {
		return nil, err
	}
	scored, counts, err := tier.ScoreAll(articles, oracle)
	if err != nil {
		return nil, err
	}
	fmt.Printf("%s: %d articles, %d scored, %d skipped\n",
		name, counts.Processed, counts.Scored, counts.Skipped)
	vectors := make([]metrics.Vector, len(scored))
	for i, s := range scored {
		vectors[i] = s.Vector
	}
	return vectors, nil
}

func sampleVectors(vectors []metrics.Vector, n int, seed int64) []metrics.Vector {
	rng := rand.New(rand.NewSource(seed))
	idx := rng.Perm(len(vectors))[:n]
	out := make([]metrics.Vector, n)
	for i, j := range idx {
		out[i] = vectors[j]
	}
	return out
}
