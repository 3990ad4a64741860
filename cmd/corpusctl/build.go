package main

import (
	"fmt"
	"sort"

	flag "github.com/spf13/pflag"

	"github.com/cmfunderburk/Reader/internal/corpus"
	"github.com/cmfunderburk/Reader/internal/stats"
	"github.com/cmfunderburk/Reader/internal/wiki"
)

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to pipeline config yaml")
	wikiEdition := fs.String("wiki", "", "wikipedia edition: en or simple")
	tierName := fs.String("tier", "", "corpus tier: easy, medium, or hard")
	cacheDir := fs.String("cache-dir", "", "cache directory for raw API responses")
	output := fs.String("out", "", "output JSONL path (default corpus-<tier>.jsonl)")
	fkMax := fs.Float64("fk-max", 0, "maximum Flesch-Kincaid grade (0 disables; medium tier defaults to 10)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := resolvePipelineConfig(*configPath, *wikiEdition, *tierName)
	if err != nil {
		return err
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *fkMax != 0 {
		cfg.FKMax = *fkMax
	}

	cache, err := wiki.NewCache(cfg.CacheDir)
	if err != nil {
		return err
	}
	pages, err := cache.Articles()
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("cache %s holds no fetched articles; run 'corpusctl fetch' first", cfg.CacheDir)
	}

	articles, buildStats := corpus.Build(pages, cfg, nil)
	if err := corpus.Write(cfg.Output, articles); err != nil {
		return err
	}

	fmt.Printf("wrote %d articles to %s\n\n", len(articles), cfg.Output)
	printBuildStats(buildStats, articles)
	return nil
}

func printBuildStats(buildStats corpus.BuildStats, articles []corpus.Article) {
	fmt.Println("Corpus Statistics")
	fmt.Printf("  Articles processed:   %8d\n", buildStats.Processed)
	fmt.Printf("  Articles output:      %8d\n", buildStats.Output)
	fmt.Printf("  Skipped (empty lead): %8d\n", buildStats.SkippedEmpty)
	fmt.Printf("  Skipped (too short):  %8d\n", buildStats.SkippedShort)
	if buildStats.SkippedFK > 0 {
		fmt.Printf("  Skipped (FK grade):   %8d\n", buildStats.SkippedFK)
	}

	type domainCount struct {
		domain string
		count  int
	}
	counts := make([]domainCount, 0, len(buildStats.Domains))
	for domain, count := range buildStats.Domains {
		counts = append(counts, domainCount{domain, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].domain < counts[j].domain
	})

	fmt.Println("\nDomain distribution:")
	for _, dc := range counts {
		pct := 0.0
		if buildStats.Output > 0 {
			pct = 100 * float64(dc.count) / float64(buildStats.Output)
		}
		fmt.Printf("  %-30s %6d  (%5.1f%%)\n", dc.domain, dc.count, pct)
	}

	if len(articles) == 0 {
		return
	}
	fks := make([]float64, len(articles))
	words := make([]float64, len(articles))
	sents := make([]float64, len(articles))
	for i, a := range articles {
		fks[i] = a.FKGrade
		words[i] = float64(a.Words)
		sents[i] = float64(a.Sentences)
	}
	fkSummary := stats.Summarize(fks)
	wordSummary := stats.Summarize(words)
	sentSummary := stats.Summarize(sents)
	fmt.Printf("\nFK grade:    mean=%.1f  median=%.1f  min=%.1f  max=%.1f\n",
		fkSummary.Mean, fkSummary.Median, fkSummary.Min, fkSummary.Max)
	fmt.Printf("Word count:  mean=%.1f  median=%.1f  min=%.0f  max=%.0f\n",
		wordSummary.Mean, wordSummary.Median, wordSummary.Min, wordSummary.Max)
	fmt.Printf("Sentences:   mean=%.1f  median=%.1f  min=%.0f  max=%.0f\n",
		sentSummary.Mean, sentSummary.Median, sentSummary.Min, sentSummary.Max)
}
