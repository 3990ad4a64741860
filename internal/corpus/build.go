package corpus

import (
	"math"
	"sort"
	"strings"

	"github.com/cmfunderburk/Reader/internal/clean"
	"github.com/cmfunderburk/Reader/internal/domaintag"
	"github.com/cmfunderburk/Reader/internal/metrics"
	"github.com/cmfunderburk/Reader/internal/wiki"
)

// Segmenter counts sentences in cleaned text. The build filter is the only
// consumer; metric formulas always use their own terminator-run counting.
// Injectable so a heavier NLP segmenter can replace the default.
type Segmenter interface {
	CountSentences(text string) int
}

// SegmenterFunc adapts a function to the Segmenter interface.
type SegmenterFunc func(text string) int

// CountSentences implements Segmenter.
func (f SegmenterFunc) CountSentences(text string) int {
	return f(text)
}

// DefaultSegmenter counts terminator runs, matching the metric formulas.
func DefaultSegmenter() Segmenter {
	return SegmenterFunc(metrics.CountSentences)
}

// BuildStats tallies what the build pipeline did with each fetched page.
type BuildStats struct {
	Processed    int
	Output       int
	SkippedEmpty int
	SkippedShort int
	SkippedFK    int
	Domains      map[string]int
}

// Build cleans, filters, and tags fetched pages into a tier corpus.
// Pages process in sorted title order so output is reproducible regardless
// of fetch order. Too-short extracts and over-ceiling grade levels are
// skipped and tallied, never silently dropped.
func Build(pages map[string]wiki.Page, cfg Config, seg Segmenter) ([]Article, BuildStats) {
	if seg == nil {
		seg = DefaultSegmenter()
	}

	titles := make([]string, 0, len(pages))
	for title := range pages {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	stats := BuildStats{Processed: len(pages), Domains: make(map[string]int)}
	articles := make([]Article, 0, len(pages))
	for _, title := range titles {
		page := pages[title]
		if len(strings.TrimSpace(page.Extract)) < cfg.MinExtractChars {
			stats.SkippedEmpty++
			continue
		}

		text := clean.Text(page.Extract)
		sentences := seg.CountSentences(text)
		words := len(strings.Fields(text))
		if sentences < cfg.MinSentences || words < cfg.MinWords {
			stats.SkippedShort++
			continue
		}

		fk := metrics.FleschKincaidGrade(text)
		if cfg.FKMax > 0 && fk > cfg.FKMax {
			stats.SkippedFK++
			continue
		}

		domain := domaintag.Assign(page.Categories)
		articles = append(articles, Article{
			Title:     title,
			Text:      text,
			Domain:    domain,
			FKGrade:   roundTo(fk, 1),
			Words:     words,
			Sentences: sentences,
		})
		stats.Domains[domain]++
	}
	stats.Output = len(articles)
	return articles, stats
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
