package tier

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cmfunderburk/Reader/internal/corpus"
	"github.com/cmfunderburk/Reader/internal/metrics"
	"github.com/cmfunderburk/Reader/internal/zipf"
)

// Scored pairs an article's position in its corpus with its metric vector
// and, after normalization, its composite score.
type Scored struct {
	Index     int
	Vector    metrics.Vector
	Composite float64
}

// Counts reports how many articles each scoring phase saw. A run that skips
// everything from a non-empty corpus is distinguishable from an empty corpus.
type Counts struct {
	Processed int
	Skipped   int
	Scored    int
}

// ScoreAll computes metric vectors for every article, silently excluding
// unscorable ones from the result but tallying them in Counts. Any other
// metric failure aborts.
func ScoreAll(articles []corpus.Article, oracle zipf.Oracle) ([]Scored, Counts, error) {
	scored := make([]Scored, 0, len(articles))
	counts := Counts{Processed: len(articles)}
	for i, article := range articles {
		v, err := metrics.Compute(article.Text, oracle)
		if errors.Is(err, metrics.ErrUnscorable) {
			counts.Skipped++
			continue
		}
		if err != nil {
			return nil, Counts{}, fmt.Errorf("score %q: %w", article.Title, err)
		}
		scored = append(scored, Scored{Index: i, Vector: v})
	}
	counts.Scored = len(scored)
	return scored, counts, nil
}

// Selection is the outcome of carving a percentile slice out of a corpus.
type Selection struct {
	// Articles holds the selected slice in original corpus order.
	Articles []corpus.Article
	// Scored holds every scorable article with composites filled in,
	// ascending by composite.
	Scored []Scored
	Counts Counts
	// Cutoff is the number of selected articles: floor(scored * pct / 100).
	Cutoff int
	Norm   Normalizer
}

// Select scores every article against statistics fitted on the same corpus,
// ranks ascending by composite, and selects the lowest percentile slice.
// Selection is a set-membership filter over the original sequence, so output
// order matches input order regardless of rank. Unscorable articles are
// excluded from both the population size and the output.
func Select(articles []corpus.Article, oracle zipf.Oracle, percentile float64) (Selection, error) {
	if percentile < 0 || percentile > 100 {
		return Selection{}, fmt.Errorf("percentile %.2f out of range [0, 100]", percentile)
	}

	scored, counts, err := ScoreAll(articles, oracle)
	if err != nil {
		return Selection{}, err
	}

	vectors := make([]metrics.Vector, len(scored))
	for i, s := range scored {
		vectors[i] = s.Vector
	}
	norm, err := Fit(vectors)
	if err != nil {
		return Selection{}, err
	}

	for i := range scored {
		scored[i].Composite = norm.Composite(scored[i].Vector)
	}
	// Stable: composite ties keep original corpus order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Composite < scored[j].Composite
	})

	cutoff := int(float64(len(scored)) * percentile / 100)
	selected := make(map[int]struct{}, cutoff)
	for _, s := range scored[:cutoff] {
		selected[s.Index] = struct{}{}
	}

	out := make([]corpus.Article, 0, cutoff)
	for i, article := range articles {
		if _, ok := selected[i]; ok {
			out = append(out, article)
		}
	}

	return Selection{
		Articles: out,
		Scored:   scored,
		Counts:   counts,
		Cutoff:   cutoff,
		Norm:     norm,
	}, nil
}
