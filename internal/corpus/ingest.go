package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/cmfunderburk/Reader/internal/mdtext"
	"github.com/cmfunderburk/Reader/internal/metrics"
)

// IngestStats tallies the local markdown ingest outcome.
type IngestStats struct {
	Scanned      int
	Output       int
	SkippedShort int
}

// Ingest builds corpus articles from local markdown trees instead of the
// Wikipedia pipeline: every included file is parsed, reduced to plain text,
// and filtered by the same length gates the build pipeline uses. The title
// is the first heading, falling back to the file name. Output is sorted by
// title so repeated runs produce identical corpora.
func Ingest(sources []IngestSource, cfg Config, seg Segmenter) ([]Article, IngestStats, error) {
	if seg == nil {
		seg = DefaultSegmenter()
	}

	stats := IngestStats{}
	articles := make([]Article, 0)
	for _, source := range sources {
		include, exclude, err := compileIngestGlobs(source)
		if err != nil {
			return nil, IngestStats{}, fmt.Errorf("source %s: %w", source.Name, err)
		}

		err = filepath.WalkDir(source.Root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(source.Root, path)
			if err != nil {
				return fmt.Errorf("relative path for %s: %w", path, err)
			}
			rel = filepath.ToSlash(rel)
			if !matchesAny(include, rel) || matchesAny(exclude, rel) {
				return nil
			}
			stats.Scanned++

			article, keep, err := ingestFile(path, rel, cfg, seg)
			if err != nil {
				return err
			}
			if !keep {
				stats.SkippedShort++
				return nil
			}
			articles = append(articles, article)
			return nil
		})
		if err != nil {
			return nil, IngestStats{}, fmt.Errorf("walk source %s: %w", source.Name, err)
		}
	}

	sort.Slice(articles, func(i, j int) bool { return articles[i].Title < articles[j].Title })
	stats.Output = len(articles)
	return articles, stats, nil
}

func ingestFile(path string, rel string, cfg Config, seg Segmenter) (Article, bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Article{}, false, fmt.Errorf("read file %s: %w", path, err)
	}

	doc := mdtext.Parse(source)
	text := mdtext.ExtractPlainText(doc, source)
	words := mdtext.CountWords(text)
	sentences := seg.CountSentences(text)
	if words < cfg.MinWords || sentences < cfg.MinSentences {
		return Article{}, false, nil
	}

	title, ok := mdtext.FirstHeading(doc, source)
	if !ok || title == "" {
		base := filepath.Base(rel)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Article{
		Title:     title,
		Text:      text,
		FKGrade:   roundTo(metrics.FleschKincaidGrade(text), 1),
		Words:     words,
		Sentences: sentences,
	}, true, nil
}

func compileIngestGlobs(source IngestSource) (include []glob.Glob, exclude []glob.Glob, err error) {
	for _, pattern := range source.Include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, nil, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		include = append(include, g)
	}
	for _, pattern := range source.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		exclude = append(exclude, g)
	}
	return include, exclude, nil
}

func matchesAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
