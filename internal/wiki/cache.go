package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cmfunderburk/Reader/internal/log"
)

const (
	titlesCacheFile   = "titles.json"
	articlesCacheFile = "articles.json"

	// Progress saves every N extract batches so an interrupted fetch loses
	// little work.
	saveEveryBatches = 50
)

// Cache persists raw fetch results under one directory. A partially
// populated cache is valid: the fetcher resumes from whatever is present.
type Cache struct {
	Dir string
}

// NewCache creates the cache directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	return &Cache{Dir: dir}, nil
}

// Titles loads the cached title list, or ok=false when absent.
func (c *Cache) Titles() (titles []string, ok bool, err error) {
	err = c.load(titlesCacheFile, &titles)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return titles, true, nil
}

// SaveTitles stores the title list.
func (c *Cache) SaveTitles(titles []string) error {
	return c.save(titlesCacheFile, titles)
}

// Articles loads cached pages keyed by title; absent cache yields an empty
// map.
func (c *Cache) Articles() (map[string]Page, error) {
	articles := make(map[string]Page)
	err := c.load(articlesCacheFile, &articles)
	if errors.Is(err, os.ErrNotExist) {
		return articles, nil
	}
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// SaveArticles stores the fetched pages.
func (c *Cache) SaveArticles(articles map[string]Page) error {
	return c.save(articlesCacheFile, articles)
}

func (c *Cache) load(name string, out any) error {
	content, err := os.ReadFile(filepath.Join(c.Dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("parse cache %s: %w", name, err)
	}
	return nil
}

func (c *Cache) save(name string, value any) error {
	content, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache %s: %w", name, err)
	}
	path := filepath.Join(c.Dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write cache %s: %w", path, err)
	}
	return nil
}

// FetchTitles returns every unique article title across the given
// categories, sorted. Cached results short-circuit the network entirely.
func FetchTitles(ctx context.Context, client *Client, cache *Cache, categories []string, logger *log.Logger) ([]string, error) {
	if titles, ok, err := cache.Titles(); err != nil {
		return nil, err
	} else if ok {
		logger.Printf("loaded %d cached titles", len(titles))
		return titles, nil
	}

	seen := make(map[string]struct{})
	for _, category := range categories {
		logger.Printf("fetching titles from %s", category)
		titles, err := client.CategoryMembers(ctx, category)
		if err != nil {
			return nil, err
		}
		logger.Printf("  %d articles", len(titles))
		for _, title := range titles {
			seen[title] = struct{}{}
		}
	}

	// Some articles hold both Good and Featured status; dedupe and sort for
	// a stable fetch order.
	all := make([]string, 0, len(seen))
	for title := range seen {
		all = append(all, title)
	}
	sort.Strings(all)

	if err := cache.SaveTitles(all); err != nil {
		return nil, err
	}
	return all, nil
}

// FetchArticles fetches extracts and categories for every title not already
// cached, saving progress periodically. A failed batch saves and continues;
// only cancellation aborts the run.
func FetchArticles(ctx context.Context, client *Client, cache *Cache, titles []string, logger *log.Logger) (map[string]Page, error) {
	articles, err := cache.Articles()
	if err != nil {
		return nil, err
	}
	logger.Printf("loaded %d cached articles", len(articles))

	remaining := make([]string, 0, len(titles))
	for _, title := range titles {
		if _, ok := articles[title]; !ok {
			remaining = append(remaining, title)
		}
	}
	if len(remaining) == 0 {
		return articles, nil
	}
	logger.Printf("fetching extracts for %d remaining articles", len(remaining))

	batches := 0
	for start := 0; start < len(remaining); start += BatchSize {
		end := start + BatchSize
		if end > len(remaining) {
			end = len(remaining)
		}

		results, err := client.Extracts(ctx, remaining[start:end])
		if err != nil {
			if ctx.Err() != nil {
				_ = cache.SaveArticles(articles)
				return nil, ctx.Err()
			}
			logger.Printf("batch error at %d: %v", start, err)
			if err := cache.SaveArticles(articles); err != nil {
				return nil, err
			}
			continue
		}
		for title, page := range results {
			articles[title] = page
		}

		batches++
		if batches%saveEveryBatches == 0 {
			logger.Printf("fetched %d/%d", end, len(remaining))
			if err := cache.SaveArticles(articles); err != nil {
				return nil, err
			}
		}
		if err := client.Pause(ctx); err != nil {
			_ = cache.SaveArticles(articles)
			return nil, err
		}
	}

	if err := cache.SaveArticles(articles); err != nil {
		return nil, err
	}
	logger.Printf("total articles with extracts: %d", len(articles))
	return articles, nil
}
