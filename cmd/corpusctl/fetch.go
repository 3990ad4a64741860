package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/cmfunderburk/Reader/internal/corpus"
	"github.com/cmfunderburk/Reader/internal/log"
	"github.com/cmfunderburk/Reader/internal/wiki"
)

// resolvePipelineConfig loads a YAML config when given, otherwise derives
// defaults from the edition and tier flags. Flag values override the file.
func resolvePipelineConfig(configPath string, wikiEdition string, tierName string) (corpus.Config, error) {
	var cfg corpus.Config
	if configPath != "" {
		loaded, err := corpus.LoadConfig(configPath)
		if err != nil {
			return corpus.Config{}, err
		}
		cfg = loaded
	}

	if wikiEdition != "" {
		cfg.Wiki = wikiEdition
		if configPath == "" {
			// Re-derive edition-dependent defaults below.
			cfg.Categories = nil
			cfg.CacheDir = ""
		}
	}
	if tierName != "" {
		tier, err := corpus.ParseTier(tierName)
		if err != nil {
			return corpus.Config{}, err
		}
		cfg.Tier = tier
	}

	cfg.ApplyDefaults(".")
	if err := cfg.Validate(); err != nil {
		return corpus.Config{}, err
	}
	return cfg, nil
}

func runFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to pipeline config yaml")
	wikiEdition := fs.String("wiki", "", "wikipedia edition: en or simple")
	tierName := fs.String("tier", "", "corpus tier: easy, medium, or hard")
	cacheDir := fs.String("cache-dir", "", "cache directory for raw API responses")
	verbose := fs.BoolP("verbose", "v", false, "verbose progress on stderr")
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

	logger := &log.Logger{Enabled: *verbose, W: os.Stderr}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := wiki.NewClient(cfg.APIURL())
	cache, err := wiki.NewCache(cfg.CacheDir)
	if err != nil {
		return err
	}

	fmt.Printf("tier: %s  wiki: %s  cache: %s\n", cfg.Tier, cfg.Wiki, cfg.CacheDir)

	titles, err := wiki.FetchTitles(ctx, client, cache, cfg.Categories, logger)
	if err != nil {
		return err
	}
	fmt.Printf("titles: %d\n", len(titles))

	articles, err := wiki.FetchArticles(ctx, client, cache, titles, logger)
	if err != nil {
		return err
	}
	fmt.Printf("articles with extracts: %d\n", len(articles))
	return nil
}
