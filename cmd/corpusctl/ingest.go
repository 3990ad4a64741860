package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/cmfunderburk/Reader/internal/corpus"
)

func runIngest(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to pipeline config yaml with ingest sources")
	output := fs.String("out", "", "output JSONL path (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return errors.New("ingest requires --config")
	}

	cfg, err := corpus.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if len(cfg.Ingest) == 0 {
		return fmt.Errorf("config %s defines no ingest sources", *configPath)
	}
	if *output != "" {
		cfg.Output = *output
	}

	articles, ingestStats, err := corpus.Ingest(cfg.Ingest, cfg, nil)
	if err != nil {
		return err
	}
	if err := corpus.Write(cfg.Output, articles); err != nil {
		return err
	}

	fmt.Printf("scanned: %d  skipped short: %d  output: %d\n",
		ingestStats.Scanned, ingestStats.SkippedShort, ingestStats.Output)
	fmt.Printf("wrote %s\n", cfg.Output)
	return nil
}
