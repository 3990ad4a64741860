package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cmfunderburk/Reader/internal/wiki"
)

// Wikipedia edition identifiers.
const (
	WikiEnglish = "en"
	WikiSimple  = "simple"
)

// Default category sets per edition.
var (
	englishCategories = []string{
		"Category:Good articles",
		"Category:Featured articles",
	}
	simpleCategories = []string{
		"Category:Good articles",
		"Category:Very good articles",
	}
)

const (
	defaultMinWords        = 20
	defaultMinSentences    = 3
	defaultMinExtractChars = 50
	defaultMediumFKMax     = 10.0
)

// IngestSource describes one local markdown source tree.
type IngestSource struct {
	Name    string   `yaml:"name"`
	Root    string   `yaml:"root"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Config controls the corpus preparation pipeline for one tier.
type Config struct {
	Wiki            string         `yaml:"wiki"`
	Tier            Tier           `yaml:"tier"`
	Categories      []string       `yaml:"categories"`
	CacheDir        string         `yaml:"cache_dir"`
	Output          string         `yaml:"output"`
	ZipfTable       string         `yaml:"zipf_table"`
	FKMax           float64        `yaml:"fk_max"`
	MinWords        int            `yaml:"min_words"`
	MinSentences    int            `yaml:"min_sentences"`
	MinExtractChars int            `yaml:"min_extract_chars"`
	Ingest          []IngestSource `yaml:"ingest"`
}

// LoadConfig loads a pipeline config from YAML, applies defaults, and
// validates it.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}

	cfg.ApplyDefaults(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig builds a config without a file, from an edition and tier.
// Empty arguments fall back to the English edition and its inferred tier.
func DefaultConfig(wikiEdition string, tier Tier) Config {
	cfg := Config{Wiki: wikiEdition, Tier: tier}
	cfg.ApplyDefaults(".")
	return cfg
}

// ApplyDefaults fills unset fields. Tier defaults follow the edition: the
// Simple English wiki produces the easy tier, the main wiki the hard tier.
// The medium tier gets the default Flesch-Kincaid ceiling.
func (cfg *Config) ApplyDefaults(configDir string) {
	if cfg.Wiki == "" {
		cfg.Wiki = WikiEnglish
	}
	if cfg.Tier == "" {
		if cfg.Wiki == WikiSimple {
			cfg.Tier = TierEasy
		} else {
			cfg.Tier = TierHard
		}
	}
	if len(cfg.Categories) == 0 {
		if cfg.Wiki == WikiSimple {
			cfg.Categories = append([]string(nil), simpleCategories...)
		} else {
			cfg.Categories = append([]string(nil), englishCategories...)
		}
	}
	if cfg.CacheDir == "" {
		if cfg.Wiki == WikiSimple {
			cfg.CacheDir = ".corpus-cache-simple"
		} else {
			cfg.CacheDir = ".corpus-cache"
		}
	}
	if cfg.Output == "" {
		cfg.Output = fmt.Sprintf("corpus-%s.jsonl", cfg.Tier)
	}
	if cfg.FKMax == 0 && cfg.Tier == TierMedium {
		cfg.FKMax = defaultMediumFKMax
	}
	if cfg.MinWords == 0 {
		cfg.MinWords = defaultMinWords
	}
	if cfg.MinSentences == 0 {
		cfg.MinSentences = defaultMinSentences
	}
	if cfg.MinExtractChars == 0 {
		cfg.MinExtractChars = defaultMinExtractChars
	}

	for i := range cfg.Ingest {
		if cfg.Ingest[i].Root == "" {
			cfg.Ingest[i].Root = "."
		}
		if !filepath.IsAbs(cfg.Ingest[i].Root) {
			cfg.Ingest[i].Root = filepath.Join(configDir, cfg.Ingest[i].Root)
		}
		if len(cfg.Ingest[i].Include) == 0 {
			// gobwas glob: "**" crosses path separators, so this matches
			// markdown files at any depth including the root.
			cfg.Ingest[i].Include = []string{"**.md", "**.markdown"}
		}
	}
}

// Validate rejects configs the pipeline cannot run with.
func (cfg Config) Validate() error {
	if cfg.Wiki != WikiEnglish && cfg.Wiki != WikiSimple {
		return fmt.Errorf("unknown wiki edition %q (supported: en, simple)", cfg.Wiki)
	}
	if _, err := ParseTier(string(cfg.Tier)); err != nil {
		return err
	}
	if cfg.FKMax < 0 {
		return fmt.Errorf("fk_max must be positive")
	}
	if cfg.MinWords < 1 {
		return fmt.Errorf("min_words must be >= 1")
	}
	if cfg.MinSentences < 1 {
		return fmt.Errorf("min_sentences must be >= 1")
	}

	seen := make(map[string]bool, len(cfg.Ingest))
	for _, source := range cfg.Ingest {
		if source.Name == "" {
			return fmt.Errorf("ingest source name is required")
		}
		if seen[source.Name] {
			return fmt.Errorf("duplicate ingest source name: %s", source.Name)
		}
		seen[source.Name] = true
	}
	return nil
}

// APIURL returns the MediaWiki endpoint for the configured edition.
func (cfg Config) APIURL() string {
	if cfg.Wiki == WikiSimple {
		return wiki.SimpleAPI
	}
	return wiki.EnglishAPI
}
