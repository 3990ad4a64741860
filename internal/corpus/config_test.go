package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmfunderburk/Reader/internal/wiki"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig_EnglishEdition(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig("", "")
	if cfg.Wiki != WikiEnglish {
		t.Errorf("Wiki = %q, want en", cfg.Wiki)
	}
	if cfg.Tier != TierHard {
		t.Errorf("Tier = %q, want hard", cfg.Tier)
	}
	if cfg.Output != "corpus-hard.jsonl" {
		t.Errorf("Output = %q, want corpus-hard.jsonl", cfg.Output)
	}
	if cfg.CacheDir != ".corpus-cache" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[1] != "Category:Featured articles" {
		t.Errorf("Categories = %v", cfg.Categories)
	}
	if cfg.MinWords != 20 || cfg.MinSentences != 3 || cfg.MinExtractChars != 50 {
		t.Errorf("length gates = %d/%d/%d", cfg.MinWords, cfg.MinSentences, cfg.MinExtractChars)
	}
	// Hard tier has no grade ceiling.
	if cfg.FKMax != 0 {
		t.Errorf("FKMax = %v, want 0", cfg.FKMax)
	}
	if cfg.APIURL() != wiki.EnglishAPI {
		t.Errorf("APIURL = %q", cfg.APIURL())
	}
}

func TestDefaultConfig_SimpleEdition(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(WikiSimple, "")
	if cfg.Tier != TierEasy {
		t.Errorf("Tier = %q, want easy", cfg.Tier)
	}
	if cfg.CacheDir != ".corpus-cache-simple" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[1] != "Category:Very good articles" {
		t.Errorf("Categories = %v", cfg.Categories)
	}
	if cfg.APIURL() != wiki.SimpleAPI {
		t.Errorf("APIURL = %q", cfg.APIURL())
	}
}

func TestDefaultConfig_MediumTierGetsGradeCeiling(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(WikiEnglish, TierMedium)
	if cfg.FKMax != 10.0 {
		t.Errorf("FKMax = %v, want 10.0", cfg.FKMax)
	}
}

func TestLoadConfig_OverridesAndDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
wiki: simple
output: my-corpus.jsonl
min_words: 40
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "my-corpus.jsonl" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.MinWords != 40 {
		t.Errorf("MinWords = %d, want 40", cfg.MinWords)
	}
	// Unset fields still get edition defaults.
	if cfg.Tier != TierEasy {
		t.Errorf("Tier = %q, want easy", cfg.Tier)
	}
}

func TestLoadConfig_IngestRootResolvedAgainstConfigDir(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
ingest:
  - name: docs
    root: notes
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(filepath.Dir(path), "notes")
	if cfg.Ingest[0].Root != want {
		t.Errorf("Root = %q, want %q", cfg.Ingest[0].Root, want)
	}
	if len(cfg.Ingest[0].Include) != 2 || cfg.Ingest[0].Include[0] != "**.md" {
		t.Errorf("Include = %v, want default markdown patterns", cfg.Ingest[0].Include)
	}
}

func TestLoadConfig_UnknownEditionRejected(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "wiki: klingon\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unknown wiki edition")
	}
}

func TestLoadConfig_DuplicateIngestNamesRejected(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
ingest:
  - name: docs
  - name: docs
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for duplicate ingest names")
	}
}

func TestLoadConfig_UnnamedIngestRejected(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
ingest:
  - root: somewhere
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for ingest source without a name")
	}
}

func TestValidate_LengthGateBounds(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig("", "")
	cfg.MinWords = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for min_words < 1")
	}
	cfg = DefaultConfig("", "")
	cfg.FKMax = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative fk_max")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
