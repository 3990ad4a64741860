package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmfunderburk/Reader/internal/corpus"
	"github.com/cmfunderburk/Reader/internal/wiki"
)

const easyText = "The cat sat on the mat near the door. The dog ran to " +
	"the park with the boy. It was a warm day for all of them. They had " +
	"fun in the sun until it went down."

const hardText = "Contemporary computational infrastructure necessitates " +
	"sophisticated orchestration of heterogeneous distributed subsystems. " +
	"Verification activities require comprehensive methodological rigor " +
	"and relentless organizational discipline. Continuous architectural " +
	"assessment remains fundamentally indispensable throughout every " +
	"implementation initiative undertaken anywhere."

// writeZipfTable stores a frequency table covering the easy vocabulary, so
// hard-text words read as unfamiliar.
func writeZipfTable(t *testing.T, dir string) string {
	t.Helper()
	content := ""
	for _, w := range []string{
		"the", "cat", "sat", "on", "mat", "near", "door", "dog", "ran",
		"to", "park", "with", "boy", "it", "was", "a", "warm", "day",
		"for", "all", "of", "them", "they", "had", "fun", "in", "sun",
		"until", "went", "down",
	} {
		content += w + " 6.0\n"
	}
	path := filepath.Join(dir, "zipf.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write zipf table: %v", err)
	}
	return path
}

func writeCorpus(t *testing.T, path string, articles []corpus.Article) {
	t.Helper()
	if err := corpus.Write(path, articles); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
}

func mixedCorpus(n int) []corpus.Article {
	articles := make([]corpus.Article, 0, 2*n)
	for i := 0; i < n; i++ {
		articles = append(articles,
			corpus.Article{Title: "easy", Text: easyText},
			corpus.Article{Title: "hard", Text: hardText},
		)
	}
	return articles
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	if err := run(nil); err == nil {
		t.Fatal("expected usage error for empty args")
	}
	if err := run([]string{"unknown"}); err == nil {
		t.Fatal("expected usage error for unknown command")
	}
}

func TestRun_FlagValidation(t *testing.T) {
	t.Parallel()

	if err := run([]string{"ingest"}); err == nil {
		t.Fatal("expected ingest config error")
	}
	if err := run([]string{"carve"}); err == nil {
		t.Fatal("expected carve zipf-table error")
	}
	if err := run([]string{"score"}); err == nil {
		t.Fatal("expected score zipf-table error")
	}
	if err := run([]string{"analyze"}); err == nil {
		t.Fatal("expected analyze zipf-table error")
	}
}

func TestRunBuild_FromCachedArticles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		t.Fatal(err)
	}
	pages := map[string]wiki.Page{
		"Cats": {Extract: easyText, Categories: []string{"Biology", "Species"}},
		"Dogs": {Extract: easyText, Categories: []string{"Biology"}},
	}
	content, err := json.Marshal(pages)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cacheDir, "articles.json"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "corpus-hard.jsonl")
	if err := run([]string{"build", "--cache-dir", cacheDir, "--out", out}); err != nil {
		t.Fatalf("run build: %v", err)
	}

	articles, err := corpus.Read(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "Cats" || articles[0].Domain != "Sciences" {
		t.Errorf("first article = %+v", articles[0])
	}
}

func TestRunBuild_EmptyCacheErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := run([]string{"build", "--cache-dir", filepath.Join(dir, "cache")})
	if err == nil {
		t.Fatal("expected error for empty cache")
	}
}

func TestRunIngest_WritesCorpus(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# Notes\n\n"+easyText+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "corpus.yaml")
	config := "ingest:\n  - name: docs\n    root: .\n"
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "ingested.jsonl")
	if err := run([]string{"ingest", "--config", configPath, "--out", out}); err != nil {
		t.Fatalf("run ingest: %v", err)
	}

	articles, err := corpus.Read(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 1 || articles[0].Title != "Notes" {
		t.Fatalf("articles = %v", articles)
	}
}

func TestRunCarve_SelectsBottomSlice(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tablePath := writeZipfTable(t, dir)
	in := filepath.Join(dir, "corpus-hard.jsonl")
	writeCorpus(t, in, mixedCorpus(5))

	out := filepath.Join(dir, "corpus-medium.jsonl")
	args := []string{
		"carve",
		"--in", in,
		"--out", out,
		"--zipf-table", tablePath,
		"--percentile", "50",
	}
	if err := run(args); err != nil {
		t.Fatalf("run carve: %v", err)
	}

	selected, err := corpus.Read(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(selected) != 5 {
		t.Fatalf("expected 5 selected, got %d", len(selected))
	}
	for _, a := range selected {
		if a.Title != "easy" {
			t.Errorf("hard article selected: %+v", a)
		}
	}
}

func TestRunScore_Runs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tablePath := writeZipfTable(t, dir)
	easyPath := filepath.Join(dir, "corpus-easy.jsonl")
	hardPath := filepath.Join(dir, "corpus-hard.jsonl")
	writeCorpus(t, easyPath, mixedCorpus(3)[:3])
	writeCorpus(t, hardPath, mixedCorpus(5))

	args := []string{
		"score",
		"--easy", easyPath,
		"--hard", hardPath,
		"--zipf-table", tablePath,
	}
	if err := run(args); err != nil {
		t.Fatalf("run score: %v", err)
	}
}

func TestRunAnalyze_Runs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tablePath := writeZipfTable(t, dir)
	easyPath := filepath.Join(dir, "corpus-easy.jsonl")
	hardPath := filepath.Join(dir, "corpus-hard.jsonl")
	writeCorpus(t, easyPath, mixedCorpus(3))
	writeCorpus(t, hardPath, mixedCorpus(4))

	args := []string{
		"analyze",
		"--easy", easyPath,
		"--hard", hardPath,
		"--zipf-table", tablePath,
	}
	if err := run(args); err != nil {
		t.Fatalf("run analyze: %v", err)
	}
}

func TestRunAnalyze_MetricSelection(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tablePath := writeZipfTable(t, dir)
	easyPath := filepath.Join(dir, "corpus-easy.jsonl")
	hardPath := filepath.Join(dir, "corpus-hard.jsonl")
	writeCorpus(t, easyPath, mixedCorpus(3))
	writeCorpus(t, hardPath, mixedCorpus(4))

	args := []string{
		"analyze",
		"--easy", easyPath,
		"--hard", hardPath,
		"--zipf-table", tablePath,
		"--metrics", "fk_grade,ttr",
	}
	if err := run(args); err != nil {
		t.Fatalf("run analyze with metric selection: %v", err)
	}

	args[len(args)-1] = "fk_grade,bogus"
	if err := run(args); err == nil {
		t.Fatal("expected unknown metric error")
	}
}
