package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func markdownBody() string {
	return "The cat sat on the mat near the door. The dog ran to the\n" +
		"park with the boy. It was a warm and sunny day for everyone.\n" +
		"They all had fun outside until the sun went down.\n"
}

func writeMarkdown(t *testing.T, root string, rel string, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func ingestConfig(root string, source IngestSource) (Config, []IngestSource) {
	source.Root = root
	cfg := DefaultConfig(WikiEnglish, TierHard)
	cfg.Ingest = []IngestSource{source}
	cfg.ApplyDefaults(".")
	return cfg, cfg.Ingest
}

func TestIngest_TitleFromFirstHeading(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMarkdown(t, root, "notes.md", "# Reading Notes\n\n"+markdownBody())
	cfg, sources := ingestConfig(root, IngestSource{Name: "docs"})

	articles, stats, err := Ingest(sources, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Title != "Reading Notes" {
		t.Errorf("Title = %q, want Reading Notes", articles[0].Title)
	}
	if stats.Scanned != 1 || stats.Output != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestIngest_TitleFallsBackToFileName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMarkdown(t, root, "plain-notes.md", markdownBody())
	cfg, sources := ingestConfig(root, IngestSource{Name: "docs"})

	articles, _, err := Ingest(sources, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 1 || articles[0].Title != "plain-notes" {
		t.Fatalf("expected title plain-notes, got %v", articles)
	}
}

func TestIngest_DefaultIncludesMatchAnyDepth(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMarkdown(t, root, "top.md", "# Top\n\n"+markdownBody())
	writeMarkdown(t, root, "deep/nested/inner.markdown", "# Inner\n\n"+markdownBody())
	writeMarkdown(t, root, "ignored.txt", markdownBody())
	cfg, sources := ingestConfig(root, IngestSource{Name: "docs"})

	articles, stats, err := Ingest(sources, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d (%+v)", len(articles), stats)
	}
}

func TestIngest_ExcludePatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMarkdown(t, root, "keep.md", "# Keep\n\n"+markdownBody())
	writeMarkdown(t, root, "drafts/skip.md", "# Skip\n\n"+markdownBody())
	cfg, sources := ingestConfig(root, IngestSource{
		Name:    "docs",
		Exclude: []string{"drafts/**"},
	})

	articles, _, err := Ingest(sources, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 1 || articles[0].Title != "Keep" {
		t.Fatalf("expected only Keep, got %v", articles)
	}
}

func TestIngest_ShortFilesSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMarkdown(t, root, "stub.md", "# Stub\n\nToo short.\n")
	cfg, sources := ingestConfig(root, IngestSource{Name: "docs"})

	articles, stats, err := Ingest(sources, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 0 || stats.SkippedShort != 1 {
		t.Errorf("articles = %d, SkippedShort = %d", len(articles), stats.SkippedShort)
	}
}

func TestIngest_OutputSortedByTitle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMarkdown(t, root, "z.md", "# Zebra\n\n"+markdownBody())
	writeMarkdown(t, root, "a.md", "# Apple\n\n"+markdownBody())
	cfg, sources := ingestConfig(root, IngestSource{Name: "docs"})

	articles, _, err := Ingest(sources, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) != 2 || articles[0].Title != "Apple" || articles[1].Title != "Zebra" {
		t.Fatalf("expected sorted titles, got %v", articles)
	}
}

func TestIngest_BadIncludePattern(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg, sources := ingestConfig(root, IngestSource{
		Name:    "docs",
		Include: []string{"[unclosed"},
	})
	if _, _, err := Ingest(sources, cfg, nil); err == nil {
		t.Error("expected error for malformed include pattern")
	}
}
