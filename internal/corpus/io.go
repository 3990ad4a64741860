package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Long lead sections fit comfortably in 1 MiB lines.
const maxLineBytes = 1 << 20

// Read loads a JSONL corpus: one article object per line, blank and
// whitespace-only lines ignored. A line that fails to parse aborts the read with its line number;
// the pipeline assumes validated input and treats malformed records as a
// caller problem, not something to skip silently.
func Read(path string) ([]Article, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = file.Close() }()

	articles := make([]Article, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var article Article
		if err := json.Unmarshal(line, &article); err != nil {
			return nil, fmt.Errorf("corpus %s:%d: parse record: %w", path, lineNo, err)
		}
		articles = append(articles, article)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return articles, nil
}

// Write stores a corpus as compact JSONL, one article per line. Text passes
// through byte-faithfully: no HTML escaping and no ASCII-escaping of
// non-ASCII characters.
func Write(path string, articles []Article) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	for _, article := range articles {
		if err := encoder.Encode(article); err != nil {
			return fmt.Errorf("encode corpus row: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush corpus: %w", err)
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
