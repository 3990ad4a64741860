package zipf

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Table is a frequency oracle backed by an in-memory word table.
// Lookups are case-insensitive; the table stores lowercase keys.
type Table struct {
	freqs map[string]float64
}

// LoadTable reads a frequency table file: one "word frequency" pair per line,
// whitespace-separated, blank lines and lines starting with '#' ignored.
// The scoring subsystem cannot run without a table, so any read or parse
// failure is returned as an error rather than degrading to empty lookups.
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency table: %w", err)
	}
	defer func() { _ = file.Close() }()

	freqs := make(map[string]float64)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("frequency table %s:%d: want \"word frequency\", got %q", path, lineNo, line)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("frequency table %s:%d: parse frequency: %w", path, lineNo, err)
		}
		freqs[strings.ToLower(fields[0])] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read frequency table: %w", err)
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("frequency table %s contains no entries", path)
	}

	return &Table{freqs: freqs}, nil
}

// Frequency implements Oracle. Unknown words score 0.
func (t *Table) Frequency(word string) float64 {
	return t.freqs[strings.ToLower(word)]
}

// Len returns the number of distinct words in the table.
func (t *Table) Len() int {
	return len(t.freqs)
}
