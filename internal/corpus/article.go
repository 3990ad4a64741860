// Package corpus defines the article corpus model and its JSONL persistence.
// A corpus is an ordered sequence of articles sharing a difficulty tier;
// insertion order is file order and every write is whole-file.
package corpus

import (
	"fmt"
	"strings"
)

// Tier is a named difficulty bucket.
type Tier string

// Difficulty tier constants.
const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// ParseTier parses a user-provided tier name.
func ParseTier(raw string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierEasy:
		return TierEasy, nil
	case TierMedium:
		return TierMedium, nil
	case TierHard:
		return TierHard, nil
	default:
		return "", fmt.Errorf("unknown tier %q (supported: easy, medium, hard)", raw)
	}
}

// Article is one corpus record: a cleaned Wikipedia lead section plus
// metadata attached at build time. Title is the identity within a corpus.
// Optional fields round-trip unmodified when present and stay absent when
// absent.
type Article struct {
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	Domain    string  `json:"domain,omitempty"`
	FKGrade   float64 `json:"fk_grade,omitempty"`
	Words     int     `json:"words,omitempty"`
	Sentences int     `json:"sentences,omitempty"`
}
