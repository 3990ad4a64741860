package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Definition describes one readability metric: its identity, display
// formatting, and how to read it out of a computed Vector.
type Definition struct {
	Key         string
	Label       string
	Description string
	Precision   int
	// Composite marks metrics that participate in difficulty composite
	// scoring (z-normalized, weighted).
	Composite bool
	Value     func(v Vector) float64
}

var registry = []Definition{
	{
		Key:         "fk_grade",
		Label:       "FK Grade Level",
		Description: "Flesch-Kincaid grade estimate from sentence length and syllable density.",
		Precision:   2,
		Composite:   true,
		Value:       func(v Vector) float64 { return v.FKGrade },
	},
	{
		Key:         "dale_chall",
		Label:       "Dale-Chall Score",
		Description: "Unfamiliar-word share plus sentence length, Zipf-approximated.",
		Precision:   2,
		Composite:   true,
		Value:       func(v Vector) float64 { return v.DaleChall },
	},
	{
		Key:         "mean_zipf",
		Label:       "Mean Zipf Frequency",
		Description: "Mean token commonness; higher means more common vocabulary.",
		Precision:   3,
		Value:       func(v Vector) float64 { return v.MeanZipf },
	},
	{
		Key:         "pct_rare",
		Label:       "% Rare Words",
		Description: "Share of tokens below the rare-word Zipf threshold.",
		Precision:   4,
		Value:       func(v Vector) float64 { return v.PctRare },
	},
	{
		Key:         "ttr",
		Label:       "Type-Token Ratio",
		Description: "Unique tokens over total tokens; vocabulary diversity, not length-normalized.",
		Precision:   4,
		Value:       func(v Vector) float64 { return v.TTR },
	},
	{
		Key:         "pct_poly",
		Label:       "% Polysyllabic Words",
		Description: "Share of tokens with three or more syllables.",
		Precision:   4,
		Composite:   true,
		Value:       func(v Vector) float64 { return v.PctPoly },
	},
	{
		Key:         "mean_word_len",
		Label:       "Mean Word Length",
		Description: "Mean characters per alphabetic token.",
		Precision:   2,
		Value:       func(v Vector) float64 { return v.MeanWordLen },
	},
}

// All returns every metric definition in canonical report order.
func All() []Definition {
	return append([]Definition(nil), registry...)
}

// Lookup finds a definition by key, case-insensitive.
func Lookup(key string) (Definition, bool) {
	for _, def := range registry {
		if strings.EqualFold(def.Key, key) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve maps user-selected metric keys to definitions. Empty input selects
// every metric. Duplicates collapse, preserving first-mention order.
func Resolve(keys []string) ([]Definition, error) {
	if len(keys) == 0 {
		return All(), nil
	}

	seen := make(map[string]struct{}, len(keys))
	defs := make([]Definition, 0, len(keys))
	for _, raw := range keys {
		key := strings.TrimSpace(raw)
		if key == "" {
			continue
		}
		def, ok := Lookup(key)
		if !ok {
			return nil, fmt.Errorf("unknown metric %q (available: %s)", key, strings.Join(Keys(), ", "))
		}
		if _, dup := seen[def.Key]; dup {
			continue
		}
		seen[def.Key] = struct{}{}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList splits a comma-separated metric list from a flag value,
// trimming whitespace and dropping empty entries.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Keys returns every metric key in canonical order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for _, def := range registry {
		keys = append(keys, def.Key)
	}
	return keys
}

// Round applies a definition's display precision to a raw value. Internal
// computation always keeps full precision; this is the single place display
// rounding happens.
func Round(def Definition, value float64) float64 {
	scale := math.Pow10(def.Precision)
	return math.Round(value*scale) / scale
}

// Format renders a metric value for text output at the definition's
// precision.
func Format(def Definition, value float64) string {
	return strconv.FormatFloat(Round(def, value), 'f', def.Precision, 64)
}
