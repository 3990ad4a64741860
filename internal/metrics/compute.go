// Package metrics computes per-article readability metrics. Each article's
// text reduces to a fixed Vector of scalars; all downstream ranking and
// reporting consumes Vectors, never raw text. Formula coefficients live here
// as named constants and nowhere else — the difficulty tiers are only
// reproducible while every caller shares one definition.
package metrics

import (
	"errors"
	"regexp"
	"strings"

	"github.com/cmfunderburk/Reader/internal/zipf"
)

// ErrUnscorable marks an article whose text yields no words or no alphabetic
// tokens. Callers skip the article and count it as excluded; it never
// participates in population statistics.
var ErrUnscorable = errors.New("article has no scorable words")

// Flesch-Kincaid Grade Level coefficients.
const (
	fkWordsPerSentenceWeight = 0.39
	fkSyllablesPerWordWeight = 11.8
	fkOffset                 = 15.59
)

// Dale-Chall approximation: unfamiliar share is measured against the Zipf
// familiarity threshold, and the adjustment constant applies only when the
// unfamiliar percentage exceeds (strictly) the penalty threshold.
const (
	dcUnfamiliarWeight       = 0.1579
	dcSentenceLengthWeight   = 0.0496
	dcAdjustment             = 3.6365
	dcPenaltyThresholdPct    = 5.0
	zipfFamiliarThreshold    = 4.0
	zipfRareThreshold        = 3.0
	polysyllableMinSyllables = 3
)

var (
	alphaTokenPattern  = regexp.MustCompile(`[a-zA-Z']+`)
	sentenceEndPattern = regexp.MustCompile(`[.!?]+`)
)

// Vector is the fixed set of readability metrics for one article.
// Values carry full float precision; rounding happens only at display and
// serialization time, via the registry definitions.
type Vector struct {
	FKGrade     float64 // grade-level estimate, typically 0-20
	DaleChall   float64 // unfamiliar-word-weighted score, typically 4-14
	MeanZipf    float64 // mean token commonness, roughly [0, 7]
	PctRare     float64 // share of tokens with Zipf < 3.0, in [0, 1]
	TTR         float64 // unique tokens / total tokens, in [0, 1]
	PctPoly     float64 // share of tokens with >= 3 syllables, in [0, 1]
	MeanWordLen float64 // mean characters per alphabetic token
	Words       int     // raw whitespace-separated word count
	Sentences   int     // sentence-terminator run count, floored at 1
}

// Compute derives the full metric vector for one article text. Grade-level
// formulas use raw whitespace tokens (they are historically sensitive to
// punctuation-attached words); vocabulary and frequency metrics use lowercase
// alphabetic tokens. Returns ErrUnscorable when either token set is empty.
func Compute(text string, oracle zipf.Oracle) (Vector, error) {
	rawWords := strings.Fields(text)
	nWords := len(rawWords)
	if nWords == 0 {
		return Vector{}, ErrUnscorable
	}

	nSents := CountSentences(text)

	alphaTokens := alphaTokenPattern.FindAllString(strings.ToLower(text), -1)
	nAlpha := len(alphaTokens)
	if nAlpha == 0 {
		return Vector{}, ErrUnscorable
	}

	nSyllables := 0
	for _, w := range rawWords {
		nSyllables += CountSyllables(w)
	}
	fk := fkWordsPerSentenceWeight*(float64(nWords)/float64(nSents)) +
		fkSyllablesPerWordWeight*(float64(nSyllables)/float64(nWords)) -
		fkOffset

	zipfSum := 0.0
	nRare := 0
	nUnfamiliar := 0
	for _, tok := range alphaTokens {
		z := oracle.Frequency(tok)
		zipfSum += z
		if z < zipfRareThreshold {
			nRare++
		}
		if z < zipfFamiliarThreshold {
			nUnfamiliar++
		}
	}
	pctUnfamiliar := float64(nUnfamiliar) / float64(nAlpha) * 100

	dc := dcUnfamiliarWeight*pctUnfamiliar +
		dcSentenceLengthWeight*(float64(nWords)/float64(nSents))
	if pctUnfamiliar > dcPenaltyThresholdPct {
		dc += dcAdjustment
	}

	unique := make(map[string]struct{}, nAlpha)
	nPoly := 0
	charSum := 0
	for _, tok := range alphaTokens {
		unique[tok] = struct{}{}
		if CountSyllables(tok) >= polysyllableMinSyllables {
			nPoly++
		}
		charSum += len(tok)
	}

	return Vector{
		FKGrade:     fk,
		DaleChall:   dc,
		MeanZipf:    zipfSum / float64(nAlpha),
		PctRare:     float64(nRare) / float64(nAlpha),
		TTR:         float64(len(unique)) / float64(nAlpha),
		PctPoly:     float64(nPoly) / float64(nAlpha),
		MeanWordLen: float64(charSum) / float64(nAlpha),
		Words:       nWords,
		Sentences:   nSents,
	}, nil
}

// CountSentences counts runs of sentence-terminating punctuation, floored at
// 1 so per-sentence ratios never divide by zero.
func CountSentences(text string) int {
	n := len(sentenceEndPattern.FindAllString(text, -1))
	if n < 1 {
		return 1
	}
	return n
}

// FleschKincaidGrade computes the grade level alone, without frequency
// lookups. The prepare pipeline uses it to filter articles before the full
// vector (which needs the frequency oracle) is ever computed.
func FleschKincaidGrade(text string) float64 {
	rawWords := strings.Fields(text)
	nWords := len(rawWords)
	if nWords == 0 {
		return 0
	}
	nSents := CountSentences(text)
	nSyllables := 0
	for _, w := range rawWords {
		nSyllables += CountSyllables(w)
	}
	return fkWordsPerSentenceWeight*(float64(nWords)/float64(nSents)) +
		fkSyllablesPerWordWeight*(float64(nSyllables)/float64(nWords)) -
		fkOffset
}
