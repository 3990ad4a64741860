// Package clean normalizes raw Wikipedia lead sections before metric
// computation: citation markers go, first-sentence pronunciation and
// etymology parentheticals go, whitespace collapses. Cleaning is pure text
// transformation; it never touches article metadata.
package clean

import (
	"regexp"
	"strings"
)

var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[\d+\]`),
	regexp.MustCompile(`\[note \d+\]`),
	regexp.MustCompile(`\[[a-z]\]`),
	regexp.MustCompile(`(?i)\[citation needed\]`),
}

// Parenthetical content matching any of these is stripped from the first
// sentence: IPA transcriptions, aliases, and etymology notes add noise
// without carrying readable prose.
var stripParenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/[^/]+/`),
	regexp.MustCompile(`[ˈˌːʃʒθðŋɪʊɛɔɑəæɒʌɜɐ]`),
	regexp.MustCompile(`(?i)\balso known as\b`),
	regexp.MustCompile(`(?i)\babbreviated?\b`),
	regexp.MustCompile(`(?i)\bformerly\b`),
	regexp.MustCompile(`(?i)\bor simply\b`),
	regexp.MustCompile(`(?i)\blit\.\s`),
	regexp.MustCompile(`(?i)\bfrom (?:Latin|Greek|French|German|Spanish|Italian|Arabic|Japanese|Chinese|Sanskrit|Old English|Middle English|Proto)`),
	regexp.MustCompile(`(?:Latin|Greek|French|German|Spanish|Italian|Arabic|Japanese|Chinese|Hindi|Russian|Portuguese|Korean|Turkish):\s`),
}

// Long parentheticals are likely disambiguation rather than content.
const maxParenWords = 10

var (
	firstSentencePattern = regexp.MustCompile(`(?s)^(.*?[.!?])(\s+)[A-Z]`)
	multiSpacePattern    = regexp.MustCompile(`  +`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
	residualQuotePattern = regexp.MustCompile(`'{2,3}`)
)

// Text runs the full cleaning pipeline on a raw lead section.
func Text(text string) string {
	text = Citations(text)
	text = FirstSentenceParentheticals(text)
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	// Residual wiki bold/italic markup.
	text = residualQuotePattern.ReplaceAllString(text, "")
	return text
}

// Citations removes citation markers such as [1], [note 2], [a], and
// [citation needed].
func Citations(text string) string {
	for _, pattern := range citationPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	return text
}

// FirstSentenceParentheticals strips IPA, etymology, and alias
// parentheticals from the first sentence only. Later sentences keep their
// parentheticals: past the opening sentence they tend to be real content.
func FirstSentenceParentheticals(text string) string {
	firstSent := text
	rest := ""
	// First sentence ends at terminal punctuation followed by whitespace and
	// a capital letter, or at end of string.
	if loc := firstSentencePattern.FindStringSubmatchIndex(text); loc != nil {
		firstSent = text[loc[2]:loc[3]]
		// Keep one space before the capital that starts the next sentence.
		rest = text[loc[5]-1:]
	}

	// Remove matching groups right to left so indices stay valid.
	groups := topLevelParens(firstSent)
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if !shouldStripParen(g.content) {
			continue
		}
		before := strings.TrimRight(firstSent[:g.start], " \t\n")
		after := strings.TrimLeft(firstSent[g.end:], " \t\n")
		firstSent = multiSpacePattern.ReplaceAllString(before+" "+after, " ")
	}

	return strings.TrimSpace(firstSent + rest)
}

type parenGroup struct {
	start   int
	end     int
	content string
}

// topLevelParens finds outermost parenthetical groups, handling nesting.
func topLevelParens(text string) []parenGroup {
	groups := make([]parenGroup, 0, 2)
	depth := 0
	start := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				groups = append(groups, parenGroup{
					start:   start,
					end:     i + 1,
					content: text[start+1 : i],
				})
				start = -1
			}
		}
	}
	return groups
}

func shouldStripParen(content string) bool {
	for _, pattern := range stripParenPatterns {
		if pattern.MatchString(content) {
			return true
		}
	}
	return len(strings.Fields(content)) > maxParenWords
}
