package metrics

import "strings"

// surroundingPunct is stripped from both ends of a word before counting.
const surroundingPunct = ".,;:!?\"'()[]"

// CountSyllables estimates the syllable count of a single word using a
// vowel-group heuristic: one syllable per run of vowel characters, minus a
// trailing silent "e". The estimate is floored at 1, so punctuation-only and
// empty input still count as one syllable. This is an approximation tuned for
// speed, not a dictionary lookup; the downstream difficulty cutoffs were
// calibrated against its output, so its quirks are load-bearing.
func CountSyllables(word string) int {
	word = strings.Trim(word, surroundingPunct)
	if word == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	// Silent-e: "cake" has two vowel groups but one spoken syllable.
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}
