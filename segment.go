package textstat

import (
	"regexp"
	"strings"
)

// ASCIIPunctuation is the set of characters removed from word tokens.
const ASCIIPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const paragraphSeparator = "\n\n"

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// IsPunct reports whether r is an ASCII punctuation character.
func IsPunct(r rune) bool {
	return r < 0x80 && strings.ContainsRune(ASCIIPunctuation, r)
}

// SplitParagraphs splits text on blank lines ("\n\n"). Pieces are trimmed
// and empty pieces are dropped.
func SplitParagraphs(text string) []string {
	return trimNonEmpty(strings.Split(text, paragraphSeparator))
}

// SplitSentences splits text on runs of '.', '!' and '?'. Abbreviations
// and decimal numbers are not special-cased.
func SplitSentences(text string) []string {
	return trimNonEmpty(sentenceTerminators.Split(text, -1))
}

// ExtractWords lower-cases text, strips ASCII punctuation and splits the
// result on whitespace. Duplicates are kept in document order.
func ExtractWords(text string) []string {
	stripped := strings.Map(func(r rune) rune {
		if IsPunct(r) {
			return -1
		}
		return r
	}, strings.ToLower(text))

	words := strings.Fields(stripped)
	if words == nil {
		return []string{}
	}
	return words
}

func trimNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
