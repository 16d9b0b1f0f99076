package textstat

import "strings"

const vowels = "aeiouy"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// CountSyllables estimates the syllables in a lowercase word by counting
// groups of consecutive vowels ('y' included). A trailing 'e' is treated
// as silent. The result is never less than 1.
func CountSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") {
		count--
	}
	if count <= 0 {
		count = 1
	}
	return count
}
