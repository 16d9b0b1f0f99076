package textstat

import (
	"strings"
	"unicode/utf8"
)

// LexicalStats holds raw counts and derived ratios for a document.
type LexicalStats struct {
	Characters               int     `json:"characters"`
	CharactersNoSpaces       int     `json:"characters_no_spaces"`
	Words                    int     `json:"words"`
	Sentences                int     `json:"sentences"`
	Paragraphs               int     `json:"paragraphs"`
	AvgWordsPerSentence      float64 `json:"avg_words_per_sentence"`
	AvgSentencesPerParagraph float64 `json:"avg_sentences_per_paragraph"`
}

// ComputeStats counts the document's characters and segments. Only the
// space character is excluded from CharactersNoSpaces; tabs and newlines
// still count.
func ComputeStats(doc Document) LexicalStats {
	words := len(doc.words)
	sentences := len(doc.sentences)
	paragraphs := len(doc.paragraphs)

	return LexicalStats{
		Characters:               utf8.RuneCountInString(doc.text),
		CharactersNoSpaces:       utf8.RuneCountInString(strings.ReplaceAll(doc.text, " ", "")),
		Words:                    words,
		Sentences:                sentences,
		Paragraphs:               paragraphs,
		AvgWordsPerSentence:      ratio(words, sentences),
		AvgSentencesPerParagraph: ratio(sentences, paragraphs),
	}
}

// ratio returns num/den, or 0 when den is 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
