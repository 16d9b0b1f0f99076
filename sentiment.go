package textstat

import "strings"

// SentimentLabel classifies the overall polarity of a text.
type SentimentLabel string

const (
	Positive SentimentLabel = "Positive"
	Neutral  SentimentLabel = "Neutral"
	Negative SentimentLabel = "Negative"
)

// sentimentThreshold is the magnitude a score must exceed to leave Neutral.
const sentimentThreshold = 0.1

// SentimentResult is the polarity of a text. Score lies in [-1, 1].
type SentimentResult struct {
	Label    SentimentLabel `json:"label"`
	Score    float64        `json:"score"`
	Positive int            `json:"positive_hits"`
	Negative int            `json:"negative_hits"`
}

// Sentiment counts lexicon hits over the word list and returns
// (p-n)/(p+n) with its label. Matching ignores case. Texts without any hit
// are Neutral with a score of 0.
func Sentiment(words []string) SentimentResult {
	var p, n int
	for _, w := range words {
		w = strings.ToLower(w)
		switch {
		case positiveWords.has(w):
			p++
		case negativeWords.has(w):
			n++
		}
	}

	res := SentimentResult{Label: Neutral, Positive: p, Negative: n}
	if p+n == 0 {
		return res
	}

	res.Score = float64(p-n) / float64(p+n)
	switch {
	case res.Score > sentimentThreshold:
		res.Label = Positive
	case res.Score < -sentimentThreshold:
		res.Label = Negative
	}
	return res
}
