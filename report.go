package textstat

// Report is the complete analysis of one Document.
type Report struct {
	Stats       LexicalStats      `json:"stats"`
	Frequency   FrequencyTable    `json:"frequency"`
	Readability ReadabilityResult `json:"readability"`
	Sentiment   SentimentResult   `json:"sentiment"`
	TopN        int               `json:"top_n"`
}

// Analyze computes every metric for doc. The frequency table holds at most
// topN words; a negative topN is treated as 0.
func Analyze(doc Document, topN int) Report {
	if topN < 0 {
		topN = 0
	}
	return Report{
		Stats:       ComputeStats(doc),
		Frequency:   WordFrequency(doc.words, topN),
		Readability: Readability(doc.words, doc.sentences),
		Sentiment:   Sentiment(doc.words),
		TopN:        topN,
	}
}

// AnalyzeText loads text and analyzes it.
func AnalyzeText(text string, topN int) Report {
	return Analyze(Load(text), topN)
}
