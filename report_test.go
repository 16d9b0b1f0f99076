package textstat_test

import (
	"reflect"
	"testing"

	"github.com/jeduden/textstat"
)

const sample = `The morning was bright and the garden looked wonderful. Birds sang!

We had a problem with the old gate, but the fix was easy. Everyone was happy.`

func TestAnalyze_EmptyDocument(t *testing.T) {
	r := textstat.Analyze(textstat.Load(""), textstat.DefaultTopN)

	if r.Stats != (textstat.LexicalStats{}) {
		t.Errorf("stats = %+v, want zero", r.Stats)
	}
	if r.Readability.Score != 0 || r.Readability.Level.Label != "Very Difficult" {
		t.Errorf("readability = %+v, want 0 Very Difficult", r.Readability)
	}
	if r.Sentiment.Label != textstat.Neutral || r.Sentiment.Score != 0 {
		t.Errorf("sentiment = %+v, want Neutral 0", r.Sentiment)
	}
	if len(r.Frequency) != 0 {
		t.Errorf("frequency = %v, want empty", r.Frequency)
	}
}

func TestAnalyze_Sample(t *testing.T) {
	r := textstat.AnalyzeText(sample, 3)

	if r.Stats.Paragraphs != 2 {
		t.Errorf("paragraphs = %d, want 2", r.Stats.Paragraphs)
	}
	if r.Stats.Sentences != 4 {
		t.Errorf("sentences = %d, want 4", r.Stats.Sentences)
	}
	if r.Stats.Words != 27 {
		t.Errorf("words = %d, want 27", r.Stats.Words)
	}
	if r.Stats.AvgSentencesPerParagraph != 2 {
		t.Errorf("avg sentences/paragraph = %v, want 2", r.Stats.AvgSentencesPerParagraph)
	}
	if r.Sentiment.Positive != 2 || r.Sentiment.Negative != 1 {
		t.Errorf("sentiment hits = %d/%d, want 2/1", r.Sentiment.Positive, r.Sentiment.Negative)
	}
	if r.Sentiment.Label != textstat.Positive {
		t.Errorf("sentiment label = %q, want Positive", r.Sentiment.Label)
	}
	if len(r.Frequency) != 3 {
		t.Fatalf("frequency len = %d, want 3", len(r.Frequency))
	}
	if r.Frequency[0].Word != "morning" {
		t.Errorf("first ranked word = %q, want morning", r.Frequency[0].Word)
	}
	if r.TopN != 3 {
		t.Errorf("TopN = %d, want 3", r.TopN)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	doc := textstat.Load(sample)
	a := textstat.Analyze(doc, 5)
	b := textstat.Analyze(doc, 5)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("reports differ:\n%+v\n%+v", a, b)
	}
}

func TestAnalyze_NegativeTopN(t *testing.T) {
	r := textstat.AnalyzeText(sample, -1)
	if r.TopN != 0 || len(r.Frequency) != 0 {
		t.Errorf("got TopN %d, %d words; want 0, 0", r.TopN, len(r.Frequency))
	}
}
