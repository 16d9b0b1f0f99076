package textstat

import "fmt"

// Flesch Reading Ease coefficients.
const (
	fleschBase          = 206.835
	fleschSentenceCoeff = 1.015
	fleschSyllableCoeff = 84.6
)

// Level is a readability band with its approximate school grade.
type Level struct {
	MinScore float64 `json:"min_score"`
	Label    string  `json:"label"`
	Grade    string  `json:"grade"`
}

// String renders the level as "Label (Grade level)".
func (l Level) String() string {
	return fmt.Sprintf("%s (%s level)", l.Label, l.Grade)
}

// levels is ordered from easiest to hardest; the last entry catches
// everything below 30.
var levels = []Level{
	{MinScore: 90, Label: "Very Easy", Grade: "5th grade"},
	{MinScore: 80, Label: "Easy", Grade: "6th grade"},
	{MinScore: 70, Label: "Fairly Easy", Grade: "7th grade"},
	{MinScore: 60, Label: "Standard", Grade: "8th-9th grade"},
	{MinScore: 50, Label: "Fairly Difficult", Grade: "10th-12th grade"},
	{MinScore: 30, Label: "Difficult", Grade: "College"},
	{MinScore: 0, Label: "Very Difficult", Grade: "Graduate"},
}

// Levels returns all readability bands, easiest first.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// LevelFor maps a score to its readability band.
func LevelFor(score float64) Level {
	for _, l := range levels[:len(levels)-1] {
		if score >= l.MinScore {
			return l
		}
	}
	return levels[len(levels)-1]
}

// ReadabilityResult pairs a Flesch Reading Ease score with its band.
type ReadabilityResult struct {
	Score float64 `json:"score"`
	Level Level   `json:"level"`
}

// FleschReadingEase computes
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// clamped to [0, 100]. It returns 0 when words or sentences is zero.
func FleschReadingEase(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	w := float64(words)
	score := fleschBase -
		fleschSentenceCoeff*(w/float64(sentences)) -
		fleschSyllableCoeff*(float64(syllables)/w)
	return clamp(score, 0, 100)
}

// Readability scores word and sentence lists produced by the segmenter.
func Readability(words, sentences []string) ReadabilityResult {
	if len(words) == 0 || len(sentences) == 0 {
		return ReadabilityResult{Score: 0, Level: LevelFor(0)}
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	score := FleschReadingEase(len(words), len(sentences), syllables)
	return ReadabilityResult{Score: score, Level: LevelFor(score)}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
