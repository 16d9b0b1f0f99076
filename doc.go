// Package textstat analyzes a block of free-form text in a single pass.
//
// A text is first loaded into an immutable [Document], which segments it
// into paragraphs, sentences and lowercase word tokens. [Analyze] then
// derives a [Report] from the document:
//
//   - lexical statistics (character, word, sentence and paragraph counts
//     plus average ratios)
//   - a stop-word filtered word-frequency ranking
//   - a Flesch Reading Ease score with a grade-level label
//   - a lexicon-based sentiment polarity
//
// Segmentation is heuristic: sentences end at runs of '.', '!' or '?',
// paragraphs at a blank line, and words are whitespace-separated tokens
// with ASCII punctuation removed. Syllables are estimated by counting vowel
// groups.
//
// Every function in this package is pure and safe for concurrent use.
//
//	doc := textstat.Load("The quick brown fox. It jumps!")
//	report := textstat.Analyze(doc, textstat.DefaultTopN)
//	fmt.Println(report.Readability.Level)
package textstat
