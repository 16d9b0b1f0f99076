package textstat

import (
	"sort"
	"unicode/utf8"
)

// DefaultTopN is the number of words kept in a frequency table when the
// caller has no preference.
const DefaultTopN = 10

// minRankedWordLen is the shortest word length kept for ranking.
const minRankedWordLen = 3

// WordCount is one entry of a frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyTable lists words by descending count.
type FrequencyTable []WordCount

// WordFrequency ranks words that are neither stop words nor shorter than
// three characters. Equal counts keep the order in which the words first
// appeared. At most topN entries are returned; topN <= 0 yields an empty
// table.
func WordFrequency(words []string, topN int) FrequencyTable {
	table := FrequencyTable{}
	if topN <= 0 {
		return table
	}

	index := make(map[string]int)
	for _, w := range words {
		if !rankable(w) {
			continue
		}
		if i, ok := index[w]; ok {
			table[i].Count++
			continue
		}
		index[w] = len(table)
		table = append(table, WordCount{Word: w, Count: 1})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	if len(table) > topN {
		table = table[:topN]
	}
	return table
}

func rankable(word string) bool {
	return utf8.RuneCountInString(word) >= minRankedWordLen && !IsStopWord(word)
}
