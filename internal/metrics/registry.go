package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeduden/textstat"
)

var registry = []Definition{
	{
		ID:           "TXT001",
		Name:         "characters",
		Description:  "Characters in the analyzed text, spaces included.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(r *textstat.Report) Value {
			return AvailableValue(float64(r.Stats.Characters))
		},
	},
	{
		ID:           "TXT002",
		Name:         "characters-no-spaces",
		Description:  "Characters in the analyzed text, spaces excluded.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(r *textstat.Report) Value {
			return AvailableValue(float64(r.Stats.CharactersNoSpaces))
		},
	},
	{
		ID:           "TXT003",
		Name:         "words",
		Description:  "Word count.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(r *textstat.Report) Value {
			return AvailableValue(float64(r.Stats.Words))
		},
	},
	{
		ID:           "TXT004",
		Name:         "sentences",
		Description:  "Sentence count.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(r *textstat.Report) Value {
			return AvailableValue(float64(r.Stats.Sentences))
		},
	},
	{
		ID:           "TXT005",
		Name:         "paragraphs",
		Description:  "Paragraph count.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(r *textstat.Report) Value {
			return AvailableValue(float64(r.Stats.Paragraphs))
		},
	},
	{
		ID:           "TXT006",
		Name:         "avg-words-per-sentence",
		Description:  "Mean words per sentence.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(r *textstat.Report) Value {
			if r.Stats.Sentences == 0 {
				return UnavailableValue()
			}
			return AvailableValue(r.Stats.AvgWordsPerSentence)
		},
	},
	{
		ID:           "TXT007",
		Name:         "avg-sentences-per-paragraph",
		Description:  "Mean sentences per paragraph.",
		Kind:         KindFloat,
		Precision:    1,
		DefaultOrder: OrderDesc,
		Compute: func(r *textstat.Report) Value {
			if r.Stats.Paragraphs == 0 {
				return UnavailableValue()
			}
			return AvailableValue(r.Stats.AvgSentencesPerParagraph)
		},
	},
	{
		ID:           "TXT008",
		Name:         "readability",
		Description:  "Flesch Reading Ease (0-100, lower is harder to read).",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderAsc,
		Compute: func(r *textstat.Report) Value {
			if r.Stats.Words == 0 || r.Stats.Sentences == 0 {
				return UnavailableValue()
			}
			return AvailableValue(r.Readability.Score)
		},
	},
	{
		ID:           "TXT009",
		Name:         "sentiment",
		Description:  "Lexicon polarity score (-1 to 1).",
		Kind:         KindFloat,
		Precision:    2,
		Default:      true,
		DefaultOrder: OrderAsc,
		Compute: func(r *textstat.Report) Value {
			if r.Sentiment.Positive+r.Sentiment.Negative == 0 {
				return UnavailableValue()
			}
			return AvailableValue(r.Sentiment.Score)
		},
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs.
// Empty names returns default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
