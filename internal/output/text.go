package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeduden/textstat"
	"github.com/jeduden/textstat/internal/engine"
)

// TextFormatter writes human-readable reports. When Color is true, the
// title is bold, section headings are cyan and the sentiment label is
// green, yellow or red.
type TextFormatter struct {
	Color bool
}

// Format writes one report per file. With more than one file, each report
// is preceded by a "==> path <==" header and reports are separated by a
// blank line.
func (f *TextFormatter) Format(w io.Writer, files []engine.FileReport) error {
	p := newPainter(f.Color)
	for i, fr := range files {
		var b strings.Builder
		if i > 0 {
			b.WriteString("\n")
		}
		if len(files) > 1 {
			fmt.Fprintf(&b, "==> %s <==\n", fr.Path)
		}
		writeReport(&b, p, fr.Report)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

type painter struct {
	title     *color.Color
	heading   *color.Color
	sentiment map[textstat.SentimentLabel]*color.Color
	num       *message.Printer
}

func newPainter(enabled bool) *painter {
	p := &painter{
		title:   color.New(color.Bold),
		heading: color.New(color.FgCyan, color.Bold),
		sentiment: map[textstat.SentimentLabel]*color.Color{
			textstat.Positive: color.New(color.FgGreen),
			textstat.Neutral:  color.New(color.FgYellow),
			textstat.Negative: color.New(color.FgRed),
		},
		num: message.NewPrinter(language.English),
	}
	all := []*color.Color{p.title, p.heading}
	for _, c := range p.sentiment {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *painter) count(n int) string {
	return p.num.Sprintf("%d", n)
}

func writeReport(b *strings.Builder, p *painter, r textstat.Report) {
	s := r.Stats
	b.WriteString(p.title.Sprint("=== TEXT ANALYSIS REPORT ===") + "\n\n")

	b.WriteString(p.heading.Sprint("BASIC STATISTICS:") + "\n")
	fmt.Fprintf(b, "Characters: %s\n", p.count(s.Characters))
	fmt.Fprintf(b, "Characters (no spaces): %s\n", p.count(s.CharactersNoSpaces))
	fmt.Fprintf(b, "Words: %s\n", p.count(s.Words))
	fmt.Fprintf(b, "Sentences: %s\n", p.count(s.Sentences))
	fmt.Fprintf(b, "Paragraphs: %s\n", p.count(s.Paragraphs))
	fmt.Fprintf(b, "Average words per sentence: %.1f\n", s.AvgWordsPerSentence)
	fmt.Fprintf(b, "Average sentences per paragraph: %.1f\n\n", s.AvgSentencesPerParagraph)

	b.WriteString(p.heading.Sprint("READABILITY:") + "\n")
	fmt.Fprintf(b, "Flesch Reading Ease Score: %.1f\n", r.Readability.Score)
	fmt.Fprintf(b, "Reading Level: %s\n\n", r.Readability.Level)

	b.WriteString(p.heading.Sprint("SENTIMENT ANALYSIS:") + "\n")
	label := string(r.Sentiment.Label)
	if c, ok := p.sentiment[r.Sentiment.Label]; ok {
		label = c.Sprint(label)
	}
	fmt.Fprintf(b, "Overall Sentiment: %s\n", label)
	fmt.Fprintf(b, "Sentiment Score: %.2f\n\n", r.Sentiment.Score)

	b.WriteString(p.heading.Sprint("MOST FREQUENT WORDS:") + "\n")
	writeFrequency(b, p, r.Frequency)
}

// writeFrequency lines up the counts by padding each quoted word to the
// display width of the widest one.
func writeFrequency(b *strings.Builder, p *painter, table textstat.FrequencyTable) {
	width := 0
	for _, wc := range table {
		width = max(width, runewidth.StringWidth(wc.Word))
	}
	for _, wc := range table {
		label := runewidth.FillRight(fmt.Sprintf("'%s':", wc.Word), width+3)
		fmt.Fprintf(b, "%s %s times\n", label, p.count(wc.Count))
	}
}
