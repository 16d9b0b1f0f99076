package textstat

// Document is a loaded text together with its segmentation. It is a value:
// loading another text yields a new Document and never alters this one.
type Document struct {
	text       string
	paragraphs []string
	sentences  []string
	words      []string
}

// Load segments text into a Document. It accepts any string, including the
// empty string.
func Load(text string) Document {
	return Document{
		text:       text,
		paragraphs: SplitParagraphs(text),
		sentences:  SplitSentences(text),
		words:      ExtractWords(text),
	}
}

// Text returns the raw text the document was loaded from.
func (d Document) Text() string { return d.text }

// Paragraphs returns a copy of the non-empty paragraphs in document order.
func (d Document) Paragraphs() []string { return clone(d.paragraphs) }

// Sentences returns a copy of the non-empty sentences in document order.
func (d Document) Sentences() []string { return clone(d.sentences) }

// Words returns a copy of the lowercase word tokens in document order.
func (d Document) Words() []string { return clone(d.words) }

// IsEmpty reports whether the document has no word tokens.
func (d Document) IsEmpty() bool { return len(d.words) == 0 }

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
