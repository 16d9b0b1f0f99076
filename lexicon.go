package textstat

// Common English function words excluded from frequency ranking.
var stopWords = newWordSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by", "is", "are", "was", "were", "be", "been",
	"have", "has", "had", "do", "does", "did", "will", "would", "could", "should",
	"may", "might", "can", "this", "that", "these", "those", "i", "you", "he",
	"she", "it", "we", "they", "me", "him", "her", "us", "them",
)

var positiveWords = newWordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome", "brilliant", "perfect", "love",
	"like", "happy", "joy", "pleased", "satisfied", "delighted", "thrilled", "excited", "optimistic", "positive",
	"beautiful", "successful", "win", "winner", "best", "better", "improve", "success", "achievement", "accomplish",
)

var negativeWords = newWordSet(
	"bad", "terrible", "awful", "horrible", "hate", "dislike", "angry", "sad", "disappointed", "frustrated",
	"annoyed", "upset", "worried", "concerned", "problem", "issue", "fail", "failure", "worst", "worse",
	"negative", "difficult", "hard", "challenging", "struggle", "trouble", "wrong", "error", "mistake", "damage",
)

// wordSet is a fixed word list that remembers its declaration order.
type wordSet struct {
	order   []string
	members map[string]struct{}
}

func newWordSet(words ...string) wordSet {
	s := wordSet{
		order:   words,
		members: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		s.members[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(word string) bool {
	_, ok := s.members[word]
	return ok
}

func (s wordSet) list() []string {
	return clone(s.order)
}

// StopWords returns the stop-word list in declaration order.
func StopWords() []string { return stopWords.list() }

// PositiveWords returns the positive-polarity lexicon.
func PositiveWords() []string { return positiveWords.list() }

// NegativeWords returns the negative-polarity lexicon.
func NegativeWords() []string { return negativeWords.list() }

// IsStopWord reports whether word (already lower-cased) is a stop word.
func IsStopWord(word string) bool { return stopWords.has(word) }
