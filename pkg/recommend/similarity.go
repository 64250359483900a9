package recommend

import "strings"

var nameSeparators = strings.NewReplacer("-", " ", "(", " ", ")", " ")

// Tokenize lowercases the name, turns '-', '(' and ')' into spaces, splits on whitespace
// and drops the stop words. The result is a set.
func Tokenize(name string, stopWords map[string]struct{}) map[string]struct{} {
	normalized := nameSeparators.Replace(strings.ToLower(name))
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(normalized) {
		if _, stop := stopWords[token]; stop {
			continue
		}
		tokens[token] = struct{}{}
	}
	return tokens
}

// Jaccard returns |a ∩ b| / |a ∪ b|, and 0 if either set is empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

// Similarity compares exercise names using a fixed stop word set.
type Similarity struct {
	stopWords map[string]struct{}
}

func NewSimilarity(stopWords []string) *Similarity {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Similarity{
		stopWords: set,
	}
}

func (s *Similarity) Tokens(name string) map[string]struct{} {
	return Tokenize(name, s.stopWords)
}

// Names returns the Jaccard similarity of the two names' token sets.
func (s *Similarity) Names(a, b string) float64 {
	return Jaccard(s.Tokens(a), s.Tokens(b))
}

var defaultSimilarity = NewSimilarity(DefaultStopWords)

// NameSimilarity compares two names with the default stop words.
func NameSimilarity(a, b string) float64 {
	return defaultSimilarity.Names(a, b)
}
