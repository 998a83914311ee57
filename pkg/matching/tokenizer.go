package matching

import (
	"regexp"
	"strings"
)

// Tokenizer extracts lower-cased word n-grams with stop-words removed.
// N-grams are built over the surviving unigram sequence, so a bigram never
// spans a removed stop-word position the way raw text would suggest.
type Tokenizer struct {
	ngramMin     int
	ngramMax     int
	stopwords    map[string]struct{}
	tokenPattern *regexp.Regexp
}

func NewTokenizer(ngramMin, ngramMax int, stopwords map[string]struct{}) *Tokenizer {
	if ngramMin < 1 {
		ngramMin = 1
	}
	if ngramMax < ngramMin {
		ngramMax = ngramMin
	}
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	return &Tokenizer{
		ngramMin:     ngramMin,
		ngramMax:     ngramMax,
		stopwords:    stopwords,
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]{2,}`),
	}
}

// Tokenize returns all n-gram terms for the configured range. Bigrams and
// longer grams join their words with a single space.
func (t *Tokenizer) Tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := t.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if _, isStop := t.stopwords[w]; isStop {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil
	}

	var terms []string
	for n := t.ngramMin; n <= t.ngramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			terms = append(terms, strings.Join(words[i:i+n], " "))
		}
	}
	return terms
}
