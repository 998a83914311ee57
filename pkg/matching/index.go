package matching

import (
	"math"
	"sort"
)

// Options configures index construction and query scoring.
type Options struct {
	Threshold   float64
	MaxFeatures int
	NgramMin    int
	NgramMax    int
	Stopwords   map[string]struct{}
}

// DefaultOptions mirrors the configuration the knowledge base was tuned
// with: unigrams + bigrams, a 1000-term vocabulary and a 0.3 match floor.
func DefaultOptions() Options {
	return Options{
		Threshold:   0.3,
		MaxFeatures: 1000,
		NgramMin:    1,
		NgramMax:    2,
		Stopwords:   DefaultStopwords(),
	}
}

// Index is a frozen TF-IDF vector space over one corpus snapshot. The
// vocabulary, IDF weights and document vectors are never mutated after
// BuildIndex returns; rebuilding always produces a brand-new Index.
type Index struct {
	tokenizer  *Tokenizer
	vocabulary map[string]int
	idf        []float64
	vectors    [][]float64
	questions  []string
	answers    []string
}

// BuildIndex fits a vector space over the corpus questions: tokenize,
// count document frequencies, cap the vocabulary to the most frequent
// terms (first-seen order breaks frequency ties and assigns columns),
// compute smoothed IDF and one L2-normalized tf*idf vector per document.
func BuildIndex(corpus Corpus, opts Options) *Index {
	tok := NewTokenizer(opts.NgramMin, opts.NgramMax, opts.Stopwords)

	docs := corpus.Documents
	docTerms := make([][]string, len(docs))

	type termStat struct {
		df        int
		freq      int
		firstSeen int
	}
	stats := make(map[string]*termStat)
	order := 0

	for i, d := range docs {
		terms := tok.Tokenize(d.Question)
		docTerms[i] = terms
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			st, ok := stats[term]
			if !ok {
				st = &termStat{firstSeen: order}
				order++
				stats[term] = st
			}
			st.freq++
			if _, dup := seen[term]; !dup {
				seen[term] = struct{}{}
				st.df++
			}
		}
	}

	kept := make([]string, 0, len(stats))
	for term := range stats {
		kept = append(kept, term)
	}
	if opts.MaxFeatures > 0 && len(kept) > opts.MaxFeatures {
		sort.Slice(kept, func(a, b int) bool {
			sa, sb := stats[kept[a]], stats[kept[b]]
			if sa.freq != sb.freq {
				return sa.freq > sb.freq
			}
			return sa.firstSeen < sb.firstSeen
		})
		kept = kept[:opts.MaxFeatures]
	}
	// Column assignment follows first-seen order from the fit pass.
	sort.Slice(kept, func(a, b int) bool {
		return stats[kept[a]].firstSeen < stats[kept[b]].firstSeen
	})

	vocab := make(map[string]int, len(kept))
	idf := make([]float64, len(kept))
	n := float64(len(docs))
	for col, term := range kept {
		vocab[term] = col
		idf[col] = math.Log((1+n)/(1+float64(stats[term].df))) + 1.0
	}

	ix := &Index{
		tokenizer:  tok,
		vocabulary: vocab,
		idf:        idf,
		questions:  make([]string, len(docs)),
		answers:    make([]string, len(docs)),
		vectors:    make([][]float64, len(docs)),
	}
	for i, d := range docs {
		ix.questions[i] = d.Question
		ix.answers[i] = d.Answer
		ix.vectors[i] = ix.weigh(docTerms[i])
	}
	return ix
}

// Size returns the document count of the snapshot.
func (ix *Index) Size() int { return len(ix.vectors) }

// VocabularySize returns the number of fitted terms.
func (ix *Index) VocabularySize() int { return len(ix.vocabulary) }

// Answer returns the stored answer for document i.
func (ix *Index) Answer(i int) string { return ix.answers[i] }

// Question returns the stored question for document i.
func (ix *Index) Question(i int) string { return ix.questions[i] }

// Vectorize maps text into the frozen vector space. Out-of-vocabulary
// terms contribute zero weight; the result is L2-normalized.
func (ix *Index) Vectorize(text string) []float64 {
	return ix.weigh(ix.tokenizer.Tokenize(text))
}

func (ix *Index) weigh(terms []string) []float64 {
	vec := make([]float64, len(ix.vocabulary))
	for _, term := range terms {
		if col, ok := ix.vocabulary[term]; ok {
			vec[col] += ix.idf[col]
		}
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// BestMatch scores text against every document vector and returns the
// winning index with its cosine similarity. Exact ties keep the earliest
// document. Returns (-1, 0) when the snapshot has no documents.
func (ix *Index) BestMatch(text string) (int, float64) {
	if len(ix.vectors) == 0 {
		return -1, 0
	}
	query := ix.Vectorize(text)
	best, bestScore := 0, dot(ix.vectors[0], query)
	for i := 1; i < len(ix.vectors); i++ {
		if score := dot(ix.vectors[i], query); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, clamp01(bestScore)
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// clamp01 absorbs float rounding so callers always see [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
