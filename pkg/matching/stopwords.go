package matching

// DefaultStopwords returns the standard English stop-word list applied
// before n-gram extraction. Callers may supply their own via Options.
func DefaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "should", "now",
		"i", "me", "my", "we", "our", "you", "your", "he", "him", "his",
		"she", "her", "they", "them", "their", "what", "which", "who",
		"whom", "when", "where", "why", "how", "do", "does", "did",
		"have", "has", "had", "not", "no", "nor", "all", "any", "both",
		"each", "few", "more", "most", "other", "some", "am", "there",
		"here", "once", "only", "because", "until", "while",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
