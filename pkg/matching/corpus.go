package matching

// Document is one question/answer pair inside a corpus snapshot.
type Document struct {
	ID       string
	Question string
	Answer   string
}

// Corpus is an immutable snapshot of the active knowledge entries taken at
// build time. Order matters: exact similarity ties resolve to the earliest
// document in the snapshot.
type Corpus struct {
	Documents []Document
}

// FallbackCorpus returns the built-in greeting corpus installed when no
// active knowledge entries exist, so the index is never empty.
func FallbackCorpus() Corpus {
	return Corpus{
		Documents: []Document{
			{Question: "hello", Answer: "Hello! How can I help you today?"},
			{Question: "hi", Answer: "Hi there! What can I assist you with?"},
			{Question: "greetings", Answer: "Greetings! How may I be of service?"},
		},
	}
}
