package matching

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tok := NewTokenizer(1, 2, DefaultStopwords())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips stopwords",
			text: "What are your business hours?",
			want: []string{"business", "hours", "business hours"},
		},
		{
			name: "bigrams over surviving words",
			text: "reset my account password",
			want: []string{"reset", "account", "password", "reset account", "account password"},
		},
		{
			name: "single word",
			text: "hello",
			want: []string{"hello"},
		},
		{
			name: "only stopwords",
			text: "what are these",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "short tokens dropped",
			text: "a b refund",
			want: []string{"refund"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeUnigramOnly(t *testing.T) {
	tok := NewTokenizer(1, 1, DefaultStopwords())
	got := tok.Tokenize("business hours today")
	want := []string{"business", "hours", "today"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
