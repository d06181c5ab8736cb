package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "drops stopwords",
			text:     "machine learning models are fun",
			expected: []string{"machine", "learning", "models", "fun"},
		},
		{
			name:     "lowercases and strips punctuation",
			text:     "Go, Rust & Zig: systems languages!",
			expected: []string{"go", "rust", "zig", "systems", "languages"},
		},
		{
			name:     "keeps original order not frequency order",
			text:     "coffee tea coffee coffee tea cake",
			expected: []string{"coffee", "tea", "cake"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
		{
			name:     "only stopwords",
			text:     "is it not the and or",
			expected: nil,
		},
		{
			name:     "numbers survive",
			text:     "top 10 albums of 2025",
			expected: []string{"top", "10", "albums", "2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.text))
		})
	}
}

func TestExtractCapsAtTen(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima",
	}
	got := Extract(strings.Join(words, " "))
	assert.Len(t, got, MaxKeywords)
	assert.Equal(t, words[:MaxKeywords], got)
}

func TestExtractNoStopwordsOrPunctuationTokens(t *testing.T) {
	got := Extract("The quick, brown fox -- it jumps over the lazy dog!!!")
	for _, tok := range got {
		_, isStop := stopwords[tok]
		assert.False(t, isStop, "stopword leaked: %q", tok)
		assert.NotEqual(t, "", strings.TrimFunc(tok, func(r rune) bool { return r == '-' || r == '!' }))
	}
	assert.LessOrEqual(t, len(got), MaxKeywords)
}

func TestOverlapsAndUnion(t *testing.T) {
	set := Union([]string{"machine", "learning"}, []string{"cooking"})
	assert.True(t, Overlaps([]string{"machine", "vision"}, set))
	assert.False(t, Overlaps([]string{"gardening"}, set))
	assert.False(t, Overlaps(nil, set))
}
