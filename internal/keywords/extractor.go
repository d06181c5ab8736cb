// Package keywords derives the bounded keyword set used by feed ranking
// from post content.
package keywords

import (
	"strings"
	"unicode"
)

// MaxKeywords caps the number of tokens kept per post.
const MaxKeywords = 10

// stopwords are dropped before the cap is applied. The list targets the
// short English filler words that dominate post text.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "nor", "so", "yet",
		"i", "me", "my", "mine", "we", "us", "our", "ours",
		"you", "your", "yours", "he", "him", "his", "she", "her", "hers",
		"it", "its", "they", "them", "their", "theirs",
		"this", "that", "these", "those", "there", "here",
		"is", "am", "are", "was", "were", "be", "been", "being",
		"do", "does", "did", "doing", "have", "has", "had", "having",
		"will", "would", "can", "could", "shall", "should", "may", "might", "must",
		"to", "of", "in", "on", "at", "by", "for", "with", "about", "from",
		"as", "into", "onto", "off", "over", "under", "up", "down", "out",
		"if", "then", "than", "because", "while", "when", "where", "what",
		"which", "who", "whom", "how", "why", "not", "no", "too", "very",
		"just", "also", "only", "more", "most", "some", "any", "all", "both",
	} {
		stopwords[w] = struct{}{}
	}
}

// Extract lowercases text, tokenizes it into word-like units, drops
// stopwords and non-alphanumeric tokens, and keeps the first MaxKeywords
// distinct survivors in original order. It never fails: malformed input
// simply yields fewer (or zero) tokens, so a post save cannot be blocked
// by extraction.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, MaxKeywords)
	out := make([]string, 0, MaxKeywords)
	for _, tok := range fields {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) == MaxKeywords {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Overlaps reports whether any token in a appears in b.
func Overlaps(a []string, b map[string]struct{}) bool {
	for _, tok := range a {
		if _, ok := b[tok]; ok {
			return true
		}
	}
	return false
}

// Union folds the keyword lists of several posts into one set.
func Union(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, tok := range list {
			set[tok] = struct{}{}
		}
	}
	return set
}
