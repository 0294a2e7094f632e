package conversation

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a phrase for comparison: every rune that is not a
// letter, digit or whitespace is dropped (covers non-ASCII punctuation),
// the rest is lowercased and trimmed. "How are you?" and "how are you"
// normalize to the same string.
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(strings.ToLower(b.String()))
}
