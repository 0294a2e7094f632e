package conversation_test

import (
	"testing"

	"github.com/lingokit/lingua-api/internal/conversation"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trailing question mark",
			in:   "What do you eat for breakfast?",
			want: "what do you eat for breakfast",
		},
		{
			name: "no punctuation",
			in:   "What do you eat for breakfast",
			want: "what do you eat for breakfast",
		},
		{
			name: "upper case and stacked punctuation",
			in:   "WHAT DO YOU EAT FOR BREAKFAST?!",
			want: "what do you eat for breakfast",
		},
		{
			name: "non-ascii punctuation preserved letters",
			in:   "¿Cómo estás?",
			want: "cómo estás",
		},
		{
			name: "accent-free variant is distinct",
			in:   "Como estas",
			want: "como estas",
		},
		{
			name: "apostrophe dropped",
			in:   "I'm feeling a bit tired today.",
			want: "im feeling a bit tired today",
		},
		{
			name: "interior whitespace kept",
			in:   "  Good   morning!  ",
			want: "good   morning",
		},
		{
			name: "digits kept",
			in:   "Numbers 1-10?",
			want: "numbers 110",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "punctuation only",
			in:   "?!...",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := conversation.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
