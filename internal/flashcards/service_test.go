package flashcards_test

import (
	"context"
	"testing"

	"github.com/lingokit/lingua-api/internal/flashcards"
	"google.golang.org/genai"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) GenerateText(_ context.Context, _, _ string, _ *genai.GenerateContentConfig) (string, error) {
	return s.response, s.err
}

func (s *stubProvider) GenerateWithImage(_ context.Context, _, _, _ string, _ []byte) (string, error) {
	return s.response, s.err
}

func TestGenerate(t *testing.T) {
	t.Run("ParsesFlashcards", func(t *testing.T) {
		stub := &stubProvider{response: "```json\n" + `{
			"flashcards": [
				{"syllables": "AH-so", "meaning": "dog", "topic_name": "Animals", "sub_topic_name": "Pets", "word": "aso", "english_meaning": "dog"},
				{"syllables": "PU-sa", "meaning": "cat", "topic_name": "Animals", "sub_topic_name": "Pets", "word": "pusa", "english_meaning": "cat"}
			],
			"language": "tl-PH"
		}` + "\n```"}
		svc := flashcards.NewService(stub, "test-model")

		result, err := svc.Generate(context.Background(), "tl-PH")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(result.Flashcards) != 2 {
			t.Fatalf("got %d flashcards, want 2", len(result.Flashcards))
		}
		if result.Flashcards[0].Word != "aso" {
			t.Errorf("first word = %q, want aso", result.Flashcards[0].Word)
		}
		if result.Language != "tl-PH" {
			t.Errorf("language = %q, want tl-PH", result.Language)
		}
	})

	t.Run("MalformedJSONYieldsEmptySet", func(t *testing.T) {
		stub := &stubProvider{response: "not json at all"}
		svc := flashcards.NewService(stub, "test-model")

		result, err := svc.Generate(context.Background(), "es-ES")
		if err != nil {
			t.Fatalf("fallback must not be an error: %v", err)
		}
		if len(result.Flashcards) != 0 {
			t.Errorf("got %d flashcards, want 0", len(result.Flashcards))
		}
		if result.Language != "es-ES" {
			t.Errorf("language = %q, want es-ES", result.Language)
		}
	})
}

func TestValidate(t *testing.T) {
	svc := flashcards.NewService(&stubProvider{}, "test-model")

	tests := []struct {
		name     string
		word     string
		response string
		want     bool
	}{
		{"exact match", "kumusta", "kumusta", true},
		{"case insensitive", "Kumusta", "KUMUSTA", true},
		{"surrounding whitespace", "aso", "  aso  ", true},
		{"different word", "aso", "pusa", false},
		{"punctuation counts", "kumusta", "kumusta!", false},
		{"empty response", "aso", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Validate(tt.word, tt.response); got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.word, tt.response, got, tt.want)
			}
		})
	}
}
