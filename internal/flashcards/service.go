package flashcards

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type Service interface {
	Generate(ctx context.Context, language string) (*FlashcardResponse, error)
	Validate(word, userResponse string) bool
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

func (s *service) Generate(ctx context.Context, language string) (*FlashcardResponse, error) {
	log := config.WithContext(ctx)

	prompt := buildGeneratePrompt(config.LanguageName(language), language)
	raw, err := s.provider.GenerateText(ctx, s.model, prompt, nil)
	if err != nil {
		return nil, err
	}

	var result FlashcardResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &result); err != nil {
		log.WithError(err).Warn("Flashcard response was not valid JSON, returning empty set")
		return &FlashcardResponse{Flashcards: []FlashcardItem{}, Language: language}, nil
	}

	result.Language = language
	if result.Flashcards == nil {
		result.Flashcards = []FlashcardItem{}
	}

	log.Infof("Generated %d flashcards for %s", len(result.Flashcards), language)
	return &result, nil
}

// Validate compares a learner's answer with the card's word. Flashcards use
// plain trim+lowercase matching, stricter than the conversation normalizer:
// punctuation counts here.
func (s *service) Validate(word, userResponse string) bool {
	return strings.ToLower(strings.TrimSpace(word)) == strings.ToLower(strings.TrimSpace(userResponse))
}
