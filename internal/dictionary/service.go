package dictionary

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type Service interface {
	SearchWord(ctx context.Context, word, language string) (*TextSearchResponse, error)
	DetectImage(ctx context.Context, filename string, data []byte, language string) (*TextSearchResponse, error)
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

func (s *service) SearchWord(ctx context.Context, word, language string) (*TextSearchResponse, error) {
	log := config.WithContext(ctx)

	prompt := buildSearchPrompt(config.LanguageName(language), language, word)
	raw, err := s.provider.GenerateText(ctx, s.model, prompt, nil)
	if err != nil {
		return nil, err
	}

	var result TextSearchResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &result); err != nil {
		log.WithError(err).Warn("Dictionary response was not valid JSON, returning fallback")
		return &TextSearchResponse{
			Word:            word,
			Syllables:       word,
			Meanings:        []string{"Unable to find meaning"},
			EnglishSentence: "Please try again.",
			Language:        language,
		}, nil
	}

	if result.Word == noWordsFound {
		return &TextSearchResponse{
			Word:     noWordsFound,
			Meanings: []string{},
			Language: language,
		}, nil
	}

	if result.Word == "" {
		result.Word = word
	}
	if result.Syllables == "" {
		result.Syllables = word
	}
	if len(result.Meanings) == 0 {
		result.Meanings = []string{"No meaning found"}
	}
	result.Language = language

	return &result, nil
}

func (s *service) DetectImage(ctx context.Context, filename string, data []byte, language string) (*TextSearchResponse, error) {
	prompt := buildDetectPrompt(config.LanguageName(language))

	raw, err := s.provider.GenerateWithImage(ctx, s.model, prompt, mimeFromFilename(filename), data)
	if err != nil {
		return nil, err
	}

	word := strings.TrimSpace(raw)
	return s.SearchWord(ctx, word, language)
}

func mimeFromFilename(name string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".png"):
		return "image/png"
	case strings.HasSuffix(strings.ToLower(name), ".webp"):
		return "image/webp"
	case strings.HasSuffix(strings.ToLower(name), ".gif"):
		return "image/gif"
	default:
		// jpg, jpeg and anything unrecognized.
		return "image/jpeg"
	}
}
