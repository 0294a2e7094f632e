package story

import (
	"context"
	"strings"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
	"google.golang.org/genai"
)

// maxStoryLength caps each story at roughly 7-8 formatted lines.
const maxStoryLength = 800

type Service interface {
	GenerateStory(ctx context.Context, req GenerateRequest) (*StoryResponse, error)
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

func (s *service) GenerateStory(ctx context.Context, req GenerateRequest) (*StoryResponse, error) {
	log := config.WithContext(ctx)
	languageName := config.LanguageName(req.Language)

	storyCfg := generationConfig(0.8, 0.9, 50)
	raw, err := s.provider.GenerateText(ctx, s.model, buildStoryPrompt(languageName, req.Topic), storyCfg)
	if err != nil {
		return nil, err
	}
	storyTarget := truncate(flatten(raw))

	// Lower temperature keeps the translation close to the original.
	translationCfg := generationConfig(0.3, 0.8, 40)
	english, err := s.provider.GenerateText(ctx, s.model, buildTranslationPrompt(languageName, storyTarget), translationCfg)
	if err != nil {
		return nil, err
	}
	storyEnglish := truncate(flatten(english))

	log.WithField("topic", req.Topic).Info("Generated story")

	return &StoryResponse{
		Topic:               req.Topic,
		StoryTargetLanguage: storyTarget,
		StoryEnglish:        storyEnglish,
		Language:            req.Language,
	}, nil
}

func generationConfig(temp, topP, topK float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{Temperature: &temp, TopP: &topP, TopK: &topK}
}

// flatten collapses the story into a single paragraph: line breaks become
// spaces and runs of spaces shrink to one.
func flatten(text string) string {
	out := strings.TrimSpace(text)
	out = strings.ReplaceAll(out, "\r", " ")
	out = strings.ReplaceAll(out, "\n", " ")
	return strings.Join(strings.Fields(out), " ")
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) > maxStoryLength {
		return string(runes[:maxStoryLength]) + "..."
	}
	return text
}
