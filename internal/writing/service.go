package writing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type Service interface {
	GeneratePrompt(ctx context.Context) (*PromptResponse, error)
	EvaluateResponse(ctx context.Context, req EvaluationRequest) (*EvaluationResponse, error)
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

func (s *service) GeneratePrompt(ctx context.Context) (*PromptResponse, error) {
	raw, err := s.provider.GenerateText(ctx, s.model, promptGeneration, nil)
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).Info("Generated writing prompt")

	return &PromptResponse{Prompt: strings.TrimSpace(raw)}, nil
}

func (s *service) EvaluateResponse(ctx context.Context, req EvaluationRequest) (*EvaluationResponse, error) {
	log := config.WithContext(ctx)
	languageName := config.LanguageName(req.Language)

	raw, err := s.provider.GenerateText(ctx, s.model, buildEvaluationPrompt(languageName, req.Prompt, req.UserResponse), nil)
	if err != nil {
		return nil, err
	}

	var result EvaluationResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &result); err != nil {
		log.WithError(err).Warn("Failed to parse evaluation response, using fallback")
		return &EvaluationResponse{
			Rating: "good",
			Feedback: []string{
				"Response received. Keep practicing!",
				"Try to write more detailed responses.",
			},
		}, nil
	}

	if result.Rating == "" {
		result.Rating = "good"
	}
	if len(result.Feedback) == 0 {
		result.Feedback = []string{"Keep practicing!"}
	}

	log.WithField("rating", result.Rating).Info("Evaluated writing response")

	return &result, nil
}
