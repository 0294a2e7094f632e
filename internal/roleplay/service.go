package roleplay

import (
	"context"
	"encoding/json"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type Service interface {
	GenerateScenario(ctx context.Context, language string) (*ScenarioResponse, error)
	EvaluateResponse(ctx context.Context, req EvaluationRequest) (*EvaluationResponse, error)
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

func (s *service) GenerateScenario(ctx context.Context, language string) (*ScenarioResponse, error) {
	log := config.WithContext(ctx)

	prompt := buildScenarioPrompt(config.LanguageName(language), language)
	raw, err := s.provider.GenerateText(ctx, s.model, prompt, nil)
	if err != nil {
		return nil, err
	}

	var result ScenarioResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &result); err != nil {
		log.WithError(err).Warn("Scenario response was not valid JSON, returning fallback")
		return &ScenarioResponse{
			Scenario:        "You are meeting a friend. They ask how you are doing.",
			QuestionEnglish: "How are you?",
			Language:        language,
		}, nil
	}

	result.Language = language
	return &result, nil
}

func (s *service) EvaluateResponse(ctx context.Context, req EvaluationRequest) (*EvaluationResponse, error) {
	log := config.WithContext(ctx)

	prompt := buildEvaluationPrompt(config.LanguageName(req.Language), req)
	raw, err := s.provider.GenerateText(ctx, s.model, prompt, nil)
	if err != nil {
		return nil, err
	}

	var result EvaluationResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &result); err != nil {
		// Assume no improvement needed when the verdict is unreadable.
		log.WithError(err).Warn("Evaluation response was not valid JSON, returning fallback")
		return &EvaluationResponse{}, nil
	}

	return &result, nil
}
