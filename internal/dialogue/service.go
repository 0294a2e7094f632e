package dialogue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
	"google.golang.org/genai"
)

const maxQuestions = 3

type Service interface {
	GenerateDialogue(ctx context.Context, req GenerateRequest) (*DialogueResponse, error)
	EvaluateAnswer(question Question, selectedOptionIndex int) AnswerEvaluation
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

func (s *service) GenerateDialogue(ctx context.Context, req GenerateRequest) (*DialogueResponse, error) {
	log := config.WithContext(ctx)

	temp := float32(0.7)
	topP := float32(0.8)
	topK := float32(40)
	cfg := &genai.GenerateContentConfig{Temperature: &temp, TopP: &topP, TopK: &topK}

	prompt := buildGeneratePrompt(config.LanguageName(req.Language), req.Scenario)
	raw, err := s.provider.GenerateText(ctx, s.model, prompt, cfg)
	if err != nil {
		return nil, err
	}

	var result DialogueResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &result); err != nil {
		log.WithError(err).Warn("Dialogue response was not valid JSON, returning empty dialogue")
		return &DialogueResponse{Scenario: req.Scenario, Questions: []Question{}}, nil
	}

	if result.Scenario == "" {
		result.Scenario = req.Scenario
	}
	if result.Questions == nil {
		result.Questions = []Question{}
	}
	if len(result.Questions) > maxQuestions {
		result.Questions = result.Questions[:maxQuestions]
	}

	return &result, nil
}

// EvaluateAnswer needs no model call: the generated dialogue already carries
// the correct index.
func (s *service) EvaluateAnswer(question Question, selectedOptionIndex int) AnswerEvaluation {
	correct := question.Options[question.CorrectOptionIndex].Text
	isCorrect := selectedOptionIndex == question.CorrectOptionIndex

	explanation := "Correct! Well done."
	if !isCorrect {
		explanation = fmt.Sprintf("Incorrect. The correct answer is: %s", correct)
	}

	return AnswerEvaluation{
		IsCorrect:     isCorrect,
		CorrectAnswer: correct,
		Explanation:   explanation,
	}
}
