package listening

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
	"google.golang.org/genai"
)

const (
	questionCount = 5
	optionCount   = 4
)

type Service interface {
	GeneratePractice(ctx context.Context, req GenerateRequest) (*ListeningResponse, error)
	EvaluateAnswer(question Question, selectedOptionIndex int) AnswerEvaluation
}

type service struct {
	provider gemini.Provider
	model    string
}

func NewService(provider gemini.Provider, model string) Service {
	return &service{provider: provider, model: model}
}

// GeneratePractice is the one generation path that propagates malformed
// model output as an error instead of degrading: a listening exercise with
// the wrong shape is unusable on the client.
func (s *service) GeneratePractice(ctx context.Context, req GenerateRequest) (*ListeningResponse, error) {
	log := config.WithContext(ctx)

	temp := float32(0.7)
	topP := float32(0.8)
	topK := float32(40)
	cfg := &genai.GenerateContentConfig{Temperature: &temp, TopP: &topP, TopK: &topK}

	prompt := buildGeneratePrompt(config.LanguageName(req.Language), req.Topic)
	raw, err := s.provider.GenerateText(ctx, s.model, prompt, cfg)
	if err != nil {
		return nil, err
	}

	var result ListeningResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &result); err != nil {
		log.WithError(err).Error("Failed to parse listening practice JSON")
		return nil, fmt.Errorf("failed to parse listening practice: %w", err)
	}

	if len(result.Questions) != questionCount {
		return nil, fmt.Errorf("expected exactly %d questions, got %d", questionCount, len(result.Questions))
	}
	for i, q := range result.Questions {
		if len(q.Options) != optionCount {
			return nil, fmt.Errorf("question %d must have exactly %d options, got %d", i+1, optionCount, len(q.Options))
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= optionCount {
			return nil, fmt.Errorf("question %d has correct_option_index out of range: %d", i+1, q.CorrectOptionIndex)
		}
	}

	return &result, nil
}

func (s *service) EvaluateAnswer(question Question, selectedOptionIndex int) AnswerEvaluation {
	correct := question.Options[question.CorrectOptionIndex].Text
	isCorrect := selectedOptionIndex == question.CorrectOptionIndex

	explanation := "Correct! Well done."
	if !isCorrect {
		selected := question.Options[selectedOptionIndex].Text
		explanation = fmt.Sprintf("Incorrect. You selected '%s', but the correct answer is '%s'.", selected, correct)
	}

	return AnswerEvaluation{
		IsCorrect:     isCorrect,
		CorrectAnswer: correct,
		Explanation:   explanation,
	}
}
