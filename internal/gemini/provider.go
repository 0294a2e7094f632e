package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/lingokit/lingua-api/internal/config"
	"google.golang.org/genai"
)

// Provider is the single entry point to the generative model. Feature
// services depend on this interface so tests can substitute canned output.
type Provider interface {
	GenerateText(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)
	GenerateWithImage(ctx context.Context, model, prompt, mimeType string, data []byte) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewProvider(ctx context.Context, apiKey string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) GenerateText(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		log.WithError(err).Error("Failed to generate content")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[GEMINI] Raw model response:\n%s", raw)

	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}

func (p *geminiProvider) GenerateWithImage(ctx context.Context, model, prompt, mimeType string, data []byte) (string, error) {
	log := config.WithContext(ctx)

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
		},
	}}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		log.WithError(err).Error("Failed to generate content from image")
		return "", fmt.Errorf("failed to generate content from image: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}
