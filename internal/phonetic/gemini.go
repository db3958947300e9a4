package phonetic

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// GeminiPhonemizer asks a Google Gemini model for IPA transcriptions
type GeminiPhonemizer struct {
	client   *genai.Client
	model    string
	language string
	breaker  *gobreaker.CircuitBreaker
}

// NewGeminiPhonemizer creates a new Gemini backend
func NewGeminiPhonemizer(config *Config) (*GeminiPhonemizer, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := config.GeminiModel
	if model == "" {
		model = DefaultConfig().GeminiModel
	}

	return &GeminiPhonemizer{
		client:   client,
		model:    model,
		language: config.Language,
		breaker:  newBreaker("gemini"),
	}, nil
}

// Phonemize requests the transcription of text
func (p *GeminiPhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	return call(p.breaker, func() (string, error) {
		cfg := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0),
		}

		resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(userPrompt(p.language, text)), cfg)
		if err != nil {
			return "", fmt.Errorf("Gemini API error: %w", err)
		}
		return cleanTranscription(resp.Text()), nil
	})
}

// Name returns the backend name
func (p *GeminiPhonemizer) Name() string {
	return "gemini"
}

// IsAvailable reports an open circuit breaker
func (p *GeminiPhonemizer) IsAvailable() error {
	if p.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("gemini: %w", gobreaker.ErrOpenState)
	}
	return nil
}
