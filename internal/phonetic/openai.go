package phonetic

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIPhonemizer asks an OpenAI chat model for IPA transcriptions
type OpenAIPhonemizer struct {
	client   *openai.Client
	model    string
	language string
	breaker  *gobreaker.CircuitBreaker
}

// NewOpenAIPhonemizer creates a new OpenAI backend
func NewOpenAIPhonemizer(config *Config) (*OpenAIPhonemizer, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}
	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIPhonemizer{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		language: config.Language,
		breaker:  newBreaker("openai"),
	}, nil
}

// Phonemize requests the transcription of text
func (p *OpenAIPhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	return call(p.breaker, func() (string, error) {
		req := openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt(p.language, text)},
			},
			Temperature: 0,
			MaxTokens:   100,
		}

		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no response from OpenAI")
		}
		return cleanTranscription(resp.Choices[0].Message.Content), nil
	})
}

// Name returns the backend name
func (p *OpenAIPhonemizer) Name() string {
	return "openai"
}

// IsAvailable reports an open circuit breaker
func (p *OpenAIPhonemizer) IsAvailable() error {
	if p.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("openai: %w", gobreaker.ErrOpenState)
	}
	return nil
}
