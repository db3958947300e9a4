package models

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL uses the OpenAI
// endpoint.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// IsChatModel reports whether id names a chat completion model
func IsChatModel(id string) bool {
	if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
		strings.Contains(id, "realtime") || strings.Contains(id, "transcribe") {
		return false
	}
	return strings.HasPrefix(id, "gpt") || strings.HasPrefix(id, "o1") ||
		strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4") ||
		strings.Contains(id, "chat")
}

// ChatModels returns the sorted ids of the available chat models
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .similarwords.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := lo.FilterMap(models.Models, func(m openai.Model, _ int) (string, bool) {
		return m.ID, IsChatModel(m.ID)
	})
	slices.Sort(ids)
	return ids, nil
}

// ListChatModels prints the chat models usable with --openai-model
func (l *Lister) ListChatModels(ctx context.Context, w io.Writer) error {
	ids, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available OpenAI chat models (for --provider openai):")
	if len(ids) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
	return nil
}
