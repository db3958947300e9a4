package phonetic

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockPhonemizer implements Phonemizer for testing
type mockPhonemizer struct {
	name         string
	result       string
	phonemizeErr error
	availableErr error
	calls        int
}

func (m *mockPhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	m.calls++
	return m.result, m.phonemizeErr
}

func (m *mockPhonemizer) Name() string {
	return m.name
}

func (m *mockPhonemizer) IsAvailable() error {
	return m.availableErr
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "espeak" {
		t.Errorf("Expected provider 'espeak', got '%s'", config.Provider)
	}
	if config.Binary != "espeak-ng" {
		t.Errorf("Expected binary 'espeak-ng', got '%s'", config.Binary)
	}
	if config.OpenAIModel == "" || config.GeminiModel == "" {
		t.Error("Expected default model names")
	}
}

func TestNewPhonemizer(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		errMsg   string
	}{
		{
			name:     "nil config uses espeak",
			config:   nil,
			wantName: "espeak-ng",
		},
		{
			name:     "empty provider uses espeak",
			config:   &Config{},
			wantName: "espeak-ng",
		},
		{
			name:   "openai without key",
			config: &Config{Provider: "openai"},
			errMsg: "OpenAI API key is required",
		},
		{
			name:   "gemini without key",
			config: &Config{Provider: "gemini"},
			errMsg: "Gemini API key is required",
		},
		{
			name:   "unknown provider",
			config: &Config{Provider: "unknown"},
			errMsg: "unknown phonemizer: unknown",
		},
		{
			name:     "openai with key",
			config:   &Config{Provider: "openai", OpenAIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:     "openai with espeak fallback",
			config:   &Config{Provider: "openai", OpenAIKey: "test-key", Fallback: "espeak"},
			wantName: "openai (fallback: espeak-ng)",
		},
		{
			name:     "fallback equal to provider is ignored",
			config:   &Config{Provider: "espeak", Fallback: "espeak"},
			wantName: "espeak-ng",
		},
		{
			name:   "invalid fallback",
			config: &Config{Provider: "espeak", Fallback: "openai"},
			errMsg: "fallback: OpenAI API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhonemizer(tt.config)
			if tt.errMsg != "" {
				if err == nil {
					t.Fatalf("Expected error '%s', got nil", tt.errMsg)
				}
				if err.Error() != tt.errMsg {
					t.Errorf("Expected error '%s', got '%s'", tt.errMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Expected name '%s', got '%s'", tt.wantName, p.Name())
			}
		})
	}
}

func TestWithFallback(t *testing.T) {
	tests := []struct {
		name          string
		primaryErr    error
		fallbackErr   error
		want          string
		wantErr       bool
		fallbackCalls int
	}{
		{
			name:          "primary succeeds",
			want:          "primary",
			fallbackCalls: 0,
		},
		{
			name:          "primary fails, fallback succeeds",
			primaryErr:    errors.New("primary failed"),
			want:          "fallback",
			fallbackCalls: 1,
		},
		{
			name:          "both fail",
			primaryErr:    errors.New("primary failed"),
			fallbackErr:   errors.New("fallback failed"),
			wantErr:       true,
			fallbackCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockPhonemizer{name: "primary", result: "primary", phonemizeErr: tt.primaryErr}
			fallback := &mockPhonemizer{name: "fallback", result: "fallback", phonemizeErr: tt.fallbackErr}

			got, err := WithFallback(primary, fallback).Phonemize(context.Background(), "word")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Phonemize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Phonemize() = %q, want %q", got, tt.want)
			}
			if primary.calls != 1 {
				t.Errorf("Expected 1 primary call, got %d", primary.calls)
			}
			if fallback.calls != tt.fallbackCalls {
				t.Errorf("Expected %d fallback calls, got %d", tt.fallbackCalls, fallback.calls)
			}
		})
	}
}

func TestWithFallbackIsAvailable(t *testing.T) {
	down := errors.New("down")

	tests := []struct {
		name        string
		primaryErr  error
		fallbackErr error
		wantErr     bool
	}{
		{name: "both available"},
		{name: "primary available", fallbackErr: down},
		{name: "fallback available", primaryErr: down},
		{name: "none available", primaryErr: down, fallbackErr: down, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := WithFallback(
				&mockPhonemizer{name: "a", availableErr: tt.primaryErr},
				&mockPhonemizer{name: "b", availableErr: tt.fallbackErr},
			)
			err := p.IsAvailable()
			if (err != nil) != tt.wantErr {
				t.Fatalf("IsAvailable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "both phonemizers unavailable") {
				t.Errorf("Unexpected error message: %v", err)
			}
		})
	}
}

func TestCleanTranscription(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tɛst", "tɛst"},
		{"/tɛst/", "tɛst"},
		{"[ˈhɛloʊ ˈwɜrld]", "ˈhɛloʊ ˈwɜrld"},
		{"  `tɛst`  \n", "tɛst"},
		{"tɛst\nThis is the transcription.", "tɛst"},
		{"ab   cd", "ab cd"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanTranscription(tt.input); got != tt.want {
			t.Errorf("cleanTranscription(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUserPrompt(t *testing.T) {
	if got := userPrompt("", "cat"); got != "Transcribe: cat" {
		t.Errorf("userPrompt() = %q", got)
	}
	if got := userPrompt("de", "Katze"); got != "Transcribe (language de): Katze" {
		t.Errorf("userPrompt() = %q", got)
	}
}
