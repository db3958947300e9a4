package phonetic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Phonemizer defines the interface for phoneme transcription backends
type Phonemizer interface {
	// Phonemize returns the transcription of text. An empty result means
	// the backend produced nothing usable.
	Phonemize(ctx context.Context, text string) (string, error)

	// Name returns the backend name
	Name() string

	// IsAvailable checks if the backend is properly configured and available
	IsAvailable() error
}

// Config holds the configuration of all phonemizer backends
type Config struct {
	Provider string // "espeak", "openai" or "gemini"
	Language string // Language code passed to the model backends
	Fallback string // Optional backend used when Provider fails

	// espeak-ng settings
	Binary string // espeak-ng executable
	Voice  string // Voice file, e.g. "gmw/en"
	ASCII  bool   // Use espeak's ascii phoneme names instead of IPA

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // Optional API endpoint override

	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "espeak",
		Binary:      "espeak-ng",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewPhonemizer creates the backend selected by config.Provider, wrapped
// with config.Fallback when one is set
func NewPhonemizer(config *Config) (Phonemizer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	primary, err := newBackend(config.Provider, config)
	if err != nil {
		return nil, err
	}
	if config.Fallback == "" || config.Fallback == config.Provider {
		return primary, nil
	}

	fallback, err := newBackend(config.Fallback, config)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return WithFallback(primary, fallback), nil
}

func newBackend(name string, config *Config) (Phonemizer, error) {
	switch name {
	case "", "espeak":
		return NewESpeakPhonemizer(config), nil
	case "openai":
		return NewOpenAIPhonemizer(config)
	case "gemini":
		return NewGeminiPhonemizer(config)
	default:
		return nil, fmt.Errorf("unknown phonemizer: %s", name)
	}
}

// fallbackPhonemizer wraps a primary backend with a fallback option
type fallbackPhonemizer struct {
	primary  Phonemizer
	fallback Phonemizer
}

// WithFallback creates a phonemizer that falls back to the second backend
// if the primary one fails
func WithFallback(primary, fallback Phonemizer) Phonemizer {
	return &fallbackPhonemizer{primary: primary, fallback: fallback}
}

func (p *fallbackPhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	res, err := p.primary.Phonemize(ctx, text)
	if err == nil {
		return res, nil
	}
	log.Warn().Err(err).
		Str("primary", p.primary.Name()).
		Str("fallback", p.fallback.Name()).
		Msg("Primary phonemizer failed, falling back")
	return p.fallback.Phonemize(ctx, text)
}

func (p *fallbackPhonemizer) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable succeeds if at least one backend is available
func (p *fallbackPhonemizer) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}
	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}
	return fmt.Errorf("both phonemizers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
