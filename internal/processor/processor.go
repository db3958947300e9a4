package processor

import (
	"context"
	"io"
	"os"

	"codeberg.org/snonux/similarwords/internal/cli"
	"codeberg.org/snonux/similarwords/internal/language"
	"codeberg.org/snonux/similarwords/internal/phonetic"
)

// Processor runs the tools on the configured flags
type Processor struct {
	flags  *cli.Flags
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	newPhonemizer func(*phonetic.Config) (phonetic.Phonemizer, error)
	languages     func(context.Context) *language.Languages
}

// NewProcessor creates a processor reading and writing the standard streams
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:         flags,
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		newPhonemizer: phonetic.NewPhonemizer,
		languages: func(ctx context.Context) *language.Languages {
			return language.Supported(ctx, language.DefaultBinary)
		},
	}
}

// phonemizerConfig builds the backend configuration for voice and lang
func (p *Processor) phonemizerConfig(voice, lang string) *phonetic.Config {
	config := phonetic.DefaultConfig()
	config.Provider = p.flags.Provider
	config.Fallback = p.flags.Fallback
	config.Voice = voice
	config.Language = lang
	config.ASCII = p.flags.ASCII
	config.OpenAIKey = cli.GetOpenAIKey()
	config.GeminiKey = cli.GetGeminiKey()
	if p.flags.OpenAIModel != "" {
		config.OpenAIModel = p.flags.OpenAIModel
	}
	if p.flags.GeminiModel != "" {
		config.GeminiModel = p.flags.GeminiModel
	}
	return config
}

// usesESpeak reports whether espeak-ng takes part in transcription and
// therefore needs a voice
func (p *Processor) usesESpeak() bool {
	return isESpeak(p.flags.Provider) || (p.flags.Fallback != "" && isESpeak(p.flags.Fallback))
}

func isESpeak(provider string) bool {
	return provider == "" || provider == "espeak"
}
