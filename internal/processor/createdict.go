package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"codeberg.org/snonux/similarwords/internal/batch"
	"codeberg.org/snonux/similarwords/internal/cli"
	"codeberg.org/snonux/similarwords/internal/language"
	"codeberg.org/snonux/similarwords/internal/models"
	"codeberg.org/snonux/similarwords/internal/phonetic"
)

// ListLanguages prints the supported languages with their voices
func (p *Processor) ListLanguages(ctx context.Context) error {
	languages := p.languages(ctx)
	width := lo.Max(append(lo.FlatMap(languages.All(), func(l *language.Language, _ int) []int {
		return lo.Map(l.Voices, func(v language.Voice, _ int) int { return len(v.File) })
	}), 8))

	w := bufio.NewWriter(p.stdout)
	fmt.Fprintln(w, "Languages:")
	for _, l := range languages.All() {
		fmt.Fprintf(w, "\nName:   %s\n", l.Name)
		fmt.Fprintln(w, "Voices:")
		fmt.Fprintf(w, "%*s %*s\n", width, "Filename", width, "Priority")
		for _, v := range l.Voices {
			fmt.Fprintf(w, "%*s %*d\n", width, v.File, width, v.Priority)
		}
	}
	return w.Flush()
}

// ListModels prints the OpenAI chat models available for the openai
// phonemizer
func (p *Processor) ListModels(ctx context.Context) error {
	return models.NewLister(cli.GetOpenAIKey(), "").ListChatModels(ctx, p.stdout)
}

// CreateDictionary transcribes the word list in input and writes
// "WORD<TAB>PHONEMES" lines to the configured output
func (p *Processor) CreateDictionary(ctx context.Context, input string) error {
	in, err := p.openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	r := bufio.NewReader(in)
	voice, lang, consumed, err := p.resolveVoice(ctx, r)
	if err != nil {
		return err
	}

	phonemizer, err := p.newPhonemizer(p.phonemizerConfig(voice, lang))
	if err != nil {
		return err
	}
	if err := phonemizer.IsAvailable(); err != nil {
		return err
	}
	phonemizer = phonetic.WithCache(phonemizer)
	log.Debug().Str("phonemizer", phonemizer.Name()).Str("voice", voice).Msg("Transcribing")

	out, err := p.openOutput(p.flags.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	err = batch.ReadWords(io.MultiReader(strings.NewReader(consumed), r), func(word string) error {
		phonemes, err := phonemizer.Phonemize(ctx, word)
		if err != nil {
			return fmt.Errorf("failed to transcribe %q: %w", word, err)
		}
		if phonemes == "" {
			log.Warn().Str("word", word).Msg("No phonemes found")
			return nil
		}
		_, err = fmt.Fprintf(w, "%s\t%s\n", word, phonemes)
		return err
	})
	if err != nil {
		return err
	}
	return w.Flush()
}

// resolveVoice picks the espeak voice and language. Text read from r for
// language detection is returned so that it can be transcribed too.
func (p *Processor) resolveVoice(ctx context.Context, r *bufio.Reader) (voice, lang, consumed string, err error) {
	voice, lang = p.flags.Voice, p.flags.Language
	if voice != "" && (lang != "" || !p.usesModel()) {
		return voice, lang, "", nil
	}

	if lang == "" {
		log.Info().Msg("Detecting language...")
		detected, err := language.DetectReader(r)
		switch {
		case errors.Is(err, language.ErrInsufficientData) && !p.usesESpeak():
			log.Warn().Err(err).Msg("Continuing without language")
			return voice, "", detected.Consumed, nil
		case err != nil:
			return "", "", "", err
		}
		lang, consumed = detected.Language, detected.Consumed
		log.Info().Str("language", lang).Msg("Detected language")
	}

	if voice == "" && p.usesESpeak() {
		v, err := p.languages(ctx).DefaultVoice(lang)
		if err != nil {
			return "", "", "", err
		}
		voice = v.File
	}
	return voice, lang, consumed, nil
}

// usesModel reports whether a language model backend takes part in
// transcription
func (p *Processor) usesModel() bool {
	return !isESpeak(p.flags.Provider) || (p.flags.Fallback != "" && !isESpeak(p.flags.Fallback))
}
