package language

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBinary is the espeak-ng executable looked up in PATH
const DefaultBinary = "espeak-ng"

// otherLanguage matches entries like "(en 10)" in the last column of
// "espeak-ng --voices"
var otherLanguage = regexp.MustCompile(`\(([^\s()]+)\s+(-?\d+)\)`)

// ParseVoices parses the output of "espeak-ng --voices". Every voice is
// registered under its own language and under each of its other languages.
func ParseVoices(r io.Reader) (*Languages, error) {
	ls := NewLanguages()
	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		line := scanner.Text()
		if header {
			header = false
			if strings.HasPrefix(strings.TrimSpace(line), "Pty") {
				continue
			}
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		priority, err := strconv.Atoi(fields[0])
		if err != nil {
			log.Debug().Str("line", line).Msg("Skipping voice line")
			continue
		}

		voice := Voice{File: fields[4], Name: fields[3], Priority: priority}
		ls.GetOrCreate(fields[1]).AddVoice(voice)

		rest := strings.Join(fields[5:], " ")
		for _, m := range otherLanguage.FindAllStringSubmatch(rest, -1) {
			p, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			ls.GetOrCreate(m[1]).AddVoice(Voice{File: voice.File, Name: voice.Name, Priority: p})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read voice list: %w", err)
	}
	return ls, nil
}

// FromESpeak lists the voices of the given espeak-ng binary
func FromESpeak(ctx context.Context, binary string) (*Languages, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	out, err := exec.CommandContext(ctx, binary, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("%s --voices failed: %w", binary, err)
	}
	return ParseVoices(strings.NewReader(string(out)))
}

// Supported returns the languages espeak-ng supports. Failures are logged
// and yield an empty registry.
func Supported(ctx context.Context, binary string) *Languages {
	ls, err := FromESpeak(ctx, binary)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to query espeak-ng voices")
		return NewLanguages()
	}
	if ls.IsEmpty() {
		log.Warn().Msg("No supported languages found")
	}
	return ls
}
