package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/snonux/similarwords/internal/dictionary"
	"codeberg.org/snonux/similarwords/internal/groups"
)

const maxLineSize = 1024 * 1024

// ParsePair parses a "WORD<TAB>PHONEMES" line. Blank lines are skipped
// silently, other lines that do not parse are skipped with a warning.
func ParsePair(line string) (word, phonemes string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if key, value, found := strings.Cut(trimmed, "\t"); found {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" || value != "" {
			return key, value, true
		}
	}
	if trimmed != "" {
		log.Warn().Str("line", trimmed).Msg("Could not parse line")
	}
	return "", "", false
}

// ReadDictionary reads a TSV word list. keep, if not nil, decides which
// words are added.
func ReadDictionary(r io.Reader, keep func(word string) bool) (*dictionary.Dictionary, error) {
	d := dictionary.New()
	err := scanLines(r, func(line string) error {
		word, phonemes, ok := ParsePair(line)
		if ok && (keep == nil || keep(word)) {
			d.Add(word, phonemes)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return d, nil
}

// ReadWords calls fn for every non-empty trimmed line of a plain word list
func ReadWords(r io.Reader, fn func(word string) error) error {
	return scanLines(r, func(line string) error {
		if line = strings.TrimSpace(line); line == "" {
			return nil
		}
		return fn(line)
	})
}

// MergeGroups feeds every line of r into b as one group. next holds the id
// of the next line and is advanced per line, so ids stay unique across
// several inputs.
func MergeGroups(b *groups.Builder[int, string], next *int, r io.Reader) error {
	err := scanLines(r, func(line string) error {
		b.Extend(*next, strings.Fields(line)...)
		*next++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read groups: %w", err)
	}
	return nil
}

func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
