package phoneme

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Spacing modifier letters and combining diacritics (U+02B0..U+036F). They
// mark stress, length, palatalization etc. and never change the phoneme.
const (
	modifiersFirst = 0x02B0
	modifiersEnd   = 0x0370
)

// allophones lists every symbol that collapses onto a canonical one.
// Canonical symbols map onto themselves, which keeps Normalize idempotent.
var allophones = map[rune]string{
	'a': "aäɐɑʌ",
	'e': "eæɛœɜ",
	'i': "iɨɪ",
	'o': "oɔɒɵʊ",
	'u': "uʉ",
	'y': "yʏø",
	'ɘ': "ɘɤɞəɯ",

	'b': "bʙ",
	'd': "dɖɟ",
	'f': "fɸ",
	'g': "gɢ",
	'j': "jʎʝ",
	'k': "kq",
	'l': "lɭɫʟ",
	'm': "mɱ",
	'n': "nɳɲŋɴ",
	'r': "rɾɹɽɻʀʁ",
	't': "tʈc",
	'v': "vβʋ",
	'x': "xɣχħhɦ",
	'θ': "θð",
	'ʃ': "ʃʂç",
	'ʒ': "ʒʐ",
	'ɰ': "ɰʕ",
}

var canonical = buildCanonical()

func buildCanonical() map[rune]rune {
	m := make(map[rune]rune)
	for to, from := range allophones {
		for _, r := range from {
			m[r] = to
		}
	}
	return m
}

// IsModifier reports whether r is an IPA modifier or combining diacritic
func IsModifier(r rune) bool {
	return r >= modifiersFirst && r < modifiersEnd
}

// Canonical returns the representative symbol for r
func Canonical(r rune) rune {
	if c, ok := canonical[r]; ok {
		return c
	}
	return r
}

func dropped(r rune) bool {
	return IsModifier(r) || unicode.IsSpace(r)
}

// Normalize strips modifiers and whitespace, folds allophones onto their
// canonical symbol and collapses runs of the same symbol.
func Normalize(phonemes string) string {
	fold := transform.Chain(runes.Remove(runes.Predicate(dropped)), runes.Map(Canonical))
	folded, _, _ := transform.String(fold, phonemes)
	return squeeze(folded)
}

func squeeze(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev, first := rune(0), true
	for _, r := range s {
		if !first && r == prev {
			continue
		}
		b.WriteRune(r)
		prev, first = r, false
	}
	return b.String()
}
