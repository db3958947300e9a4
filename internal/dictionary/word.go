package dictionary

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"codeberg.org/snonux/similarwords/internal/phoneme"
)

// Word pairs a surface form with its phonemic transcription
type Word struct {
	Text     string
	Phonemes string
}

// NewWord creates a word
func NewWord(text, phonemes string) Word {
	return Word{Text: text, Phonemes: phonemes}
}

// IsSimilar reports whether the transcriptions of w and other are within
// maxDistance edits of each other.
func (w Word) IsSimilar(other Word, maxDistance int) bool {
	l1 := utf8.RuneCountInString(w.Phonemes)
	l2 := utf8.RuneCountInString(other.Phonemes)
	if absDiff(l1, l2) > maxDistance {
		return false
	}
	return levenshtein.ComputeDistance(w.Phonemes, other.Phonemes) <= maxDistance
}

// NormalizePhonemes rewrites the transcription in normalized form
func (w *Word) NormalizePhonemes() {
	w.Phonemes = phoneme.Normalize(w.Phonemes)
}

// String returns the surface form
func (w Word) String() string {
	return w.Text
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
