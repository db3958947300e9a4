package dictionary

import (
	"iter"
)

// Dictionary is an insertion-ordered list of words. Duplicates are kept.
type Dictionary struct {
	words []Word
}

// New creates an empty dictionary
func New() *Dictionary {
	return &Dictionary{}
}

// FromEntries creates a dictionary holding the given words in order
func FromEntries(entries ...Word) *Dictionary {
	d := New()
	d.Extend(entries...)
	return d
}

// Add appends a word
func (d *Dictionary) Add(text, phonemes string) {
	d.words = append(d.words, NewWord(text, phonemes))
}

// Extend appends all given words
func (d *Dictionary) Extend(entries ...Word) {
	d.words = append(d.words, entries...)
}

// Len returns the number of words
func (d *Dictionary) Len() int {
	return len(d.words)
}

// At returns the word at index i
func (d *Dictionary) At(i int) Word {
	return d.words[i]
}

// Words returns the backing slice. Callers must not modify it.
func (d *Dictionary) Words() []Word {
	return d.words
}

// All iterates over the words in insertion order
func (d *Dictionary) All() iter.Seq2[int, Word] {
	return func(yield func(int, Word) bool) {
		for i, w := range d.words {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Normalize normalizes the transcription of every word in place
func (d *Dictionary) Normalize() {
	for i := range d.words {
		d.words[i].NormalizePhonemes()
	}
}

// FindSimilar starts a new search for words similar to query. See Search.
func (d *Dictionary) FindSimilar(query Word, maxDistance int) *Search {
	return &Search{
		dict:        d,
		query:       query,
		maxDistance: maxDistance,
	}
}
