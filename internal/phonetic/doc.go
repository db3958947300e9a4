// Package phonetic turns words into phoneme transcriptions using espeak-ng
// or a language model.
package phonetic
