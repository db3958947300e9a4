// Package phoneme normalizes phonemic transcriptions so that words whose
// pronunciations differ only by stress, length or closely related allophones
// compare equal.
package phoneme
