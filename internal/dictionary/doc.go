// Package dictionary holds words paired with their phonemic transcription
// and provides approximate (Levenshtein) search over them.
package dictionary
