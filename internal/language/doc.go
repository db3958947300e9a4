// Package language knows which languages the espeak-ng phonemizer supports,
// which voice to use for each of them, and detects the language of a word
// list when none is given.
package language
