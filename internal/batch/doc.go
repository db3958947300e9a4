// Package batch reads the line-based inputs of the tools: plain word lists,
// tab-separated word/transcription dictionaries and word group files.
package batch
