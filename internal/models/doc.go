// Package models lists the OpenAI chat models that can serve as a
// phonemizer backend for the API key in use.
package models
