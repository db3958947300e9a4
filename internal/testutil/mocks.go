package testutil

import (
	"context"
	"sync"
)

// MockPhonemizer is a phonetic.Phonemizer returning canned transcriptions
type MockPhonemizer struct {
	// Transcriptions maps input text to its transcription. Unknown words
	// yield an empty transcription.
	Transcriptions map[string]string
	PhonemizeErr   error
	AvailableErr   error

	mu    sync.Mutex
	calls []string
}

// Phonemize records text and returns its canned transcription
func (m *MockPhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.PhonemizeErr != nil {
		return "", m.PhonemizeErr
	}
	return m.Transcriptions[text], nil
}

// Name returns the mock name
func (m *MockPhonemizer) Name() string {
	return "mock"
}

// IsAvailable returns AvailableErr
func (m *MockPhonemizer) IsAvailable() error {
	return m.AvailableErr
}

// Calls returns the texts passed to Phonemize in order
func (m *MockPhonemizer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
