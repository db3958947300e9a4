package phonetic

import (
	"context"
	"sync"
)

// cachedPhonemizer remembers transcriptions by input text
type cachedPhonemizer struct {
	Phonemizer

	mu    sync.Mutex
	cache map[string]string
}

// WithCache wraps p so that repeated words are transcribed once. Failed
// transcriptions are not cached.
func WithCache(p Phonemizer) Phonemizer {
	return &cachedPhonemizer{Phonemizer: p, cache: make(map[string]string)}
}

func (c *cachedPhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	res, ok := c.cache[text]
	c.mu.Unlock()
	if ok {
		return res, nil
	}

	res, err := c.Phonemizer.Phonemize(ctx, text)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.cache[text] = res
	c.mu.Unlock()
	return res, nil
}
