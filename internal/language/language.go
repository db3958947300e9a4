package language

import (
	"fmt"
	"sort"
)

// Voice is an espeak-ng voice and its priority for one language
type Voice struct {
	File     string
	Name     string
	Priority int
}

// Language is a language name with its voices, highest priority first
type Language struct {
	Name   string
	Voices []Voice
}

// NoVoiceError is returned when no voice is known for a language
type NoVoiceError struct {
	Language string
}

func (e *NoVoiceError) Error() string {
	return fmt.Sprintf("no espeak voice found for language %q", e.Language)
}

// NewLanguage creates a language without voices
func NewLanguage(name string) *Language {
	return &Language{Name: name}
}

// AddVoice inserts v keeping the voices ordered by descending priority.
// Voices with equal priority keep insertion order.
func (l *Language) AddVoice(v Voice) {
	i := sort.Search(len(l.Voices), func(i int) bool {
		return l.Voices[i].Priority < v.Priority
	})
	l.Voices = append(l.Voices, Voice{})
	copy(l.Voices[i+1:], l.Voices[i:])
	l.Voices[i] = v
}

// DefaultVoice returns the highest priority voice
func (l *Language) DefaultVoice() (Voice, bool) {
	if len(l.Voices) == 0 {
		return Voice{}, false
	}
	return l.Voices[0], true
}

// Is reports whether the language has the given name
func (l *Language) Is(name string) bool {
	return l.Name == name
}

// Languages is an ordered registry of languages
type Languages struct {
	languages []*Language
}

// NewLanguages creates an empty registry
func NewLanguages() *Languages {
	return &Languages{}
}

// Index returns the position of the named language or -1
func (ls *Languages) Index(name string) int {
	for i, l := range ls.languages {
		if l.Is(name) {
			return i
		}
	}
	return -1
}

// Get returns the named language
func (ls *Languages) Get(name string) (*Language, bool) {
	if i := ls.Index(name); i >= 0 {
		return ls.languages[i], true
	}
	return nil, false
}

// GetOrCreate returns the named language, appending it if it is new
func (ls *Languages) GetOrCreate(name string) *Language {
	if l, ok := ls.Get(name); ok {
		return l
	}
	l := NewLanguage(name)
	ls.languages = append(ls.languages, l)
	return l
}

// DefaultVoice returns the default voice of the named language
func (ls *Languages) DefaultVoice(name string) (Voice, error) {
	if l, ok := ls.Get(name); ok {
		if v, ok := l.DefaultVoice(); ok {
			return v, nil
		}
	}
	return Voice{}, &NoVoiceError{Language: name}
}

// All returns the languages in registration order
func (ls *Languages) All() []*Language {
	return ls.languages
}

// Len returns the number of languages
func (ls *Languages) Len() int {
	return len(ls.languages)
}

// IsEmpty reports whether no language is registered
func (ls *Languages) IsEmpty() bool {
	return len(ls.languages) == 0
}
