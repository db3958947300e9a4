package dictionary

import (
	"iter"
)

// Search is a forward-only cursor over a dictionary yielding the words
// similar to a query. After a match at index i the next scan starts at i+1,
// earlier entries are never revisited. An exhausted search stays exhausted.
type Search struct {
	dict        *Dictionary
	query       Word
	maxDistance int
	index       int
	done        bool
}

// Next returns the next match. The second result is false once the search
// is exhausted.
func (s *Search) Next() (*Word, bool) {
	if s.done {
		return nil, false
	}
	words := s.dict.words
	for i := s.index; i < len(words); i++ {
		if words[i].IsSimilar(s.query, s.maxDistance) {
			s.index = i + 1
			return &words[i], true
		}
	}
	s.index = len(words)
	s.done = true
	return nil, false
}

// All returns the remaining matches as a sequence. Ranging over it consumes
// the search.
func (s *Search) All() iter.Seq[*Word] {
	return func(yield func(*Word) bool) {
		for {
			w, ok := s.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

// Collect drains the search and returns the matches
func (s *Search) Collect() []*Word {
	var res []*Word
	for w := range s.All() {
		res = append(res, w)
	}
	return res
}
