// Package disjoint implements a disjoint-set forest (union-find) over
// arbitrary comparable keys. Keys are mapped to compact integer ids and the
// forest itself is a parent/rank array with path compression and union by
// rank.
package disjoint

// Sets is a disjoint-set forest. The zero value is not usable, use New.
type Sets[K comparable] struct {
	ids    map[K]int
	keys   []K
	parent []int
	rank   []uint8
	count  int
}

// New creates an empty forest
func New[K comparable]() *Sets[K] {
	return &Sets[K]{ids: make(map[K]int)}
}

// MakeSet adds k as a singleton set. It returns false if k is already known.
func (s *Sets[K]) MakeSet(k K) bool {
	if _, ok := s.ids[k]; ok {
		return false
	}
	id := len(s.keys)
	s.ids[k] = id
	s.keys = append(s.keys, k)
	s.parent = append(s.parent, id)
	s.rank = append(s.rank, 0)
	s.count++
	return true
}

// Contains reports whether k has a node in the forest
func (s *Sets[K]) Contains(k K) bool {
	_, ok := s.ids[k]
	return ok
}

// Len returns the number of keys in the forest
func (s *Sets[K]) Len() int {
	return len(s.keys)
}

// Count returns the number of disjoint sets
func (s *Sets[K]) Count() int {
	return s.count
}

// Find returns the representative key of the set containing k.
// The second result is false when k has no node.
func (s *Sets[K]) Find(k K) (K, bool) {
	id, ok := s.ids[k]
	if !ok {
		var zero K
		return zero, false
	}
	return s.keys[s.find(id)], true
}

// Union merges the sets containing a and b. It returns false if either key
// is unknown or both already share a set.
func (s *Sets[K]) Union(a, b K) bool {
	ia, ok := s.ids[a]
	if !ok {
		return false
	}
	ib, ok := s.ids[b]
	if !ok {
		return false
	}

	ra, rb := s.find(ia), s.find(ib)
	if ra == rb {
		return false
	}

	switch {
	case s.rank[ra] < s.rank[rb]:
		s.parent[ra] = rb
	case s.rank[ra] > s.rank[rb]:
		s.parent[rb] = ra
	default:
		s.parent[rb] = ra
		s.rank[ra]++
	}
	s.count--
	return true
}

func (s *Sets[K]) find(id int) int {
	root := id
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[id] != root {
		next := s.parent[id]
		s.parent[id] = root
		id = next
	}
	return root
}
