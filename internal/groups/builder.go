package groups

import (
	"fmt"

	"codeberg.org/snonux/similarwords/internal/disjoint"
)

// Builder merges observed groups into their transitive closure. Each call
// to Extend records that the given members belong together under group id;
// members seen under several ids join those ids into one component.
type Builder[K, V comparable] struct {
	members map[V]K
	sets    *disjoint.Sets[K]
}

// NewBuilder creates an empty builder
func NewBuilder[K, V comparable]() *Builder[K, V] {
	return &Builder[K, V]{
		members: make(map[V]K),
		sets:    disjoint.New[K](),
	}
}

// Add records member under group id. If member was recorded earlier under
// another id the two groups are merged.
func (b *Builder[K, V]) Add(id K, member V) {
	b.sets.MakeSet(id)
	prev, seen := b.members[member]
	b.members[member] = id
	if seen && prev != id {
		b.sets.Union(b.root(prev), b.root(id))
	}
}

// Extend records all members under the same group id
func (b *Builder[K, V]) Extend(id K, members ...V) {
	for _, m := range members {
		b.Add(id, m)
	}
}

// Len returns the number of distinct members
func (b *Builder[K, V]) Len() int {
	return len(b.members)
}

// Groups returns the connected components. The order of groups and of the
// members within them is unspecified; pass the result through New for the
// canonical form.
func (b *Builder[K, V]) Groups() [][]V {
	buckets := make(map[K][]V)
	for member, id := range b.members {
		root := b.root(id)
		buckets[root] = append(buckets[root], member)
	}

	res := make([][]V, 0, len(buckets))
	for _, members := range buckets {
		res = append(res, members)
	}
	return res
}

func (b *Builder[K, V]) root(id K) K {
	root, ok := b.sets.Find(id)
	if !ok {
		panic(fmt.Sprintf("groups: no disjoint-set node for group id %v", id))
	}
	return root
}

// WordGroupsOf converts the merged components of a string builder into
// canonical WordGroups
func WordGroupsOf[K comparable](b *Builder[K, string]) *WordGroups {
	return New(b.Groups())
}
