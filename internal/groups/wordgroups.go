package groups

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"

	"codeberg.org/snonux/similarwords/internal/dictionary"
)

// WordGroups is a sorted list of groups. Every group holds at least two
// distinct words in ascending order and groups are ordered by their
// smallest member.
type WordGroups struct {
	groups [][]string
}

// New builds WordGroups from arbitrary candidate groups. Candidates are
// sorted and deduplicated, those left with fewer than two members are
// dropped.
func New(candidates [][]string) *WordGroups {
	return Collect(slices.Values(candidates))
}

// Collect is New over a sequence of candidates
func Collect(candidates iter.Seq[[]string]) *WordGroups {
	var res [][]string
	for c := range candidates {
		g := slices.Clone(c)
		slices.Sort(g)
		g = slices.Compact(g)
		if len(g) > 1 {
			res = append(res, g)
		}
	}
	// Groups from different sources may share their first member, the full
	// comparison keeps the order independent of input order.
	slices.SortFunc(res, slices.Compare[[]string])
	return &WordGroups{groups: res}
}

// FromDict groups the words of d by identical transcription
func FromDict(d *dictionary.Dictionary) *WordGroups {
	buckets := make(map[string][]string)
	for _, w := range d.All() {
		buckets[w.Phonemes] = append(buckets[w.Phonemes], w.Text)
	}
	return Collect(mapValues(buckets))
}

type sourced struct {
	text   string
	source int
}

// FromDicts groups the words of a and b by identical transcription and keeps
// only groups with members from both dictionaries.
func FromDicts(a, b *dictionary.Dictionary) *WordGroups {
	buckets := make(map[string][]sourced)
	for i, d := range []*dictionary.Dictionary{a, b} {
		for _, w := range d.All() {
			buckets[w.Phonemes] = append(buckets[w.Phonemes], sourced{text: w.Text, source: i})
		}
	}

	return Collect(func(yield func([]string) bool) {
		for _, members := range buckets {
			if len(members) < 2 || !fromBoth(members) {
				continue
			}
			if !yield(lo.Map(members, func(m sourced, _ int) string { return m.text })) {
				return
			}
		}
	})
}

func fromBoth(members []sourced) bool {
	return lo.SomeBy(members, func(m sourced) bool { return m.source != members[0].source })
}

func mapValues[K comparable, V any](m map[K]V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of groups
func (g *WordGroups) Len() int {
	return len(g.groups)
}

// IsEmpty reports whether there are no groups
func (g *WordGroups) IsEmpty() bool {
	return len(g.groups) == 0
}

// Groups returns the groups. Callers must not modify them.
func (g *WordGroups) Groups() [][]string {
	return g.groups
}

// All iterates over the groups in order
func (g *WordGroups) All() iter.Seq[[]string] {
	return slices.Values(g.groups)
}

// String renders one line per group with members separated by spaces
func (g *WordGroups) String() string {
	var b strings.Builder
	g.WriteTo(&b)
	return b.String()
}

// WriteTo writes the text form of the groups to w
func (g *WordGroups) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, group := range g.groups {
		n, err := io.WriteString(w, strings.Join(group, " ")+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
