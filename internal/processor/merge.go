package processor

import (
	"bufio"

	"codeberg.org/snonux/similarwords/internal/batch"
	"codeberg.org/snonux/similarwords/internal/groups"
)

// Merge reads group files and prints the merged groups. Without inputs
// standard input is read.
func (p *Processor) Merge(inputs []string) error {
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	b := groups.NewBuilder[int, string]()
	next := 0
	for _, name := range inputs {
		if err := p.mergeFile(b, &next, name); err != nil {
			return err
		}
	}

	w := bufio.NewWriter(p.stdout)
	if _, err := groups.WordGroupsOf(b).WriteTo(w); err != nil {
		return err
	}
	return w.Flush()
}

func (p *Processor) mergeFile(b *groups.Builder[int, string], next *int, name string) error {
	in, err := p.openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()
	return batch.MergeGroups(b, next, in)
}
