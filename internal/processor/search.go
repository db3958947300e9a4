package processor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/similarwords/internal"
	"codeberg.org/snonux/similarwords/internal/batch"
	"codeberg.org/snonux/similarwords/internal/dictionary"
	"codeberg.org/snonux/similarwords/internal/groups"
)

// FindSimilar prints the groups of similar words found in one or two
// dictionaries and reports the number of results on stderr
func (p *Processor) FindSimilar(inputs []string) (int, error) {
	if len(inputs) > 2 {
		return 0, fmt.Errorf("at most two dictionaries can be compared, got %d", len(inputs))
	}
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	dicts := make([]*dictionary.Dictionary, 0, len(inputs))
	for _, name := range inputs {
		d, err := p.loadDictionary(name)
		if err != nil {
			return 0, err
		}
		dicts = append(dicts, d)
	}

	w := bufio.NewWriter(p.stdout)
	var count int
	if p.flags.MaxDistance == 0 {
		var res *groups.WordGroups
		if len(dicts) == 2 {
			res = groups.FromDicts(dicts[0], dicts[1])
		} else {
			res = groups.FromDict(dicts[0])
		}
		if _, err := res.WriteTo(w); err != nil {
			return 0, err
		}
		count = res.Len()
	} else {
		var err error
		count, err = search(w, dicts[0], dicts[len(dicts)-1], p.flags.MaxDistance)
		if err != nil {
			return 0, err
		}
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}

	fmt.Fprintf(p.stderr, "%d results\n", count)
	return count, nil
}

func (p *Processor) loadDictionary(name string) (*dictionary.Dictionary, error) {
	in, err := p.openInput(name)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	filter := internal.LengthFilter{Min: p.flags.MinLength, Max: p.flags.MaxLength}
	var keep func(string) bool
	if !filter.IsZero() {
		keep = filter.Keep
	}

	d, err := batch.ReadDictionary(in, keep)
	if err != nil {
		return nil, err
	}
	if p.flags.Normalize {
		d.Normalize()
	}
	return d, nil
}

// search writes every word of dict followed by its matches in dict2 that
// are not the word itself. Words without matches are left out.
func search(w io.Writer, dict, dict2 *dictionary.Dictionary, maxDistance int) (int, error) {
	var count int
	row := make([]string, 0, 8)
	for _, word := range dict.All() {
		row = append(row[:0], word.Text)
		for match := range dict2.FindSimilar(word, maxDistance).All() {
			if *match != word {
				row = append(row, match.Text)
			}
		}
		if len(row) < 2 {
			continue
		}
		count++
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return count, err
		}
	}
	return count, nil
}
