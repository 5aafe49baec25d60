package document

import (
	"cmp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Finalize appends c and puts the document in its canonical order:
// people sorted by identifier and contributions sorted by start date.
func (d *Document) Finalize(c Contribution) {
	d.AppendContribution(c)
	d.SortPeople()
	d.SortContributions()
}

// SortPeople orders the people mapping by ascending identifier.
func (d *Document) SortPeople() {
	people := d.section(KeyPeople, yaml.MappingNode, false)
	if people == nil {
		return
	}

	type pair struct{ key, value *yaml.Node }
	pairs := make([]pair, 0, len(people.Content)/2)
	for i := 0; i+1 < len(people.Content); i += 2 {
		pairs = append(pairs, pair{people.Content[i], people.Content[i+1]})
	}

	slices.SortStableFunc(pairs, func(a, b pair) int {
		return cmp.Compare(a.key.Value, b.key.Value)
	})

	content := make([]*yaml.Node, 0, len(people.Content))
	for _, p := range pairs {
		content = append(content, p.key, p.value)
	}
	people.Content = content
}

// SortContributions orders contributions by ascending start date.
// Only the date is compared, so entries sharing a date keep their relative
// order. Entries without a readable start sort first.
func (d *Document) SortContributions() {
	seq := d.section(KeyContributions, yaml.SequenceNode, false)
	if seq == nil {
		return
	}

	type entry struct {
		node  *yaml.Node
		start time.Time
	}
	entries := make([]entry, 0, len(seq.Content))
	for _, item := range seq.Content {
		entries = append(entries, entry{node: item, start: startOf(item)})
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.start.Compare(b.start)
	})

	for i, e := range entries {
		seq.Content[i] = e.node
	}
}

func startOf(item *yaml.Node) time.Time {
	node := lookup(resolveAlias(item), "start")
	if node == nil || node.Kind != yaml.ScalarNode {
		return time.Time{}
	}
	t, _ := parseTimestamp(node.Value)
	return t
}
