package symbol

import (
	"slices"
	"strings"
)

// Table is a description-sorted registry holding at most one entry per
// description.
type Table[S DescKey] struct {
	elems []S
}

// NewTable sorts entries by description and drops duplicates. Of several
// entries sharing a description, the one appearing last in entries is kept.
func NewTable[S DescKey](entries []S) *Table[S] {
	elems := slices.Clone(entries)
	// stable, so equal descriptions stay in input order
	slices.SortStableFunc(elems, func(a, b S) int {
		return strings.Compare(a.Desc(), b.Desc())
	})

	deduped := make([]S, 0, len(elems))
	for i, e := range elems {
		if i+1 < len(elems) && elems[i+1].Desc() == e.Desc() {
			continue
		}
		deduped = append(deduped, e)
	}

	return &Table[S]{elems: deduped}
}

// Find looks up the entry registered under desc.
func (t *Table[S]) Find(desc string) (S, bool) {
	var zero S
	if t == nil {
		return zero, false
	}
	i, ok := slices.BinarySearchFunc(t.elems, desc, func(e S, target string) int {
		return strings.Compare(e.Desc(), target)
	})
	if !ok {
		return zero, false
	}
	return t.elems[i], true
}

func (t *Table[S]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.elems)
}

// Entries returns the entries in description order.
func (t *Table[S]) Entries() []S {
	if t == nil {
		return nil
	}
	return slices.Clone(t.elems)
}

func (t *Table[S]) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.elems))
	for i, e := range t.elems {
		names[i] = e.Desc()
	}
	return names
}

// MakeTerms creates one terminal per description and registers them.
func MakeTerms(descs ...string) *Table[Terminal] {
	terms := make([]Terminal, len(descs))
	for i, d := range descs {
		terms[i] = NewTerminal(d)
	}
	return NewTable(terms)
}

// FindAll looks up every name, in order. It fails as a whole if any name is
// missing.
func FindAll[S DescKey](t *Table[S], names ...string) ([]S, bool) {
	out := make([]S, 0, len(names))
	for _, name := range names {
		s, ok := t.Find(name)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
