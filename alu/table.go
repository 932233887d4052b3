package alu

import (
	"iter"
	"slices"

	"github.com/ezrec/word16/word"
)

// Table is an immutable lookup table. Entries are only reachable
// through the bounds checked Lookup.
type Table struct {
	data []word.Word
}

// NewTable copies values into a new table.
func NewTable(values ...word.Word) Table {
	return Table{data: slices.Clone(values)}
}

func (t Table) Len() int {
	return len(t.data)
}

// Lookup returns the entry at index, or the zero sentinel with
// BoundsError when index is outside the table.
func (t Table) Lookup(index int) (r Result) {
	if index < 0 || index >= len(t.data) {
		r.Code = BoundsError
		return
	}

	r.Value = t.data[index]
	return
}

// All iterates index/value pairs in order.
func (t Table) All() iter.Seq2[int, word.Word] {
	return slices.All(t.data)
}
