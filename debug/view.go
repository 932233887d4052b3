package debug

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/word"
)

// Stack is a read-only view of the host stack.
type Stack interface {
	Depth() int
	PeekAt(depth int) (value word.Word, ok bool)
}

// Memory is a read-only view of host memory.
type Memory interface {
	Load(addr int) (value word.Word, ok bool)
}

var _ Stack = (*word.Stack)(nil)
var _ Memory = (*word.Memory)(nil)

// StackDepth returns the number of entries on the stack.
func StackDepth(s Stack) int {
	return s.Depth()
}

// DumpStack copies the stack, top of stack first.
func DumpStack(s Stack) (values []word.Word) {
	values = make([]word.Word, 0, s.Depth())
	for depth := range s.Depth() {
		value, ok := s.PeekAt(depth)
		if !ok {
			break
		}
		values = append(values, value)
	}
	return
}

// MemoryDump iterates length words from base. The sequence stops early
// at the end of memory.
func MemoryDump(m Memory, base, length int) iter.Seq2[int, word.Word] {
	return func(yield func(int, word.Word) bool) {
		for addr := base; addr < base+length; addr++ {
			value, ok := m.Load(addr)
			if !ok {
				return
			}
			if !yield(addr, value) {
				return
			}
		}
	}
}

// ArrayDump iterates the entries of a lookup table.
func ArrayDump(table alu.Table) iter.Seq2[int, word.Word] {
	return table.All()
}

// Print writes one line per index/value pair.
func Print(w io.Writer, seq iter.Seq2[int, word.Word]) (err error) {
	for index, value := range seq {
		_, err = fmt.Fprintf(w, "%04x: %6d  %04X\n", index, int16(value), value.Unsigned())
		if err != nil {
			return
		}
	}
	return
}
