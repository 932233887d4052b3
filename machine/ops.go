package machine

import (
	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/word"
)

// Push and Pop each count as one operation on the host stack.

func (m *Machine) Push(value word.Word) (err error) {
	err = m.Stack.Push(value)
	if err != nil {
		return
	}
	_, err = m.Debug.CountOperation()
	return
}

func (m *Machine) Pop() (value word.Word, err error) {
	value, ok := m.Stack.Pop()
	if !ok {
		err = word.ErrStackEmpty
		return
	}
	_, err = m.Debug.CountOperation()
	return
}

// Apply pops the top two stack entries (b on top), applies op, records
// the result in the arithmetic unit, and pushes the result value. The
// result flags are returned for the caller to read before the next
// operation.
//
// An Apply counts as a single operation: only the push is counted.
func (m *Machine) Apply(name string, op func(a, b word.Word) alu.Result) (r alu.Result, err error) {
	if m.Stack.Depth() < 2 {
		err = word.ErrStackEmpty
		return
	}

	b, _ := m.Stack.Pop()
	a, _ := m.Stack.Pop()
	r = m.Alu.Record(name, op(a, b))
	err = m.Push(r.Value)
	return
}

// Pick copies the entry at depth (0 is the top) onto the stack. It is
// counted like a push.
func (m *Machine) Pick(depth int) (err error) {
	err = m.Stack.Pick(depth)
	if err != nil {
		return
	}
	_, err = m.Debug.CountOperation()
	return
}
