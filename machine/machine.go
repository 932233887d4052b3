// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine is the host context for the 16-bit safety and
// diagnostic layer: stack, memory, named registers, arithmetic unit and
// debugger in one place.
//
// A Machine is meant for a single instruction stream. It has no locking;
// a multi-threaded host must serialize every call.
package machine

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/debug"
	"github.com/ezrec/word16/internal"
	"github.com/ezrec/word16/state"
	"github.com/ezrec/word16/word"
)

// REGISTER_NAMES are the registers every machine starts with.
var REGISTER_NAMES = []string{"a", "b", "c", "d", "x", "y"}

var _machine_defines = map[string]string{
	"WORD_MAX":    fmt.Sprintf("%d", word.MAX),
	"WORD_MIN":    fmt.Sprintf("%d", word.MIN),
	"WORD_UMAX":   fmt.Sprintf("%d", word.UMAX),
	"WORD_BITS":   fmt.Sprintf("%d", word.BITS),
	"STACK_LIMIT": fmt.Sprintf("%d", word.STACK_LIMIT),
	"MEMORY_SIZE": fmt.Sprintf("%d", word.MEMORY_SIZE),
}

// Machine state.
type Machine struct {
	Verbose bool // If set, enables verbose logging.

	Stack     word.Stack       // Host data stack.
	Memory    word.Memory      // Host memory.
	Registers *state.Registers // Named registers.
	Alu       alu.Unit         // Error register and condition flags.
	Debug     *debug.Debugger  // Diagnostics.
}

var _ state.Recoverable = (*Machine)(nil)

// NewMachine creates a machine whose diagnostics write to out and whose
// breakpoints wait on gate. Either may be nil.
func NewMachine(out io.Writer, gate debug.Gate) (m *Machine) {
	m = &Machine{
		Registers: state.NewRegisters(REGISTER_NAMES...),
		Debug:     debug.NewDebugger(out, gate),
	}

	return
}

// Defines returns an iterator over the machine constants and the
// error codes, as name/decimal string pairs sorted by name.
func (m *Machine) Defines() iter.Seq2[string, string] {
	codes := map[string]string{}
	for _, code := range alu.Codes() {
		codes[defineName(code)] = fmt.Sprintf("%d", int(code))
	}

	return internal.IterSeq2Sorted(internal.IterSeq2Concat(maps.All(_machine_defines), maps.All(codes)))
}

// defineName turns "divide by zero" into "ERR_DIVIDE_BY_ZERO".
func defineName(code alu.Code) string {
	name := []byte("ERR_")
	for _, ch := range []byte(code.String()) {
		switch {
		case ch == ' ':
			name = append(name, '_')
		case ch >= 'a' && ch <= 'z':
			name = append(name, ch-'a'+'A')
		default:
			name = append(name, ch)
		}
	}
	return string(name)
}

// Reset clears the stack, memory, registers, error state, and
// diagnostics.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.Stack.Reset()
	m.Memory.Reset()
	m.Registers.Reset()
	m.Alu.Reset()
	m.Debug.Reset()
}

// Status is true when the error register holds an error or either
// condition flag is set.
func (m *Machine) Status() bool {
	return m.Alu.Status()
}

// ClearError clears the error register.
func (m *Machine) ClearError() {
	m.Alu.ClearError()
}

// Err returns the error register as an error, nil when clear.
func (m *Machine) Err() error {
	return m.Alu.Registry.Get().Err()
}

// Capture snapshots the named registers.
func (m *Machine) Capture(names ...string) (state.Snapshot, error) {
	return state.Capture(m.Registers, names...)
}

// Recover restores snap when the machine reports an error.
func (m *Machine) Recover(snap state.Snapshot) (restored bool, err error) {
	restored, err = snap.RestoreIfError(m.Registers, m)
	if m.Verbose && restored {
		log.Printf("machine: restored %d registers", len(snap.Entries))
	}
	return
}

// Step of a multi-step computation.
type Step func(m *Machine) word.Word

// Chain clears the error register, then runs the steps in order,
// polling the register after each one. The first step that leaves an
// error stops the chain; its partial result is discarded.
func (m *Machine) Chain(steps ...Step) (value word.Word, err error) {
	if len(steps) == 0 {
		err = ErrChainEmpty
		return
	}

	m.ClearError()
	for n, step := range steps {
		result := step(m)
		if code := m.Alu.Registry.Get(); code != alu.None {
			if m.Verbose {
				log.Printf("machine: chain step %d: %v", n, code.String())
			}
			err = &ErrStep{Step: n, Code: code}
			return
		}
		value = result
	}

	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += m.Registers.String()

	var strval string
	val, ok := m.Stack.Peek()
	if ok {
		strval = fmt.Sprintf("%04X", val.Unsigned())
	} else {
		strval = "----"
	}
	text += fmt.Sprintf("% 5s: %v\n", "stack", strval)
	text += fmt.Sprintf("% 5s: %d\n", "depth", m.Stack.Depth())
	text += fmt.Sprintf("% 5s: %v\n", "flags", m.Alu.Flags)
	text += fmt.Sprintf("% 5s: %v\n", "error", m.Alu.Registry.Get().String())

	code := m.Alu.Registry.Get()
	legacy := fmt.Sprintf("%d", code.Legacy())
	if code.Ambiguous() {
		legacy += " (ambiguous)"
	}
	text += fmt.Sprintf("% 5s: %v\n", "code", legacy)

	return
}
