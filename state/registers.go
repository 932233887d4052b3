package state

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/word16/word"
)

// Store is a named register store.
type Store interface {
	Get(name string) (value word.Word, ok bool)
	Set(name string, value word.Word) error
}

// Registers is a Store with a fixed, ordered set of names.
type Registers struct {
	names  []string
	values map[string]word.Word
}

var _ Store = (*Registers)(nil)

// NewRegisters creates a register store with the given names, all zero.
// Empty and duplicated names are dropped; use Define to see the error.
func NewRegisters(names ...string) (regs *Registers) {
	regs = &Registers{
		values: map[string]word.Word{},
	}

	for _, name := range names {
		_ = regs.Define(name)
	}

	return
}

// Define adds a new zeroed register.
func (regs *Registers) Define(name string) (err error) {
	if len(name) == 0 {
		err = ErrRegisterName
		return
	}

	if _, ok := regs.values[name]; ok {
		err = ErrRegisterDuplicate
		return
	}

	regs.names = append(regs.names, name)
	regs.values[name] = 0
	return
}

func (regs *Registers) Get(name string) (value word.Word, ok bool) {
	value, ok = regs.values[name]
	return
}

func (regs *Registers) Set(name string, value word.Word) (err error) {
	if _, ok := regs.values[name]; !ok {
		err = ErrRegisterUnknown(name)
		return
	}

	regs.values[name] = value
	return
}

// Names in definition order.
func (regs *Registers) Names() []string {
	return slices.Clone(regs.names)
}

// All iterates name/value pairs in definition order.
func (regs *Registers) All() iter.Seq2[string, word.Word] {
	return func(yield func(string, word.Word) bool) {
		for _, name := range regs.names {
			if !yield(name, regs.values[name]) {
				return
			}
		}
	}
}

// Reset zeros every register.
func (regs *Registers) Reset() {
	for name := range regs.values {
		regs.values[name] = 0
	}
}

func (regs *Registers) String() (text string) {
	for name, value := range regs.All() {
		text += fmt.Sprintf("% 5s: %04X\n", name, value.Unsigned())
	}
	return
}
