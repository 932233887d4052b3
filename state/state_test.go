package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/word"
)

// countingStore records every Set call.
type countingStore struct {
	*Registers
	sets []string
}

func (cs *countingStore) Set(name string, value word.Word) error {
	cs.sets = append(cs.sets, name)
	return cs.Registers.Set(name, value)
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters("x", "", "y", "x")
	assert.Equal([]string{"x", "y"}, regs.Names())

	assert.NoError(regs.Set("x", 7))
	val, ok := regs.Get("x")
	assert.True(ok)
	assert.Equal(word.Word(7), val)

	_, ok = regs.Get("z")
	assert.False(ok)
	assert.ErrorIs(regs.Set("z", 1), ErrRegisterUnknown("z"))
	assert.ErrorIs(regs.Define("y"), ErrRegisterDuplicate)
	assert.ErrorIs(regs.Define(""), ErrRegisterName)

	assert.Equal("    x: 0007\n    y: 0000\n", regs.String())

	regs.Reset()
	val, _ = regs.Get("x")
	assert.Equal(word.Word(0), val)
}

func TestCapture_Unknown(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters("x")
	snap, err := Capture(regs, "x", "nope")
	assert.ErrorIs(err, ErrRegisterUnknown("nope"))
	assert.Empty(snap.Entries)
}

func TestSnapshot_NoError(t *testing.T) {
	assert := assert.New(t)

	store := &countingStore{Registers: NewRegisters("x", "y")}
	store.Registers.Set("x", 1)
	store.Registers.Set("y", 2)

	unit := &alu.Unit{}
	snap, err := Capture(store, "x", "y")
	assert.NoError(err)

	unit.Add(1, 2)

	restored, err := snap.RestoreIfError(store, unit)
	assert.NoError(err)
	assert.False(restored)
	assert.Empty(store.sets)

	x, _ := store.Get("x")
	y, _ := store.Get("y")
	assert.Equal(word.Word(1), x)
	assert.Equal(word.Word(2), y)
}

func TestSnapshot_Error(t *testing.T) {
	assert := assert.New(t)

	store := &countingStore{Registers: NewRegisters("x", "y")}
	store.Registers.Set("x", 1)
	store.Registers.Set("y", 2)

	unit := &alu.Unit{}
	snap, err := Capture(store, "x", "y")
	assert.NoError(err)

	r := unit.Multiply(1000, 1000)
	store.Set("x", r.Value)
	store.Set("y", 0)

	restored, err := snap.RestoreIfError(store, unit)
	assert.NoError(err)
	assert.True(restored)
	assert.Equal(alu.None, unit.Registry.Get())

	x, _ := store.Get("x")
	y, _ := store.Get("y")
	assert.Equal(word.Word(1), x)
	assert.Equal(word.Word(2), y)

	val, ok := snap.Value("y")
	assert.True(ok)
	assert.Equal(word.Word(2), val)
	_, ok = snap.Value("z")
	assert.False(ok)
}
