package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_Views(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		unsigned uint16
		signed   int16
	}){
		{0x0000, 0},
		{0x7fff, 32767},
		{0x8000, -32768},
		{0xffff, -1},
		{0xfffe, -2},
	}

	for _, entry := range table {
		w := FromUnsigned(entry.unsigned)
		assert.Equal(entry.signed, w.Signed(), entry.unsigned)
		assert.Equal(entry.unsigned, w.Unsigned(), entry.unsigned)
		assert.Equal(w, FromUnsigned(w.Unsigned()))
	}
}

func TestWord_Fits(t *testing.T) {
	assert := assert.New(t)

	assert.True(Fits(32767))
	assert.True(Fits(-32768))
	assert.False(Fits(32768))
	assert.False(Fits(-32769))

	assert.True(FitsUnsigned(65535))
	assert.False(FitsUnsigned(65536))
	assert.False(FitsUnsigned(-1))
}

func TestWord_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-1 (0xffff)", Word(-1).String())
	assert.Equal("42 (0x002a)", Word(42).String())
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	assert.NoError(m.Store(10, 99))

	val, ok := m.Load(10)
	assert.True(ok)
	assert.Equal(Word(99), val)

	_, ok = m.Load(MEMORY_SIZE)
	assert.False(ok)
	assert.ErrorIs(m.Store(-1, 1), ErrAddressRange)

	m.Reset()
	val, _ = m.Load(10)
	assert.Equal(Word(0), val)
}
