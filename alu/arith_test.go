package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/word16/word"
)

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		a, b  word.Word
		value word.Word
		carry bool
		code  Code
	}){
		{"small", 2, 3, 5, false, None},
		{"max", 32766, 1, 32767, false, None},
		{"min", -32767, -1, -32768, false, None},
		{"over", 32767, 1, 32767, true, Overflow},
		{"under", -32768, -1, 32767, true, Overflow},
		{"mixed", -100, 50, -50, false, None},
	}

	for _, entry := range table {
		r := Add(entry.a, entry.b)
		assert.Equal(entry.value, r.Value, entry.name)
		assert.Equal(entry.carry, r.Flags.Carry, entry.name)
		assert.False(r.Flags.Remainder, entry.name)
		assert.Equal(entry.code, r.Code, entry.name)
	}
}

func TestAddUnchecked(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(word.Word(-32768), AddUnchecked(32767, 1))
	assert.Equal(word.Word(7), AddUnchecked(3, 4))
}

func TestMultiply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name      string
		a, b      word.Word
		value     word.Word
		remainder bool
		code      Code
	}){
		{"small", 12, 11, 132, false, None},
		{"negative", -12, 11, -132, false, None},
		{"big", 1000, 1000, 32767, true, Overflow},
		{"negative big", -1000, 1000, 32767, true, Overflow},
		{"edge", -32768, 1, -32768, false, None},
		{"edge neg", -32768, -1, 32767, true, Overflow},
		{"zero", 0, -32768, 0, false, None},
	}

	for _, entry := range table {
		r := Multiply(entry.a, entry.b)
		assert.Equal(entry.value, r.Value, entry.name)
		assert.Equal(entry.remainder, r.Flags.Remainder, entry.name)
		assert.False(r.Flags.Carry, entry.name)
		assert.Equal(entry.code, r.Code, entry.name)
	}
}

func TestDivide(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name              string
		dividend, divisor word.Word
		quotient, rem     word.Word
		remainder         bool
		code              Code
	}){
		{"exact", 100, 4, 25, 0, false, None},
		{"remainder", 100, 3, 33, 1, true, None},
		{"negative dividend", -100, 3, -33, -1, true, None},
		{"negative divisor", 100, -3, -33, 1, true, None},
		{"zero", 100, 0, 0, 0, false, DivideByZero},
		{"overflow", -32768, -1, 32767, 0, false, Overflow},
	}

	for _, entry := range table {
		r := Divide(entry.dividend, entry.divisor)
		assert.Equal(entry.quotient, r.Value, entry.name)
		assert.Equal(entry.rem, r.Rem, entry.name)
		assert.Equal(entry.remainder, r.Flags.Remainder, entry.name)
		assert.Equal(entry.code, r.Code, entry.name)
	}
}

func TestShiftLeft(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(word.Word(40), ShiftLeft(5, 3))
	assert.Equal(word.Word(-32768), ShiftLeft(1, 15))
	// No overflow detection: the high bits fall off.
	assert.Equal(word.Word(0), ShiftLeft(0x4000, 2))
	assert.Equal(word.Word(0), ShiftLeft(1, 16))
}

func TestTestBit(t *testing.T) {
	assert := assert.New(t)

	assert.True(TestBit(0b1010, 1))
	assert.False(TestBit(0b1010, 2))
	assert.True(TestBit(-1, 15))
	assert.False(TestBit(0x7fff, 15))
	assert.False(TestBit(-1, 16))
}

func TestAverage(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(word.Word(15), Average(10, 20).Value)
	assert.Equal(word.Word(32767), Average(32767, 32767).Value)
	assert.Equal(word.Word(-32768), Average(-32768, -32768).Value)
	assert.Equal(None, Average(32767, 32767).Code)

	assert.Equal(word.Word(15), AverageUnchecked(10, 20))
	// The fast variant wraps.
	assert.Equal(word.Word(-1), AverageUnchecked(32767, 32767))
}

func TestFailed(t *testing.T) {
	assert := assert.New(t)

	assert.False(Failed(None, Flags{}))
	assert.True(Failed(Overflow, Flags{}))
	assert.True(Failed(None, Flags{Carry: true}))
	assert.True(Failed(None, Flags{Remainder: true}))
	assert.True(Divide(100, 3).Failed())
	assert.False(Divide(100, 4).Failed())
}
