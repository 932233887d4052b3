package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/word16/word"
)

func TestClamp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value, lo, hi word.Word
		result        word.Word
		code          Code
	}){
		{100, 0, 200, 100, None},
		{-5, 0, 200, 0, None},
		{500, 0, 200, 200, None},
		{0, 0, 0, 0, None},
		{5, 10, 1, 0, InvalidInput},
	}

	for _, entry := range table {
		r := Clamp(entry.value, entry.lo, entry.hi)
		assert.Equal(entry.result, r.Value, entry.value)
		assert.Equal(entry.code, r.Code, entry.value)
	}
}

func TestValidateRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value, lo, hi word.Word
		result        word.Word
		code          Code
	}){
		{1000, 0, 100, 0, OverRange},
		{-1, 0, 100, 0, UnderRange},
		{50, 0, 100, 50, None},
		{100, 0, 100, 100, None},
		{50, 100, 0, 0, InvalidInput},
	}

	for _, entry := range table {
		r := ValidateRange(entry.value, entry.lo, entry.hi)
		assert.Equal(entry.result, r.Value, entry.value)
		assert.Equal(entry.code, r.Code, entry.value)
	}
}

func TestFixedMultiply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name        string
		a, b, scale word.Word
		result      word.Word
		code        Code
	}){
		// 1.500 * 2.000 = 3.000
		{"scaled", 1500, 2000, 1000, 3000, None},
		// 0.333 * 3.000 = 0.999
		{"truncated", 333, 3000, 1000, 999, None},
		{"negative", -1500, 2000, 1000, -3000, None},
		{"too big", 30000, 30000, 1000, 32767, Overflow},
		{"zero scale", 1, 1, 0, 0, DivideByZero},
	}

	for _, entry := range table {
		r := FixedMultiply(entry.a, entry.b, entry.scale)
		assert.Equal(entry.result, r.Value, entry.name)
		assert.Equal(entry.code, r.Code, entry.name)
	}
}

func TestTable(t *testing.T) {
	assert := assert.New(t)

	values := []word.Word{1, 2, 3, 4}
	tbl := NewTable(values...)
	values[0] = 99

	r := tbl.Lookup(10)
	assert.Equal(word.Word(0), r.Value)
	assert.Equal(BoundsError, r.Code)

	r = tbl.Lookup(2)
	assert.Equal(word.Word(3), r.Value)
	assert.Equal(None, r.Code)

	r = tbl.Lookup(-1)
	assert.Equal(BoundsError, r.Code)

	// The table owns its copy.
	assert.Equal(word.Word(1), tbl.Lookup(0).Value)
	assert.Equal(4, tbl.Len())

	var seen []word.Word
	for n, v := range tbl.All() {
		assert.Equal(len(seen), n)
		seen = append(seen, v)
	}
	assert.Equal([]word.Word{1, 2, 3, 4}, seen)
}
