package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/word16/word"
)

func FuzzAlu(f *testing.F) {
	for _, seed := range []int16{0, 1, -1, 3, 1000, 32767, -32768} {
		f.Add(seed, seed)
		f.Add(seed, int16(-seed))
	}

	f.Fuzz(func(t *testing.T, a16 int16, b16 int16) {
		assert := assert.New(t)

		a, b := word.Word(a16), word.Word(b16)
		wa, wb := int64(a16), int64(b16)

		r := Add(a, b)
		if word.Fits(wa + wb) {
			assert.Equal(wa+wb, int64(r.Value))
			assert.Equal(None, r.Code)
			assert.False(r.Flags.Carry)
		} else {
			assert.Equal(word.MAX, r.Value)
			assert.Equal(Overflow, r.Code)
			assert.True(r.Flags.Carry)
		}

		r = Multiply(a, b)
		if word.Fits(wa * wb) {
			assert.Equal(wa*wb, int64(r.Value))
			assert.False(r.Flags.Remainder)
		} else {
			assert.Equal(word.MAX, r.Value)
			assert.Equal(Overflow, r.Code)
			assert.True(r.Flags.Remainder)
		}

		r = Divide(a, b)
		switch {
		case wb == 0:
			assert.Equal(DivideByZero, r.Code)
			assert.Equal(word.Word(0), r.Value)
		case !word.Fits(wa / wb):
			assert.Equal(Overflow, r.Code)
		default:
			assert.Equal(wa/wb, int64(r.Value))
			assert.Equal(wa%wb, int64(r.Rem))
			assert.Equal(wa, int64(r.Value)*wb+int64(r.Rem))
		}

		assert.Equal((wa+wb)>>1, int64(Average(a, b).Value))

		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		c := Clamp(0, lo, hi).Value
		assert.True(c >= lo && c <= hi)
	})
}
