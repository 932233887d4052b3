package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.NoError(s.Push(0x1234))
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(Word(0x1234), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(100)
	s.Push(-7)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(Word(-7), val)
	assert.Equal(1, s.Depth())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(Word(100), val)
	assert.True(s.Empty())

	val, ok = s.Pop()
	assert.False(ok)
	assert.Equal(Word(0), val)
}

func TestStack_PeekAt(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for _, v := range []Word{1, 2, 3} {
		s.Push(v)
	}

	table := [](struct {
		depth int
		value Word
		ok    bool
	}){
		{0, 3, true},
		{1, 2, true},
		{2, 1, true},
		{3, 0, false},
		{-1, 0, false},
	}

	for _, entry := range table {
		val, ok := s.PeekAt(entry.depth)
		assert.Equal(entry.ok, ok, entry.depth)
		assert.Equal(entry.value, val, entry.depth)
	}

	// Peeking never changes the stack.
	assert.Equal([]Word{1, 2, 3}, s.Data)
}

func TestStack_Pick(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(10)
	s.Push(20)

	assert.NoError(s.Pick(1))
	assert.Equal([]Word{10, 20, 10}, s.Data)
	assert.ErrorIs(s.Pick(5), ErrStackDepth)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := 0; i < STACK_LIMIT; i++ {
		assert.False(s.Full())
		assert.NoError(s.Push(Word(i)))
	}

	assert.True(s.Full())
	assert.ErrorIs(s.Push(1), ErrStackFull)
	assert.Equal(STACK_LIMIT, s.Depth())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Reset()
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())
}
