package word

const (
	STACK_LIMIT = 32 // Maximum stack depth
)

// Stack is the host data stack.
type Stack struct {
	Data []Word
}

// Push a value. Fails with ErrStackFull once STACK_LIMIT is reached.
func (s *Stack) Push(value Word) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}
	s.Data = append(s.Data, value)
	return
}

func (s *Stack) Pop() (value Word, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= STACK_LIMIT
}

// Depth of the stack.
func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value Word, ok bool) {
	return s.PeekAt(0)
}

// PeekAt returns the value at depth from the top (0 is the top of
// stack) without modifying the stack.
func (s *Stack) PeekAt(depth int) (value Word, ok bool) {
	if depth < 0 || depth >= len(s.Data) {
		return
	}

	return s.Data[len(s.Data)-1-depth], true
}

// Pick copies the value at depth onto the top of the stack.
func (s *Stack) Pick(depth int) (err error) {
	value, ok := s.PeekAt(depth)
	if !ok {
		err = ErrStackDepth
		return
	}

	return s.Push(value)
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
