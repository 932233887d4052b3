package word

const (
	MEMORY_SIZE = 4096 // Words of host memory.
)

// Memory is word-addressed host memory.
type Memory struct {
	Data [MEMORY_SIZE]Word
}

// Load a word. Out of range addresses report !ok.
func (m *Memory) Load(addr int) (value Word, ok bool) {
	if addr < 0 || addr >= len(m.Data) {
		return
	}

	return m.Data[addr], true
}

// Store a word.
func (m *Memory) Store(addr int, value Word) (err error) {
	if addr < 0 || addr >= len(m.Data) {
		err = ErrAddressRange
		return
	}

	m.Data[addr] = value
	return
}

// Reset zeros all of memory.
func (m *Memory) Reset() {
	clear(m.Data[:])
}
