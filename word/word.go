package word

import (
	"fmt"
)

// Word is a 16-bit machine word, stored as the signed view.
type Word int16

const (
	MAX  = Word(32767)  // Largest signed value.
	MIN  = Word(-32768) // Smallest signed value.
	BITS = 16           // Width of a word in bits.

	UMAX = uint16(0xffff) // Largest unsigned value.
)

// FromUnsigned reinterprets an unsigned bit pattern as a Word.
func FromUnsigned(u uint16) Word {
	return Word(int16(u))
}

// Unsigned returns the unsigned view of the same bits.
func (w Word) Unsigned() uint16 {
	return uint16(w)
}

// Signed returns the signed view.
func (w Word) Signed() int16 {
	return int16(w)
}

// Fits reports whether a wide signed value is representable as a Word.
func Fits(value int64) bool {
	return value >= int64(MIN) && value <= int64(MAX)
}

// FitsUnsigned reports whether a wide value fits the unsigned view.
func FitsUnsigned(value int64) bool {
	return value >= 0 && value <= int64(UMAX)
}

// String returns the signed decimal value and the hex bit pattern.
func (w Word) String() string {
	return fmt.Sprintf("%d (0x%04x)", int16(w), uint16(w))
}
