package alu

import (
	"log"

	"github.com/ezrec/word16/word"
)

// Unit is the arithmetic context of a host: the error register, the
// condition flags of the last operation, and the last remainder.
//
// Flags are overwritten by every operation and must be read before the
// next one. The returned Result carries the same flags.
type Unit struct {
	Verbose bool // Set to log every error condition.

	Registry Registry // Error register.
	Flags    Flags    // Flags of the most recent operation.

	remainder word.Word
}

// Reset clears the register, the flags, and the remainder.
func (u *Unit) Reset() {
	u.Registry.Clear()
	u.Flags = Flags{}
	u.remainder = 0
}

// Record latches the result flags and writes its code to the register.
// Results of the pure package functions are recorded through it.
func (u *Unit) Record(op string, r Result) Result {
	u.Flags = r.Flags
	u.Registry.Set(r.Code)
	if u.Verbose && r.Code != None {
		log.Printf("alu: %v: %v", op, r.Code.String())
	}
	return r
}

// Status is the pass/fail summary: true when the register holds an
// error or either flag is set. It changes nothing.
func (u *Unit) Status() bool {
	return Failed(u.Registry.Get(), u.Flags)
}

// Remainder of the most recent successful Divide.
func (u *Unit) Remainder() word.Word {
	return u.remainder
}

func (u *Unit) Add(a, b word.Word) Result {
	return u.Record("add", Add(a, b))
}

func (u *Unit) Multiply(a, b word.Word) Result {
	return u.Record("multiply", Multiply(a, b))
}

// Divide records the remainder for Remainder(). A zero divisor discards
// any previous remainder.
func (u *Unit) Divide(dividend, divisor word.Word) Result {
	r := Divide(dividend, divisor)
	u.remainder = r.Rem
	return u.Record("divide", r)
}

// Average is the checked midpoint.
func (u *Unit) Average(a, b word.Word) Result {
	return u.Record("average", Average(a, b))
}

func (u *Unit) FixedMultiply(a, b, scale word.Word) Result {
	return u.Record("fixed multiply", FixedMultiply(a, b, scale))
}

// ValidateRange writes UnderRange, OverRange, InvalidInput or None.
func (u *Unit) ValidateRange(value, lo, hi word.Word) Result {
	return u.Record("validate", ValidateRange(value, lo, hi))
}

// Clamp only touches the register for an inverted range.
func (u *Unit) Clamp(value, lo, hi word.Word) Result {
	r := Clamp(value, lo, hi)
	u.Flags = r.Flags
	if r.Code != None {
		u.Record("clamp", r)
	}
	return r
}

// Lookup writes BoundsError or None.
func (u *Unit) Lookup(table Table, index int) Result {
	return u.Record("lookup", table.Lookup(index))
}

// The unchecked operations clear the flags but leave the register.

func (u *Unit) AddUnchecked(a, b word.Word) word.Word {
	u.Flags = Flags{}
	return AddUnchecked(a, b)
}

func (u *Unit) AverageUnchecked(a, b word.Word) word.Word {
	u.Flags = Flags{}
	return AverageUnchecked(a, b)
}

func (u *Unit) ShiftLeft(value word.Word, n uint) word.Word {
	u.Flags = Flags{}
	return ShiftLeft(value, n)
}

func (u *Unit) TestBit(value word.Word, n uint) bool {
	u.Flags = Flags{}
	return TestBit(value, n)
}

// ClearError clears the error register, leaving the flags.
func (u *Unit) ClearError() {
	u.Registry.Clear()
}
