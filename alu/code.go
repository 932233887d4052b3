package alu

import (
	"github.com/ezrec/word16/translate"
	"github.com/ezrec/word16/word"
)

var f = translate.From

// Code is an error condition recorded in the error register.
type Code int

const (
	None         = Code(0) // No error.
	Overflow     = Code(1) // Result does not fit in a word.
	DivideByZero = Code(2) // Division or scaling by zero.
	UnderRange   = Code(3) // Value below the caller's minimum.
	OverRange    = Code(4) // Value above the caller's maximum.
	InvalidInput = Code(5) // Malformed input or inverted range.
	BoundsError  = Code(6) // Table index out of range.
)

var codeNames = []string{
	"none",
	"overflow",
	"divide by zero",
	"under range",
	"over range",
	"invalid input",
	"bounds error",
}

// Codes lists every code, in numeric order.
func Codes() []Code {
	return []Code{None, Overflow, DivideByZero, UnderRange, OverRange, InvalidInput, BoundsError}
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return f("code %d", int(c))
	}
	return codeNames[c]
}

// Error implements error, so a Code can be matched with errors.Is.
func (c Code) Error() string {
	return f("alu: %v", c.String())
}

// Err returns nil for None, and the code itself otherwise.
func (c Code) Err() error {
	if c == None {
		return nil
	}
	return c
}

// Legacy returns the numeric code a 16-bit host program stores. Both
// InvalidInput and BoundsError share code 5 there.
func (c Code) Legacy() word.Word {
	if c == BoundsError {
		return word.Word(InvalidInput)
	}
	return word.Word(c)
}

// Ambiguous reports whether the Legacy code is shared by another Code,
// so a host reading back a numeric 5 cannot tell the two apart.
func (c Code) Ambiguous() bool {
	return c == InvalidInput || c == BoundsError
}
