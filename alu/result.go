package alu

import (
	"fmt"

	"github.com/ezrec/word16/word"
)

// Flags are the transient condition flags of one operation.
type Flags struct {
	Carry     bool // Addition left the word range.
	Remainder bool // Product did not fit, or division left a remainder.
}

// Any reports whether either flag is set.
func (fl Flags) Any() bool {
	return fl.Carry || fl.Remainder
}

func (fl Flags) String() string {
	text := []byte("--")
	if fl.Carry {
		text[0] = 'C'
	}
	if fl.Remainder {
		text[1] = 'R'
	}
	return string(text)
}

// Result of a checked operation.
type Result struct {
	Value word.Word // Result, or the substituted value on error.
	Flags Flags     // Condition flags raised by the operation.
	Code  Code      // Error condition, None on success.
	Rem   word.Word // Division remainder, zero for other operations.
}

// Failed is the pass/fail summary of the result alone.
func (r Result) Failed() bool {
	return Failed(r.Code, r.Flags)
}

func (r Result) String() string {
	return fmt.Sprintf("%d [%v] %v", int16(r.Value), r.Flags, r.Code.String())
}

// Failed combines an error code and the condition flags into a single
// status: true when any error or flag is present.
func Failed(code Code, flags Flags) bool {
	return code != None || flags.Any()
}
