package alu

import (
	"github.com/ezrec/word16/word"
)

// Clamp value into [lo, hi]. An inverted range (lo > hi) has no
// valid value; it yields the zero sentinel with InvalidInput.
func Clamp(value, lo, hi word.Word) (r Result) {
	switch {
	case lo > hi:
		r.Code = InvalidInput
	case value < lo:
		r.Value = lo
	case value > hi:
		r.Value = hi
	default:
		r.Value = value
	}
	return
}

// ValidateRange rejects value when outside [lo, hi], substituting the
// zero sentinel and reporting UnderRange or OverRange. An inverted range
// reports InvalidInput.
func ValidateRange(value, lo, hi word.Word) (r Result) {
	switch {
	case lo > hi:
		r.Code = InvalidInput
	case value < lo:
		r.Code = UnderRange
	case value > hi:
		r.Code = OverRange
	default:
		r.Value = value
	}
	return
}

// FixedMultiply computes (a * b) / scale with a wide intermediate, for
// fixed point values scaled by scale (1000 for three decimal digits).
// Truncation by the scale is not an error. A zero scale yields the zero
// sentinel with DivideByZero; a scaled result out of range saturates.
func FixedMultiply(a, b, scale word.Word) (r Result) {
	if scale == 0 {
		r.Code = DivideByZero
		return
	}

	scaled := (int64(a) * int64(b)) / int64(scale)
	if !word.Fits(scaled) {
		return saturated(Flags{Remainder: true})
	}

	r.Value = word.Word(scaled)
	return
}
