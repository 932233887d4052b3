package alu

import (
	"github.com/ezrec/word16/word"
)

// saturated is the value substituted for every out of range result,
// whatever the sign of the true result.
func saturated(flags Flags) Result {
	return Result{Value: word.MAX, Flags: flags, Code: Overflow}
}

// Add a and b. An out of range sum sets Carry and saturates to MAX.
func Add(a, b word.Word) (r Result) {
	sum := int32(a) + int32(b)
	if !word.Fits(int64(sum)) {
		return saturated(Flags{Carry: true})
	}

	r.Value = word.Word(sum)
	return
}

// AddUnchecked wraps on overflow.
func AddUnchecked(a, b word.Word) word.Word {
	return a + b
}

// Multiply a and b. A product that needs more than 16 bits sets
// Remainder and saturates to MAX.
func Multiply(a, b word.Word) (r Result) {
	product := int32(a) * int32(b)
	if !word.Fits(int64(product)) {
		return saturated(Flags{Remainder: true})
	}

	r.Value = word.Word(product)
	return
}

// Divide truncates toward zero; the remainder takes the sign of the
// dividend. A zero divisor yields the zero sentinel.
func Divide(dividend, divisor word.Word) (r Result) {
	if divisor == 0 {
		r.Code = DivideByZero
		return
	}

	// The one quotient that does not fit.
	if dividend == word.MIN && divisor == -1 {
		return saturated(Flags{})
	}

	r.Value = dividend / divisor
	r.Rem = dividend % divisor
	r.Flags.Remainder = r.Rem != 0
	return
}

// ShiftLeft multiplies by 2^n with a raw shift. There is no overflow
// detection; bits shifted past bit 15 are lost. Use Multiply for a
// checked product.
func ShiftLeft(value word.Word, n uint) word.Word {
	return word.FromUnsigned(value.Unsigned() << n)
}

// TestBit reports whether bit n (0 is least significant) is set.
func TestBit(value word.Word, n uint) bool {
	if n >= word.BITS {
		return false
	}
	return value.Unsigned()&(1<<n) != 0
}

// AverageUnchecked is (a + b) >> 1 in word arithmetic. The sum wraps,
// so the result is wrong whenever a + b leaves the word range.
func AverageUnchecked(a, b word.Word) word.Word {
	return (a + b) >> 1
}

// Average computes (a + b) >> 1 with a wide sum. The midpoint of two
// words is always a word, so this never fails.
func Average(a, b word.Word) (r Result) {
	r.Value = word.Word((int32(a) + int32(b)) >> 1)
	return
}
