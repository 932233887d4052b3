// Package alu implements checked 16-bit arithmetic.
//
// Every operation returns a Result: the value, the Carry and Remainder
// condition flags, and an error Code. Out of range results are never
// wrapped. They are replaced by a degraded value (saturated maximum,
// zero sentinel, or clamped bound) and the condition is reported through
// the Code and Flags for the caller to poll.
//
// The package level functions are pure. A Unit holds the error register,
// the flags of the most recent operation, and the last division
// remainder, and is the context a host embeds. A Unit is not safe for
// concurrent use; a multi-threaded host must serialize access to it.
package alu
