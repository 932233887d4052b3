// Package word implements the 16-bit machine word and the host storage
// that holds it.
//
// A Word is a bit pattern with two views: signed (-32768..32767) and
// unsigned (0..65535). Converting between the views reinterprets the
// bits, it never changes them. The host data stack and word-addressed
// memory are provided here so the arithmetic and diagnostic packages
// have something concrete to observe.
//
// None of the types in this package are safe for concurrent use. The
// host is expected to run a single instruction stream at a time.
package word
