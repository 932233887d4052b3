// Package debug provides the diagnostic layer of a host: stack
// inspection, variable watches, call tracing, breakpoints, an operation
// counter, and memory and table dumps.
//
// Diagnostics observe host state; they never change arithmetic results
// or the contents of the host stack. All observation is poll based: a
// watch is only evaluated when Watch is called.
//
// The only suspension point is a breakpoint. It blocks the calling
// goroutine on the Gate until a byte arrives, with no timeout. A
// Debugger with no Gate reports breakpoints and continues.
//
// A Debugger is not safe for concurrent use.
package debug
