// Package script runs Starlark programs against a machine.
//
// Every arithmetic, range, snapshot and diagnostic operation of the
// machine is a predeclared builtin, and the machine defines (WORD_MAX,
// ERR_OVERFLOW, ...) are predeclared integers. Integers passed to
// builtins must fit a word in either the signed or the unsigned view.
//
//	x = add(32767, 1)        # 32767, carry set
//	if error() == ERR_OVERFLOW:
//	    clear()
//	q = div(100, 3)          # 33
//	r = rem()                # 1
//	s = capture("x", "y")
//	restore(s)               # rolls back when status() is true
//	push(6); push(7)
//	apply("mul")             # (42, 0), stack is [42]
//
// Builtins that operate on the machine count toward the debugger's
// operation counter.
package script
