package main

import (
	"bufio"
	"os"

	"golang.org/x/term"
)

// keyGate continues a breakpoint on a single key press. On a terminal
// it switches to raw mode for the duration of the read; otherwise it
// reads one byte of stdin.
type keyGate struct {
	fd    int
	raw   bool
	input *bufio.Reader
}

func newKeyGate(f *os.File) *keyGate {
	return &keyGate{
		fd:    int(f.Fd()),
		raw:   term.IsTerminal(int(f.Fd())),
		input: bufio.NewReader(f),
	}
}

func (kg *keyGate) ReadByte() (b byte, err error) {
	if kg.raw {
		var oldState *term.State
		oldState, err = term.MakeRaw(kg.fd)
		if err != nil {
			return
		}
		defer func() {
			_ = term.Restore(kg.fd, oldState)
		}()
	}

	return kg.input.ReadByte()
}
