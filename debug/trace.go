package debug

import (
	"fmt"
	"io"
	"strings"
)

// Tracer reports call entry and exit, indented by call depth.
type Tracer struct {
	Enabled bool      // Set to emit trace lines.
	Output  io.Writer // Trace sink.

	depth int
}

// Depth is the current call depth.
func (tr *Tracer) Depth() int {
	return tr.depth
}

func (tr *Tracer) emit(mark string, name string) {
	if !tr.Enabled || tr.Output == nil {
		return
	}
	fmt.Fprintf(tr.Output, "%s%s %s\n", strings.Repeat("  ", tr.depth), mark, name)
}

// Enter reports entry to name, then increases the depth. The depth is
// tracked while disabled so enabling mid call keeps the indentation.
func (tr *Tracer) Enter(name string) {
	tr.emit(">", name)
	tr.depth++
}

// Exit reports the exit at the current depth, then decreases the
// depth, never below zero.
func (tr *Tracer) Exit(name string) {
	tr.emit("<", name)
	if tr.depth > 0 {
		tr.depth--
	}
}

// Reset the depth to zero.
func (tr *Tracer) Reset() {
	tr.depth = 0
}
