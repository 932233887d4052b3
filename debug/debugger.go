package debug

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/word"
)

// Gate is the host input a suspended breakpoint waits on. Any byte
// continues execution.
type Gate io.ByteReader

// Debugger bundles the diagnostics of one host.
type Debugger struct {
	Verbose bool      // Set to log suspensions.
	Output  io.Writer // Diagnostic sink, io.Discard when nil.
	Gate    Gate      // Continue signal, nil to never suspend.

	Tracer  Tracer
	Watcher Watcher
	Counter Counter

	Breaks int // Number of breakpoints hit.
}

// NewDebugger creates a debugger writing to out and suspending on gate.
func NewDebugger(out io.Writer, gate Gate) (dbg *Debugger) {
	dbg = &Debugger{
		Output: out,
		Gate:   gate,
	}

	return
}

func (dbg *Debugger) output() io.Writer {
	if dbg.Output == nil {
		return io.Discard
	}
	return dbg.Output
}

// Reset watch records, trace depth, and counters.
func (dbg *Debugger) Reset() {
	dbg.Tracer.Reset()
	dbg.Watcher.Reset()
	dbg.Counter.Reset()
	dbg.Breaks = 0
}

// Suspend reports reason, then blocks until the gate delivers a byte.
func (dbg *Debugger) Suspend(reason string) (err error) {
	dbg.Breaks++
	fmt.Fprintf(dbg.output(), "break: %s\n", reason)

	if dbg.Gate == nil {
		return
	}

	if dbg.Verbose {
		log.Printf("debug: suspended: %v", reason)
	}

	_, err = dbg.Gate.ReadByte()
	if err != nil {
		err = errors.Join(ErrGate, err)
		return
	}

	if dbg.Verbose {
		log.Printf("debug: continue")
	}
	return
}

// BreakIf suspends when value exceeds threshold.
func (dbg *Debugger) BreakIf(value, threshold word.Word) (hit bool, err error) {
	if value <= threshold {
		return
	}

	hit = true
	err = dbg.Suspend(fmt.Sprintf("%d > %d", int16(value), int16(threshold)))
	return
}

// CountOperation counts one operation, and suspends when the counter
// limit is reached.
func (dbg *Debugger) CountOperation() (hit bool, err error) {
	if !dbg.Counter.Count() {
		return
	}

	hit = true
	err = dbg.Suspend(fmt.Sprintf("%d operations", dbg.Counter.Limit))
	return
}

// Watch polls name and reports any change to the output.
func (dbg *Debugger) Watch(name string, current word.Word) (change Change, ok bool) {
	change, ok = dbg.Watcher.Watch(name, current)
	if ok {
		fmt.Fprintf(dbg.output(), "watch: %s %d -> %d\n", name, int16(change.Old), int16(change.New))
	}
	return
}

// TraceEnter and TraceExit trace to the debugger Output, whatever the
// Tracer's own Output was set to.
func (dbg *Debugger) TraceEnter(name string) {
	dbg.Tracer.Output = dbg.output()
	dbg.Tracer.Enter(name)
}

func (dbg *Debugger) TraceExit(name string) {
	dbg.Tracer.Output = dbg.output()
	dbg.Tracer.Exit(name)
}

// PrintStack writes the depth and contents of the stack, top first.
func (dbg *Debugger) PrintStack(s Stack) (err error) {
	values := DumpStack(s)
	_, err = fmt.Fprintf(dbg.output(), "stack: depth %d\n", len(values))
	if err != nil {
		return
	}

	return Print(dbg.output(), slices.All(values))
}

// PrintMemory writes length words of memory starting at base.
func (dbg *Debugger) PrintMemory(m Memory, base, length int) error {
	return Print(dbg.output(), MemoryDump(m, base, length))
}

// PrintTable writes every entry of a lookup table.
func (dbg *Debugger) PrintTable(table alu.Table) error {
	return Print(dbg.output(), ArrayDump(table))
}
