package script

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/machine"
	"github.com/ezrec/word16/word"
)

// Script executes Starlark source against a machine.
type Script struct {
	Verbose bool      // If set, log each executed file.
	Output  io.Writer // Destination of print(), discarded when nil.

	Machine *machine.Machine
}

// NewScript creates a script host for m.
func NewScript(m *machine.Machine, out io.Writer) *Script {
	return &Script{
		Machine: m,
		Output:  out,
	}
}

func (s *Script) thread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if s.Output != nil {
				fmt.Fprintln(s.Output, msg)
			}
		},
	}
}

func (s *Script) options() *syntax.FileOptions {
	return &syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}
}

// Predeclared returns the builtins and machine defines.
func (s *Script) Predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}

	for name, value := range s.Machine.Defines() {
		n, err := strconv.Atoi(value)
		if err != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[name] = starlark.MakeInt(n)
	}

	for _, b := range s.builtins() {
		pred[b.Name()] = b
	}

	return
}

// Exec runs a Starlark file. src is as for starlark.ExecFile: a
// filename is read when src is nil.
func (s *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	if s.Verbose {
		log.Printf("script: exec %v", filename)
	}

	globals, err = starlark.ExecFileOptions(s.options(), s.thread(filename), filename, src, s.Predeclared())
	return
}

// Eval evaluates a single expression to a word.
func (s *Script) Eval(expr string) (value word.Word, err error) {
	defer func() {
		if err != nil {
			err = &ErrEval{Expr: expr, Err: err}
		}
	}()

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(s.options(), s.thread("expr"), "expr", prog, s.Predeclared())
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrResult
		return
	}

	n, err := starlark.AsInt32(st_rc)
	if err != nil {
		err = ErrResult
		return
	}

	value, err = asWord(n)
	return
}

// asWord accepts either view of a word.
func asWord(n int) (w word.Word, err error) {
	switch {
	case word.Fits(int64(n)):
		w = word.Word(n)
	case word.FitsUnsigned(int64(n)):
		w = word.FromUnsigned(uint16(n))
	default:
		err = ErrWordRange
	}
	return
}

func asWords(ns ...int) (ws []word.Word, err error) {
	ws = make([]word.Word, len(ns))
	for n, v := range ns {
		ws[n], err = asWord(v)
		if err != nil {
			return
		}
	}
	return
}

func wordValue(w word.Word) starlark.Value {
	return starlark.MakeInt(int(w))
}

func resultTuple(r alu.Result) starlark.Value {
	return starlark.Tuple{wordValue(r.Value), starlark.MakeInt(int(r.Code))}
}
