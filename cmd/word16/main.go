// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.starlark.net/starlark"

	"github.com/ezrec/word16/debug"
	"github.com/ezrec/word16/machine"
	"github.com/ezrec/word16/script"
	"github.com/ezrec/word16/translate"
)

func main() {
	var input string
	var expr string
	var verbose bool
	var trace bool
	var limit int
	var nowait bool
	var dump bool

	flag.StringVar(&input, "i", "", ".star script to run")
	flag.StringVar(&expr, "e", "", "Expression to evaluate")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&trace, "t", false, "Enable call tracing")
	flag.IntVar(&limit, "l", 0, "Break every N operations")
	flag.BoolVar(&nowait, "b", false, "Report breakpoints without waiting for a key")
	flag.BoolVar(&dump, "s", false, "Print machine state when done")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(input) == 0 && len(expr) == 0 {
		log.Fatalf("%v: one of -i or -e is required", os.Args[0])
	}

	if verbose {
		log.Printf("word16: messages in %v", translate.Language())
	}

	var gate debug.Gate
	if !nowait {
		gate = newKeyGate(os.Stdin)
	}

	m := machine.NewMachine(os.Stdout, gate)
	m.Verbose = verbose
	m.Alu.Verbose = verbose
	m.Debug.Verbose = verbose
	m.Debug.Tracer.Enabled = trace
	m.Debug.Counter.Limit = limit

	sc := script.NewScript(m, os.Stdout)
	sc.Verbose = verbose

	if len(input) != 0 {
		_, err := sc.Exec(input, nil)
		if err != nil {
			var evalErr *starlark.EvalError
			if errors.As(err, &evalErr) {
				log.Fatal(evalErr.Backtrace())
			}
			log.Fatalf("%v: %v", input, err)
		}
	}

	if len(expr) != 0 {
		value, err := sc.Eval(expr)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%v\n", value)
	}

	if dump {
		fmt.Print(m.String())
	}

	if err := m.Err(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
