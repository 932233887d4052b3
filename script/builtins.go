package script

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/debug"
	"github.com/ezrec/word16/word"
)

type builtinFunc func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// counted counts the operation before returning value.
func (s *Script) counted(fn *starlark.Builtin, value starlark.Value) (starlark.Value, error) {
	_, err := s.Machine.Debug.CountOperation()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return value, nil
}

// words unpacks exactly count word arguments.
func words(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, count int) (ws []word.Word, err error) {
	ns := make([]int, count)
	ptrs := make([]any, count)
	for n := range ns {
		ptrs[n] = &ns[n]
	}

	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, count, ptrs...)
	if err != nil {
		return
	}

	ws, err = asWords(ns...)
	if err != nil {
		err = fmt.Errorf("%v: %w", fn.Name(), err)
	}
	return
}

// binary returns the value of a checked two operand operation.
func (s *Script) binary(op func(a, b word.Word) alu.Result) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		ws, err := words(fn, args, kwargs, 2)
		if err != nil {
			return nil, err
		}
		return s.counted(fn, wordValue(op(ws[0], ws[1]).Value))
	}
}

// unchecked returns the value of an unchecked two operand operation.
func (s *Script) unchecked(op func(a, b word.Word) word.Word) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		ws, err := words(fn, args, kwargs, 2)
		if err != nil {
			return nil, err
		}
		return s.counted(fn, wordValue(op(ws[0], ws[1])))
	}
}

// ranged returns the (value, code) of a bounds operation.
func (s *Script) ranged(op func(value, lo, hi word.Word) alu.Result) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		ws, err := words(fn, args, kwargs, 3)
		if err != nil {
			return nil, err
		}
		return s.counted(fn, resultTuple(op(ws[0], ws[1], ws[2])))
	}
}

// stackOps are the operations apply() runs on the top two stack
// entries. Division stays with div(), which keeps the remainder.
var stackOps = map[string]func(a, b word.Word) alu.Result{
	"add": alu.Add,
	"mul": alu.Multiply,
	"avg": alu.Average,
}

func (s *Script) builtins() []*starlark.Builtin {
	m := s.Machine
	u := &m.Alu

	fns := map[string]builtinFunc{
		// Checked arithmetic.
		"add": s.binary(u.Add),
		"mul": s.binary(u.Multiply),
		"div": s.binary(u.Divide),
		"avg": s.binary(u.Average),
		"fixed_mul": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			ws, err := words(fn, args, kwargs, 3)
			if err != nil {
				return nil, err
			}
			return s.counted(fn, wordValue(u.FixedMultiply(ws[0], ws[1], ws[2]).Value))
		},
		"rem": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return wordValue(u.Remainder()), nil
		},

		// Fast, unchecked arithmetic.
		"add_fast": s.unchecked(u.AddUnchecked),
		"avg_fast": s.unchecked(u.AverageUnchecked),
		"shl": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var value, n int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &value, &n); err != nil {
				return nil, err
			}
			w, err := asWord(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%v: %w", fn.Name(), ErrWordRange)
			}
			return s.counted(fn, wordValue(u.ShiftLeft(w, uint(n))))
		},
		"bit": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var value, n int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &value, &n); err != nil {
				return nil, err
			}
			w, err := asWord(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%v: %w", fn.Name(), ErrWordRange)
			}
			return s.counted(fn, starlark.Bool(u.TestBit(w, uint(n))))
		},

		// Range and tables.
		"clamp":    s.ranged(u.Clamp),
		"validate": s.ranged(u.ValidateRange),
		"table": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) != 0 {
				return nil, fmt.Errorf("%v: unexpected keyword arguments", fn.Name())
			}
			values := make([]word.Word, len(args))
			for n, arg := range args {
				i, err := starlark.AsInt32(arg)
				if err == nil {
					values[n], err = asWord(i)
				}
				if err != nil {
					return nil, fmt.Errorf("%v: %w", fn.Name(), err)
				}
			}
			return &tableValue{table: alu.NewTable(values...)}, nil
		},
		"lookup": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var tv *tableValue
			var index int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &tv, &index); err != nil {
				return nil, err
			}
			return s.counted(fn, resultTuple(u.Lookup(tv.table, index)))
		},

		// Error register and status.
		"error": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(u.Registry.Get())), nil
		},
		"error_legacy": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			code := u.Registry.Get()
			return starlark.Tuple{wordValue(code.Legacy()), starlark.Bool(code.Ambiguous())}, nil
		},
		"set_error": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var code int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &code); err != nil {
				return nil, err
			}
			if code < int(alu.None) || code > int(alu.BoundsError) {
				return nil, fmt.Errorf("%v: code %d unknown", fn.Name(), code)
			}
			u.Registry.Set(alu.Code(code))
			return starlark.None, nil
		},
		"clear": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			u.Registry.Clear()
			return starlark.None, nil
		},
		"status": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.Bool(m.Status()), nil
		},
		"flags": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.Tuple{starlark.Bool(u.Flags.Carry), starlark.Bool(u.Flags.Remainder)}, nil
		},

		// Host stack, memory and registers.
		"push": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			ws, err := words(fn, args, kwargs, 1)
			if err != nil {
				return nil, err
			}
			if err = m.Push(ws[0]); err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return starlark.None, nil
		},
		"pop": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			value, err := m.Pop()
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return wordValue(value), nil
		},
		"pick": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var depth int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &depth); err != nil {
				return nil, err
			}
			if err := m.Pick(depth); err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return starlark.None, nil
		},
		"apply": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
				return nil, err
			}
			op, ok := stackOps[name]
			if !ok {
				return nil, fmt.Errorf("%v: operation %v unknown", fn.Name(), name)
			}
			r, err := m.Apply(name, op)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return resultTuple(r), nil
		},
		"depth": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.MakeInt(debug.StackDepth(&m.Stack)), nil
		},
		"stack": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			var elems []starlark.Value
			for _, value := range debug.DumpStack(&m.Stack) {
				elems = append(elems, wordValue(value))
			}
			return starlark.NewList(elems), nil
		},
		"get": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
				return nil, err
			}
			value, ok := m.Registers.Get(name)
			if !ok {
				return nil, fmt.Errorf("%v: register %v unknown", fn.Name(), name)
			}
			return wordValue(value), nil
		},
		"set": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			var n int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &name, &n); err != nil {
				return nil, err
			}
			value, err := asWord(n)
			if err == nil {
				err = m.Registers.Set(name, value)
			}
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return starlark.None, nil
		},
		"load_word": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr); err != nil {
				return nil, err
			}
			value, ok := m.Memory.Load(addr)
			if !ok {
				return nil, fmt.Errorf("%v: %w", fn.Name(), word.ErrAddressRange)
			}
			return wordValue(value), nil
		},
		"store_word": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr, n int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &addr, &n); err != nil {
				return nil, err
			}
			value, err := asWord(n)
			if err == nil {
				err = m.Memory.Store(addr, value)
			}
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return starlark.None, nil
		},

		// Snapshots.
		"capture": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) != 0 {
				return nil, fmt.Errorf("%v: unexpected keyword arguments", fn.Name())
			}
			names := make([]string, len(args))
			for n, arg := range args {
				name, ok := starlark.AsString(arg)
				if !ok {
					return nil, fmt.Errorf("%v: got %v, want string", fn.Name(), arg.Type())
				}
				names[n] = name
			}
			snap, err := m.Capture(names...)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return &snapshotValue{snap: snap}, nil
		},
		"captured": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var sv *snapshotValue
			var name string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &sv, &name); err != nil {
				return nil, err
			}
			value, ok := sv.snap.Value(name)
			if !ok {
				return nil, fmt.Errorf("%v: register %v not in %v", fn.Name(), name, sv)
			}
			return wordValue(value), nil
		},
		"restore": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var sv *snapshotValue
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &sv); err != nil {
				return nil, err
			}
			restored, err := m.Recover(sv.snap)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return starlark.Bool(restored), nil
		},

		// Diagnostics.
		"watch": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			var n int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &name, &n); err != nil {
				return nil, err
			}
			value, err := asWord(n)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			change, ok := m.Debug.Watch(name, value)
			if !ok {
				return starlark.None, nil
			}
			return starlark.Tuple{wordValue(change.Old), wordValue(change.New)}, nil
		},
		"trace": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var enabled bool
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &enabled); err != nil {
				return nil, err
			}
			m.Debug.Tracer.Enabled = enabled
			return starlark.None, nil
		},
		"enter": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
				return nil, err
			}
			m.Debug.TraceEnter(name)
			return starlark.None, nil
		},
		"exit": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
				return nil, err
			}
			m.Debug.TraceExit(name)
			return starlark.None, nil
		},
		"break_if": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			ws, err := words(fn, args, kwargs, 2)
			if err != nil {
				return nil, err
			}
			hit, err := m.Debug.BreakIf(ws[0], ws[1])
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return starlark.Bool(hit), nil
		},
		"count": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			hit, err := m.Debug.CountOperation()
			if err != nil {
				return nil, fmt.Errorf("%v: %w", fn.Name(), err)
			}
			return starlark.Bool(hit), nil
		},
		"ops": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			c := &m.Debug.Counter
			return starlark.Tuple{starlark.MakeInt(c.Pending()), starlark.MakeInt(c.Total())}, nil
		},
		"dump": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var base, length int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &base, &length); err != nil {
				return nil, err
			}
			return starlark.None, m.Debug.PrintMemory(&m.Memory, base, length)
		},
		"dump_stack": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.None, m.Debug.PrintStack(&m.Stack)
		},
		"dump_table": func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var tv *tableValue
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &tv); err != nil {
				return nil, err
			}
			return starlark.None, m.Debug.PrintTable(tv.table)
		},
	}

	list := make([]*starlark.Builtin, 0, len(fns))
	for name, fn := range fns {
		list = append(list, starlark.NewBuiltin(name, fn))
	}
	return list
}
