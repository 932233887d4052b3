package script

import (
	"errors"

	"github.com/ezrec/word16/translate"
)

var f = translate.From

var (
	ErrWordRange = errors.New(f("value out of word range"))
	ErrResult    = errors.New(f("expression has no integer result"))
)

// ErrEval wraps a failed expression evaluation.
type ErrEval struct {
	Expr string
	Err  error
}

func (err *ErrEval) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrEval) Unwrap() error {
	return err.Err
}
