package machine

import (
	"errors"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/translate"
)

var f = translate.From

var (
	ErrChainEmpty = errors.New(f("chain has no steps"))
)

// ErrStep indicates the step of a chain that left an error in the
// register.
type ErrStep struct {
	Step int
	Code alu.Code
}

func (err *ErrStep) Error() string {
	return f("step %d %v", err.Step, err.Code.String())
}

func (err *ErrStep) Unwrap() error {
	return err.Code
}
