package state

import (
	"errors"

	"github.com/ezrec/word16/translate"
)

var f = translate.From

var (
	ErrRegisterDuplicate = errors.New(f("register duplicated"))
	ErrRegisterName      = errors.New(f("register name invalid"))
)

// ErrRegisterUnknown names a register missing from the store.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register %v unknown", string(err))
}
