package debug

import (
	"errors"

	"github.com/ezrec/word16/translate"
)

var f = translate.From

var (
	ErrGate = errors.New(f("breakpoint gate failed"))
)
