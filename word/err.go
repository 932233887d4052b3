package word

import (
	"errors"

	"github.com/ezrec/word16/translate"
)

var f = translate.From

var (
	ErrStackEmpty   = errors.New(f("stack empty"))
	ErrStackFull    = errors.New(f("stack full"))
	ErrStackDepth   = errors.New(f("stack depth out of range"))
	ErrAddressRange = errors.New(f("address out of range"))
)
