package interp

import (
	"errors"

	"github.com/ezrec/ucmon/translate"
)

var f = translate.From

var (
	// Loop errors
	ErrLoopNested       = errors.New(f("loop nested"))
	ErrLoopUnterminated = errors.New(f("loop unterminated"))
	ErrLoopUnmatched    = errors.New(f("loop end without loop start"))

	// Other diagnostics
	ErrStringUnterminated = errors.New(f("string unterminated"))
	ErrCallUnsupported    = errors.New(f("call unsupported"))
)

// ErrBadInstruction names an unrecognized instruction character.
type ErrBadInstruction byte

func (eb ErrBadInstruction) Error() string {
	return f("bad instruction '%c' (0x%02x)", rune(eb), byte(eb))
}

func (eb ErrBadInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrBadInstruction)
	return
}
