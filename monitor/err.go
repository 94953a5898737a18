package monitor

import (
	"github.com/ezrec/ucmon/translate"
)

var f = translate.From

// ErrProgram indicates which program buffer a diagnostic stopped.
type ErrProgram struct {
	Program string
	Err     error
}

func (err *ErrProgram) Error() string {
	return f("program '%v' %v", err.Program, err.Err)
}

func (err *ErrProgram) Unwrap() error {
	return err.Err
}
