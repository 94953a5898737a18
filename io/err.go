package io

import (
	"errors"

	"github.com/ezrec/ucmon/translate"
)

var f = translate.From

var (
	// Device errors
	ErrExecUnsupported = errors.New(f("exec unsupported"))
)

// ErrScriptSymbol indicates a script symbol that is not callable.
type ErrScriptSymbol string

func (err ErrScriptSymbol) Error() string {
	return f("script symbol %v is not callable", string(err))
}
