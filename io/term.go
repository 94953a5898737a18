package io

import (
	"io"
	"iter"
	"maps"
)

var _term_defines = map[string]string{}

// Term is the terminal backend. It implements Console for the monitor's
// text output, and Device so that a port can be wired straight to the
// terminal's raw byte streams.
type Term struct {
	Input  io.Reader
	Output io.Writer
	Eol    string // Line ending; "\n" when empty.
}

var _ Console = (*Term)(nil)
var _ Device = (*Term)(nil)

// Defines returns an iter of defines for the backend.
func (tm *Term) Defines() iter.Seq2[string, string] {
	return maps.All(_term_defines)
}

// EmitChar emits a single raw character.
func (tm *Term) EmitChar(value byte) {
	if tm.Output == nil {
		return
	}
	tm.Output.Write([]byte{value})
}

// EmitString emits text verbatim.
func (tm *Term) EmitString(text string) {
	if tm.Output == nil {
		return
	}
	io.WriteString(tm.Output, text)
}

// Newline emits the line ending.
func (tm *Term) Newline() {
	eol := tm.Eol
	if eol == "" {
		eol = "\n"
	}
	tm.EmitString(eol)
}

// In reads one raw byte from the input stream. End of input reads as 0.
func (tm *Term) In() (value byte) {
	if tm.Input == nil {
		return
	}

	var one [1]byte
	n, err := tm.Input.Read(one[:])
	if err != nil || n == 0 {
		return
	}
	value = one[0]
	return
}

// Out writes one raw byte to the output stream.
func (tm *Term) Out(value byte) {
	tm.EmitChar(value)
}
