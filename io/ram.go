package io

import (
	"fmt"
	"iter"
	"maps"
)

// RAM_SIZE is the size of the memory backend. The full 16-bit address
// space is physically addressable, so there is no out-of-range address.
const RAM_SIZE = 0x10000

var _ram_defines = map[string]string{
	"RAM_SIZE": fmt.Sprintf("%v", RAM_SIZE),
}

// Ram is the byte-addressable memory backend.
//
// OnExec, when set, gives the backend an execute-at-address capability;
// the interpreter's call instruction hands control off through it.
type Ram struct {
	Data   [RAM_SIZE]byte
	OnExec func(addr uint16) error
}

var _ Memory = (*Ram)(nil)

// Defines returns an iter of defines for the backend.
func (rm *Ram) Defines() iter.Seq2[string, string] {
	return maps.All(_ram_defines)
}

// Read returns the byte stored at addr.
func (rm *Ram) Read(addr uint16) (value byte) {
	value = rm.Data[addr]
	return
}

// Write stores value at addr.
func (rm *Ram) Write(addr uint16, value byte) {
	rm.Data[addr] = value
}

// Exec transfers control to the code at addr.
// Returns ErrExecUnsupported when no OnExec hook is installed.
func (rm *Ram) Exec(addr uint16) (err error) {
	if rm.OnExec == nil {
		err = ErrExecUnsupported
		return
	}

	err = rm.OnExec(addr)
	return
}
