// Package io provides the backend devices for the μCMON monitor.
// It includes the byte-addressable memory backend (Ram), the text console
// (Term), the cycle-delay clock (SleepClock), and a Starlark-scripted
// port device (Script).
//
// All backends are synchronous and never fail from the interpreter's point
// of view; devices with a real failure mode log it and carry on.
package io

// Memory is a byte-addressable storage backend covering a 16-bit
// address space.
type Memory interface {
	// Read returns the byte stored at addr.
	Read(addr uint16) (value byte)
	// Write stores value at addr.
	Write(addr uint16, value byte)
}

// Device is a single I/O port.
type Device interface {
	// In reads one byte from the port.
	In() (value byte)
	// Out writes one byte to the port.
	Out(value byte)
}

// Console is the text output backend.
type Console interface {
	// EmitChar emits a single raw character.
	EmitChar(value byte)
	// EmitString emits text verbatim.
	EmitString(text string)
	// Newline emits the backend's line ending.
	Newline()
}

// Clock is the cycle-delay backend.
type Clock interface {
	// Delay pauses for roughly the given number of machine cycles.
	Delay(cycles uint16)
}
