// Package interp implements the μCMON character interpreter.
//
// A program is a flat string of single-character instructions executed
// against four registers: the accumulator A (16 bits), the port register
// U (8 bits), the memory pointer M (16 bits, auto-incremented by every
// RAM access), and the loop counter K (8 bits). Decimal literals load
// the accumulator, '{' and '}' repeat a body K times, and '_..._'
// prints literal text.
//
// The interpreter owns only the registers and the dispatch loop. Memory,
// I/O ports, the console, and the delay clock are pluggable backends.
package interp
