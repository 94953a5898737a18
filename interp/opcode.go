package interp

import (
	"fmt"
)

// Instruction characters. The set is case sensitive; upper and lower
// forms of the same letter are distinct instructions.
const (
	OP_PORT_SET     = byte('#') // accumulator -> port register
	OP_PORT_SET_ALT = byte('u') // accumulator -> port register (synonym)
	OP_PORT_GET     = byte('U') // port register -> accumulator
	OP_CLEAR        = byte('c') // clear accumulator
	OP_CALL         = byte('g') // call through the memory pointer
	OP_DELAY        = byte('h') // delay accumulator cycles
	OP_INPUT        = byte('i') // port input -> accumulator
	OP_OUTPUT       = byte('o') // accumulator -> port output
	OP_COUNT_SET    = byte('k') // accumulator -> loop counter
	OP_COUNT_GET    = byte('K') // loop counter -> accumulator
	OP_MEMPTR_SET   = byte('m') // accumulator -> memory pointer
	OP_MEMPTR_GET   = byte('M') // memory pointer -> accumulator
	OP_NEWLINE      = byte('n') // emit newline
	OP_PRINT_WORD   = byte('p') // accumulator as 4-digit hex
	OP_PRINT_BYTE   = byte('P') // accumulator low byte as 2-digit hex
	OP_QUIT         = byte('q') // quit (interactive) / no-op (one-shot)
	OP_RAM_READ     = byte('r') // ram[M] -> accumulator, M++
	OP_RAM_WRITE    = byte('w') // accumulator low byte -> ram[M], M++
	OP_PRINT_CHAR   = byte('x') // accumulator low byte as character
	OP_STRING       = byte('_') // literal text delimiter
	OP_LOOP_START   = byte('{') // loop start, governed by K
	OP_LOOP_END     = byte('}') // loop end
)

// State is the run state of the dispatch loop.
type State int

const (
	STATE_RUNNING = State(0) // Interpreting the current buffer.
	STATE_HALTED  = State(1) // Clean end of buffer, quit, or call hand-off.
	STATE_ERROR   = State(2) // Stopped on a diagnostic.
)

// String returns the state name.
func (st State) String() (text string) {
	switch st {
	case STATE_RUNNING:
		text = "running"
	case STATE_HALTED:
		text = "halted"
	case STATE_ERROR:
		text = "error"
	default:
		text = fmt.Sprintf("State(%d)", int(st))
	}

	return
}
