package interp

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ucmon/io"
)

// Memory is the byte-addressable memory backend.
type Memory io.Memory

// Device is a single I/O port device.
type Device io.Device

// Console is the text output backend.
type Console io.Console

// Clock is the cycle-delay backend.
type Clock io.Clock

// PORT_COUNT is the number of addressable I/O ports.
const PORT_COUNT = 256

var _machine_defines = map[string]string{
	"PORT_COUNT": fmt.Sprintf("%v", PORT_COUNT),
}

// Machine is one interpreter instance. The registers persist for the
// lifetime of the Machine and are never reset between runs; the
// instruction pointer and loop state live only for one Run.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	// Interactive selects the quit instruction's behavior: an
	// interactive machine surfaces a quit request to its caller, a
	// one-shot machine treats quit as a no-op.
	Interactive bool

	A uint16 // Accumulator.
	U uint8  // Port register.
	M uint16 // Memory pointer register.
	K uint8  // Loop counter register.

	Memory  Memory  // Memory backend; nil reads 0 and drops writes.
	Console Console // Text output backend; nil drops output.
	Clock   Clock   // Delay backend; nil makes delay a no-op.

	// Exec is the call instruction's hand-off into externally addressed
	// code. With a nil Exec the call instruction is a diagnostic error.
	Exec func(addr uint16) error

	ports [PORT_COUNT]Device

	// Per-run state.
	program   []byte
	ip        int
	state     State
	looping   bool
	bodyStart int
	bodyEnd   int
}

// NewMachine creates a new machine with all registers at zero and no
// backends attached.
func NewMachine() (m *Machine) {
	m = &Machine{}

	return
}

// Defines for the machine
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// String returns the current register state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("A=%04X U=%02X M=%04X K=%02X state=%v",
		m.A, m.U, m.M, m.K, m.state)

	return
}

// State returns the run state left behind by the last Run.
func (m *Machine) State() State {
	return m.state
}

// SetPort binds a port index to a device. A nil device unbinds the port.
func (m *Machine) SetPort(port uint8, dev Device) {
	m.ports[port] = dev
}

// GetPort gets the device bound to a port index.
func (m *Machine) GetPort(port uint8) (dev Device) {
	dev = m.ports[port]

	return
}

// Run interprets one program buffer to completion. Interpretation stops
// at the end of the buffer, at a NUL byte, on the quit instruction, on a
// call hand-off, or on the first diagnostic. quit is true when an
// interactive machine executed the quit instruction.
func (m *Machine) Run(program string) (quit bool, err error) {
	m.program = []byte(program)
	m.ip = 0
	m.state = STATE_RUNNING
	m.looping = false

	for m.state == STATE_RUNNING {
		quit, err = m.step()
		if err != nil {
			m.state = STATE_ERROR
		}
	}

	if m.Verbose {
		log.Printf("interp: %v", m)
	}

	return
}

// step reads and dispatches a single instruction character.
func (m *Machine) step() (quit bool, err error) {
	if m.ip >= len(m.program) || m.program[m.ip] == 0 {
		m.state = STATE_HALTED
		return
	}

	ins := m.program[m.ip]

	// Handlers see the IP already past the instruction character.
	m.ip++

	if m.Verbose {
		log.Printf("interp: %04x: %q %v", m.ip-1, ins, m)
	}

	if ins >= '0' && ins <= '9' {
		m.number(ins)
		return
	}

	switch ins {
	case ' ', '\t', '\n':
		// whitespace
	case OP_PORT_SET, OP_PORT_SET_ALT:
		m.U = uint8(m.A)
	case OP_PORT_GET:
		m.A = uint16(m.U)
	case OP_CLEAR:
		m.A = 0
	case OP_MEMPTR_SET:
		m.M = m.A
	case OP_MEMPTR_GET:
		m.A = m.M
	case OP_COUNT_SET:
		m.K = uint8(m.A)
	case OP_COUNT_GET:
		m.A = uint16(m.K)
	case OP_RAM_READ:
		if m.Memory != nil {
			m.A = uint16(m.Memory.Read(m.M))
		} else {
			m.A = 0
		}
		m.M++
	case OP_RAM_WRITE:
		if m.Memory != nil {
			m.Memory.Write(m.M, byte(m.A))
		}
		m.M++
	case OP_INPUT:
		m.A = uint16(m.portIn(m.U))
	case OP_OUTPUT:
		m.portOut(m.U, byte(m.A))
	case OP_CALL:
		if m.Exec == nil {
			err = ErrCallUnsupported
			return
		}
		err = m.Exec(m.M)
		if err != nil {
			return
		}
		// The called code returns to the top-level re-entry point,
		// not to the character after the call.
		m.state = STATE_HALTED
	case OP_DELAY:
		if m.Clock != nil {
			m.Clock.Delay(m.A)
		}
	case OP_PRINT_WORD:
		m.emitString(fmt.Sprintf("%04X", m.A))
	case OP_PRINT_BYTE:
		m.emitString(fmt.Sprintf("%02X", byte(m.A)))
	case OP_PRINT_CHAR:
		m.emitChar(byte(m.A))
	case OP_NEWLINE:
		m.newline()
	case OP_QUIT:
		if m.Interactive {
			quit = true
			m.state = STATE_HALTED
		}
	case OP_STRING:
		err = m.literal()
	case OP_LOOP_START:
		err = m.loopStart()
	case OP_LOOP_END:
		err = m.loopEnd()
	default:
		err = ErrBadInstruction(ins)
	}

	return
}

// number consumes the maximal run of decimal digits starting with the
// digit already dispatched and overwrites the accumulator with its
// value. Overflow wraps silently at 16 bits.
func (m *Machine) number(first byte) {
	value := uint16(first - '0')

	for m.ip < len(m.program) {
		c := m.program[m.ip]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + uint16(c-'0')
		m.ip++
	}

	m.A = value
}

// literal emits the text up to the next string delimiter. The closing
// delimiter is consumed and not printed.
func (m *Machine) literal() (err error) {
	start := m.ip

	for m.ip < len(m.program) && m.program[m.ip] != 0 {
		if m.program[m.ip] == OP_STRING {
			m.emitString(string(m.program[start:m.ip]))
			m.ip++
			return
		}
		m.ip++
	}

	err = ErrStringUnterminated
	return
}

// loopStart handles '{'. The body bounds are recorded once; the
// loop-back jump is O(1) thereafter. A second '{' before the matching
// '}' is an explicit error, not the source's undefined behavior.
func (m *Machine) loopStart() (err error) {
	if m.looping {
		err = ErrLoopNested
		return
	}

	end := -1
	for n := m.ip; n < len(m.program) && m.program[n] != 0; n++ {
		if m.program[n] == OP_LOOP_START {
			err = ErrLoopNested
			return
		}
		if m.program[n] == OP_LOOP_END {
			end = n
			break
		}
	}
	if end < 0 {
		err = ErrLoopUnterminated
		return
	}

	if m.K == 0 {
		// Skip the body entirely.
		m.ip = end + 1
		return
	}

	m.K--
	m.looping = true
	m.bodyStart = m.ip
	m.bodyEnd = end
	return
}

// loopEnd handles '}'. K was already decremented for the iteration that
// just finished; K == 0 means the body is done.
func (m *Machine) loopEnd() (err error) {
	if !m.looping {
		err = ErrLoopUnmatched
		return
	}

	if m.K == 0 {
		m.looping = false
		m.ip = m.bodyEnd + 1
		return
	}

	m.K--
	m.ip = m.bodyStart
	return
}

// portIn reads a byte from the device bound to port. An unbound port
// reads 0.
func (m *Machine) portIn(port uint8) (value byte) {
	dev := m.ports[port]
	if dev == nil {
		if m.Verbose {
			log.Printf("interp: port %02x: unbound read", port)
		}
		return
	}

	value = dev.In()
	return
}

// portOut writes a byte to the device bound to port. An unbound port
// drops the write.
func (m *Machine) portOut(port uint8, value byte) {
	dev := m.ports[port]
	if dev == nil {
		if m.Verbose {
			log.Printf("interp: port %02x: unbound write 0x%02x", port, value)
		}
		return
	}

	dev.Out(value)
}

func (m *Machine) emitChar(value byte) {
	if m.Console == nil {
		return
	}
	m.Console.EmitChar(value)
}

func (m *Machine) emitString(text string) {
	if m.Console == nil {
		return
	}
	m.Console.EmitString(text)
}

func (m *Machine) newline() {
	if m.Console == nil {
		return
	}
	m.Console.Newline()
}
