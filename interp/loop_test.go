package interp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopCount(t *testing.T) {
	assert := assert.New(t)

	// The body executes exactly K0 times and leaves K at 0.
	for _, k0 := range []int{0, 1, 5, 255} {
		name := fmt.Sprintf("k0_%d", k0)

		m, _, _ := testMachine()

		dev := &testPort{}
		m.SetPort(3, dev)

		program := fmt.Sprintf("3# %dk {7o}", k0)
		quit, err := m.Run(program)
		assert.NoError(err, name)
		assert.False(quit, name)
		assert.Equal(k0, len(dev.out), name)
		assert.Equal(uint8(0), m.K, name)
	}
}

func TestLoopCountdown(t *testing.T) {
	assert := assert.New(t)

	// K is decremented before the first body execution, so the body
	// observes K0-1 down to 0.
	m, _, output := testMachine()

	quit, err := m.Run("10k{Kp}")
	assert.NoError(err)
	assert.False(quit)

	expected := ""
	for k := 9; k >= 0; k-- {
		expected += fmt.Sprintf("%04X", k)
	}
	assert.Equal(expected, output.String())
	assert.Equal(uint8(0), m.K)
}

func TestLoopSkip(t *testing.T) {
	assert := assert.New(t)

	// K = 0 skips the body entirely and resumes after the loop end.
	m, _, output := testMachine()

	quit, err := m.Run("c k {_X_} _Y_")
	assert.NoError(err)
	assert.False(quit)
	assert.Equal("Y", output.String())
}

func TestLoopBody(t *testing.T) {
	assert := assert.New(t)

	// Registers mutated in the body persist across iterations.
	m, ram, _ := testMachine()

	// Fill ram[0..4] with 65.
	_, err := m.Run("5k cm {65w}")
	assert.NoError(err)
	for addr := range 5 {
		assert.Equal(byte(65), ram.Data[addr])
	}
	assert.Equal(uint16(5), m.M)
}

func TestLoopErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program string
		err     error
	}){
		{"nested", "2k{{}}", ErrLoopNested},
		{"nested_scan", "2k{x{}}", ErrLoopNested},
		{"unterminated", "2k{x", ErrLoopUnterminated},
		{"unterminated_skip", "ck{x", ErrLoopUnterminated},
		{"unmatched", "}", ErrLoopUnmatched},
		{"unmatched_after", "1k{}}", ErrLoopUnmatched},
	}

	for _, entry := range table {
		m, _, _ := testMachine()

		_, err := m.Run(entry.program)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Equal(STATE_ERROR, m.State(), entry.name)
	}
}

func TestLoopPerRun(t *testing.T) {
	assert := assert.New(t)

	// Loop state does not leak between runs; a '}' on a later buffer
	// has no loop to close even when K survived.
	m, _, _ := testMachine()

	_, err := m.Run("3k{K}")
	assert.NoError(err)

	_, err = m.Run("}")
	assert.ErrorIs(err, ErrLoopUnmatched)
}
