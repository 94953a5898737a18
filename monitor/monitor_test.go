// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucmon/interp"
	"github.com/ezrec/ucmon/io"
)

// testMonitor builds a monitor with its console captured into a buffer.
func testMonitor() (mon *Monitor, output *bytes.Buffer) {
	mon = NewMonitor()
	output = &bytes.Buffer{}
	mon.Term.Output = output

	return
}

func TestRunOnce(t *testing.T) {
	assert := assert.New(t)

	mon, output := testMonitor()

	err := mon.RunOnce("c42p")
	assert.NoError(err)
	assert.Equal("002A", output.String())
}

func TestRunOnceQuit(t *testing.T) {
	assert := assert.New(t)

	// One-shot mode treats quit as a no-op.
	mon, output := testMonitor()

	err := mon.RunOnce("q _still here_")
	assert.NoError(err)
	assert.Equal("still here", output.String())
}

func TestRunOncePersistence(t *testing.T) {
	assert := assert.New(t)

	mon, output := testMonitor()

	assert.NoError(mon.RunOnce("42"))
	assert.NoError(mon.RunOnce("p"))
	assert.Equal("002A", output.String())
}

func TestRunOnceDiagnostic(t *testing.T) {
	assert := assert.New(t)

	mon, _ := testMonitor()

	err := mon.RunOnce("c5z")
	assert.Error(err)
	assert.ErrorIs(err, interp.ErrBadInstruction('z'))

	var ep *ErrProgram
	assert.ErrorAs(err, &ep)
	assert.Equal("c5z", ep.Program)
}

func TestRunOnceRam(t *testing.T) {
	assert := assert.New(t)

	mon, _ := testMonitor()

	err := mon.RunOnce("65m 72w 73w")
	assert.NoError(err)
	assert.Equal(byte(72), mon.Ram.Data[65])
	assert.Equal(byte(73), mon.Ram.Data[66])
}

func TestRunOnceExec(t *testing.T) {
	assert := assert.New(t)

	mon, _ := testMonitor()

	// The machine's exec hand-off is wired to the RAM backend, so a
	// call with no OnExec hook surfaces the backend's diagnostic.
	err := mon.RunOnce("8mg")
	assert.ErrorIs(err, io.ErrExecUnsupported)
	assert.NotErrorIs(err, interp.ErrCallUnsupported)

	var ep *ErrProgram
	assert.ErrorAs(err, &ep)

	var called []uint16
	mon.Ram.OnExec = func(addr uint16) error {
		called = append(called, addr)
		return nil
	}

	err = mon.RunOnce("8mg")
	assert.NoError(err)
	assert.Equal([]uint16{8}, called)
}

func TestRepl(t *testing.T) {
	assert := assert.New(t)

	mon, output := testMonitor()
	mon.Term.Input = strings.NewReader("c42p\nn\nq\n")

	err := mon.Repl()
	assert.NoError(err)
	assert.Equal("002A\n", output.String())
}

func TestReplRecovery(t *testing.T) {
	assert := assert.New(t)

	// A diagnostic stops the line, not the REPL; registers survive.
	mon, output := testMonitor()
	mon.Term.Input = strings.NewReader("c5z\npq\n")

	err := mon.Repl()
	assert.NoError(err)
	assert.Contains(output.String(), "z")
	assert.Contains(output.String(), "0005")
}

func TestReplEof(t *testing.T) {
	assert := assert.New(t)

	// End of input without quit ends the REPL cleanly.
	mon, output := testMonitor()
	mon.Term.Input = strings.NewReader("_Hi_\n")

	err := mon.Repl()
	assert.NoError(err)
	assert.Equal("Hi", output.String())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	mon, _ := testMonitor()

	defines := map[string]string{}
	for key, value := range mon.Defines() {
		defines[key] = value
	}
	assert.Equal("65536", defines["RAM_SIZE"])
	assert.Equal("256", defines["PORT_COUNT"])
}
