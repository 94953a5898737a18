// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package monitor

import (
	"bufio"
	"iter"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/ucmon/internal"
	"github.com/ezrec/ucmon/interp"
	"github.com/ezrec/ucmon/io"
)

// DEFAULT_PROMPT is printed before each interactive line when the line
// source is a terminal.
const DEFAULT_PROMPT = "* "

// Monitor wires one interpreter to its backends: a 64 KiB RAM, a
// terminal console, and a sleep clock. Register state persists across
// lines and across one-shot runs on the same Monitor.
type Monitor struct {
	Verbose bool // Set to enable verbose logging.
	*interp.Machine

	Ram   io.Ram        // Memory backend.
	Term  io.Term       // Console backend and line source.
	Clock io.SleepClock // Delay backend.
}

// NewMonitor creates a monitor with the console on stdout.
func NewMonitor() (mon *Monitor) {
	mon = &Monitor{
		Machine: interp.NewMachine(),
	}

	mon.Term.Output = os.Stdout

	mon.Machine.Memory = &mon.Ram
	mon.Machine.Console = &mon.Term
	mon.Machine.Clock = &mon.Clock
	mon.Machine.Exec = mon.Ram.Exec

	return
}

// Defines returns an iterator over all of the defines
func (mon *Monitor) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		mon.Machine.Defines(),
		mon.Ram.Defines(),
		mon.Term.Defines(),
	)
}

// RunOnce interprets a single fixed program. The quit instruction is a
// no-op in this mode; there is nothing external to quit back to.
func (mon *Monitor) RunOnce(program string) (err error) {
	mon.Machine.Verbose = mon.Verbose
	mon.Machine.Interactive = false

	_, err = mon.Machine.Run(program)
	if err != nil {
		err = &ErrProgram{Program: program, Err: err}
	}

	return
}

// Repl reads and interprets lines from the terminal input until the quit
// instruction or end of input. A diagnostic stops only the current line;
// the next line starts fresh with the registers intact.
func (mon *Monitor) Repl() (err error) {
	mon.Machine.Verbose = mon.Verbose
	mon.Machine.Interactive = true

	prompt := ""
	if file, ok := mon.Term.Input.(interface{ Fd() uintptr }); ok {
		if term.IsTerminal(int(file.Fd())) {
			prompt = DEFAULT_PROMPT
		}
	}

	scanner := bufio.NewScanner(mon.Term.Input)
	for {
		if prompt != "" {
			mon.Term.EmitString(prompt)
		}

		if !scanner.Scan() {
			err = scanner.Err()
			return
		}

		quit, rerr := mon.Machine.Run(scanner.Text())
		if rerr != nil {
			// Print and stop the line; the REPL itself recovers.
			mon.Term.EmitString(rerr.Error())
			mon.Term.Newline()
		}
		if quit {
			return
		}
	}
}
