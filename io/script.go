package io

import (
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script is a port device whose behavior is defined by a Starlark program.
// The program may define two functions:
//
//	def port_in():       # read; returns the next byte as an int
//	def port_out(value): # write one byte
//
// Either may be omitted; a missing port_in reads 0 and a missing port_out
// discards writes. Integer defines from the monitor are predeclared as
// constants in the script environment.
//
// The I/O port contract has no error channel, so script failures are
// logged and the port behaves as unbound for that access.
type Script struct {
	Name string

	thread  *starlark.Thread
	portIn  starlark.Callable
	portOut starlark.Callable
}

var _ Device = (*Script)(nil)

// NewScript compiles and executes a Starlark device program. src may be a
// string, []byte, or io.Reader. Non-integer defines are skipped.
func NewScript(name string, src any, defines iter.Seq2[string, string]) (sc *Script, err error) {
	pred := starlark.StringDict{}
	if defines != nil {
		for key, str := range defines {
			value32, perr := strconv.ParseUint(str, 0, 32)
			if perr != nil {
				// Ignore non-integer defines.
				continue
			}
			pred[key] = starlark.MakeInt(int(value32))
		}
	}

	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, pred)
	if err != nil {
		return
	}

	sc = &Script{Name: name, thread: thread}

	sc.portIn, err = scriptCallable(globals, "port_in")
	if err != nil {
		sc = nil
		return
	}

	sc.portOut, err = scriptCallable(globals, "port_out")
	if err != nil {
		sc = nil
		return
	}

	return
}

func scriptCallable(globals starlark.StringDict, symbol string) (fn starlark.Callable, err error) {
	value, ok := globals[symbol]
	if !ok {
		return
	}

	fn, ok = value.(starlark.Callable)
	if !ok {
		err = ErrScriptSymbol(symbol)
	}
	return
}

// In reads one byte from the device by calling the script's port_in.
func (sc *Script) In() (value byte) {
	if sc.portIn == nil {
		return
	}

	result, err := starlark.Call(sc.thread, sc.portIn, nil, nil)
	if err != nil {
		log.Printf("ucmon: script %v: port_in: %v", sc.Name, err)
		return
	}

	st_int, ok := result.(starlark.Int)
	if !ok {
		log.Printf("ucmon: script %v: port_in: %v is not an int", sc.Name, result)
		return
	}

	st_int64, _ := st_int.Int64()
	value = byte(st_int64)
	return
}

// Out writes one byte to the device by calling the script's port_out.
func (sc *Script) Out(value byte) {
	if sc.portOut == nil {
		return
	}

	args := starlark.Tuple{starlark.MakeInt(int(value))}
	_, err := starlark.Call(sc.thread, sc.portOut, args, nil)
	if err != nil {
		log.Printf("ucmon: script %v: port_out: %v", sc.Name, err)
	}
}
