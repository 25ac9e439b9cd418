// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// SCRIPT_INPUT is the name of the Starlark function called for each input.
const SCRIPT_INPUT = "input"

// Script is a console driven by a Starlark program.
//
// The program must define:
//
//	def input(n, output):
//	    return <int>
//
// where n is the number of prior requests made to this console, and output
// is the requesting machine's output log.
type Script struct {
	Count int // Number of inputs answered so far.

	thread *starlark.Thread
	input  starlark.Callable
}

var _ Console = (*Script)(nil)

// NewScript compiles and executes the top level of a Starlark program.
// The src may be a string, []byte or io.Reader.
func NewScript(name string, src any) (sc *Script, err error) {
	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, nil)
	if err != nil {
		return
	}

	input, ok := globals[SCRIPT_INPUT].(starlark.Callable)
	if !ok {
		err = ErrScriptInput
		return
	}

	sc = &Script{
		thread: thread,
		input:  input,
	}

	return
}

// Read calls the script's input function.
func (sc *Script) Read(output []int64) (value int64, err error) {
	elems := make([]starlark.Value, len(output))
	for n, out := range output {
		elems[n] = starlark.MakeInt64(out)
	}

	args := starlark.Tuple{starlark.MakeInt(sc.Count), starlark.NewList(elems)}
	rc, err := starlark.Call(sc.thread, sc.input, args, nil)
	if err != nil {
		return
	}

	st_int, ok := rc.(starlark.Int)
	if !ok {
		err = ErrInputArgument(rc.String())
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrInputArgument(rc.String())
		return
	}

	sc.Count++

	return
}
