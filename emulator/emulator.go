// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator loads Intcode program images and drives a machine.
package emulator

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/cpu"
)

// Parse reads a comma separated program image.
func Parse(input io.Reader) (program []int64, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	for n, cell := range strings.Split(text, ",") {
		cell = strings.TrimSpace(cell)
		var value int64
		value, err = strconv.ParseInt(cell, 10, 64)
		if err != nil {
			err = &ErrProgramSyntax{Index: n, Text: cell}
			return
		}
		program = append(program, value)
	}

	return
}

// Format writes a program image in the form read by Parse.
func Format(program []int64) string {
	cells := make([]string, len(program))
	for n, value := range program {
		cells[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(cells, ",")
}

// Emulator state. Program image + running machine.
type Emulator struct {
	Verbose  bool            // If set, traces every instruction.
	*cpu.Cpu                 // Reference to the running machine.
	Program  []int64         // Program image loaded on Reset.
	Policy   cpu.InputPolicy // Input policy of the machine.
	Console  cpu.Console     // Console for interactive input.
	Inputs   []int64         // Inputs queued on Reset.
}

// NewEmulator creates a new emulator for a program image.
func NewEmulator(program []int64) (emu *Emulator) {
	emu = &Emulator{
		Program: program,
		Policy:  cpu.INPUT_QUEUED,
	}

	emu.Reset()

	return
}

// Load replaces the program image from a reader, and resets.
func (emu *Emulator) Load(input io.Reader) (err error) {
	program, err := Parse(input)
	if err != nil {
		return
	}

	emu.Program = program
	emu.Reset()

	return
}

// Reset the machine to the program image.
func (emu *Emulator) Reset() {
	emu.Cpu = cpu.NewCpu(emu.Program, emu.Policy, emu.Inputs...)
	emu.Cpu.Console = emu.Console
	emu.Cpu.Debug = emu.Verbose
}

// Patch writes values into memory, starting at addr, before running.
func (emu *Emulator) Patch(addr int64, values ...int64) (err error) {
	for n, value := range values {
		err = emu.Cpu.Memory.Write(addr+int64(n), value)
		if err != nil {
			err = &ErrRuntime{Ip: emu.Cpu.Ip, Err: err}
			return
		}
	}

	return
}

// Peek reads a memory value.
func (emu *Emulator) Peek(addr int64) (value int64, err error) {
	value, err = emu.Cpu.Memory.Read(addr)
	if err != nil {
		err = &ErrRuntime{Ip: emu.Cpu.Ip, Err: err}
	}
	return
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Debug = emu.Verbose

	ip := emu.Cpu.Ip
	state, err := emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Ip: ip, Err: err}
		return
	}

	done = state == cpu.STATE_HALTED

	return
}

// Run the machine until it halts or produces limit new outputs.
func (emu *Emulator) Run(limit int) (state cpu.State, err error) {
	emu.Cpu.Debug = emu.Verbose

	state, err = emu.Cpu.Run(limit)
	if err != nil {
		err = &ErrRuntime{Ip: emu.Cpu.Ip, Err: err}
	}

	return
}

// String returns the program image and machine state.
func (emu *Emulator) String() string {
	return fmt.Sprintf("program: %d cells\n%v", len(emu.Program), emu.Cpu.String())
}
