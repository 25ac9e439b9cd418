// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/intcode/io"
)

// Console is an interactive input source.
type Console io.Console

// InputPolicy selects what happens when an input request finds the
// pending queue empty.
type InputPolicy int

const (
	INPUT_QUEUED      = InputPolicy(0) // Fail with ErrInputExhausted.
	INPUT_INTERACTIVE = InputPolicy(1) // Block on the Console.
)

// State is the result of running the machine.
type State int

const (
	STATE_RUNNING   = State(0) // More instructions to execute.
	STATE_HALTED    = State(1) // Opcode 99 reached.
	STATE_SUSPENDED = State(2) // Output limit reached before halting.
)

func (state State) String() string {
	switch state {
	case STATE_RUNNING:
		return "running"
	case STATE_HALTED:
		return "halted"
	case STATE_SUSPENDED:
		return "suspended"
	}
	return fmt.Sprintf("State(%d)", int(state))
}

// Cpu is the simulation context of an Intcode machine.
type Cpu struct {
	Debug   bool        // Set to trace every instruction.
	Logger  *log.Logger // Trace destination; log.Default() if nil.
	Console Console     // Interactive input source.

	Ip           int64    // Current instruction pointer.
	RelativeBase int64    // Base for relative-mode operands.
	Memory       Memory   // Program and data memory.
	Input        io.Queue // Pending inputs.
	Output       []int64  // Output log.

	interactive bool
}

// NewCpu creates a machine with a copy of the program image and an
// initial set of pending inputs.
func NewCpu(program []int64, policy InputPolicy, inputs ...int64) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:      NewMemory(program),
		interactive: policy == INPUT_INTERACTIVE,
	}

	cpu.Input.PushAll(inputs)

	return
}

// Interactive reports if an empty input queue falls back to the Console.
func (cpu *Cpu) Interactive() bool {
	return cpu.interactive
}

// AddInput appends a value to the pending inputs, and leaves
// interactive mode for good.
func (cpu *Cpu) AddInput(value int64) {
	cpu.interactive = false
	cpu.Input.Push(value)
}

// AddInputs appends values to the pending inputs, and leaves
// interactive mode for good.
func (cpu *Cpu) AddInputs(values []int64) {
	cpu.interactive = false
	cpu.Input.PushAll(values)
}

func (cpu *Cpu) logger() *log.Logger {
	if cpu.Logger == nil {
		return log.Default()
	}
	return cpu.Logger
}

// nextInput takes the next pending input, falling back to the console.
func (cpu *Cpu) nextInput() (value int64, err error) {
	value, ok := cpu.Input.Pop()
	if ok {
		return
	}

	if !cpu.interactive {
		err = ErrInputExhausted
		return
	}

	if cpu.Console == nil {
		err = errors.Join(ErrInputExhausted, ErrConsoleMissing)
		return
	}

	return cpu.Console.Read(cpu.Output)
}

// Fetch decodes the instruction at the instruction pointer, and collects
// its operands.
func (cpu *Cpu) Fetch() (op Opcode, args []Operand, err error) {
	word, err := cpu.Memory.Read(cpu.Ip)
	if err != nil {
		return
	}

	op, modes, err := Decode(word)
	if err != nil {
		return
	}

	args = make([]Operand, op.Operands())
	for n := range args {
		args[n].Mode = modes[n]
		args[n].Raw, err = cpu.Memory.Read(cpu.Ip + 1 + int64(n))
		if err != nil {
			return
		}
	}

	return
}

// Step executes a single instruction.
// At a halt instruction the pointer is left in place, and STATE_HALTED
// is returned.
func (cpu *Cpu) Step() (state State, err error) {
	ip := cpu.Ip
	word, _ := cpu.Memory.Read(ip)

	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction{Ip: ip, Word: word}, err)
		}
	}()

	op, args, err := cpu.Fetch()
	if err != nil {
		return
	}

	if op == OP_HALT {
		state = STATE_HALTED
		return
	}

	if cpu.Debug {
		cpu.logger().Print(cpu.String())
		cpu.logger().Printf("executing %v %v", op, args)
	}

	err = cpu.Execute(op, args)
	if err != nil {
		return
	}

	state = STATE_RUNNING

	return
}

// Execute executes a single decoded instruction.
// All operands are resolved before any state is modified, so a failing
// instruction leaves the machine untouched.
func (cpu *Cpu) Execute(op Opcode, args []Operand) (err error) {
	if len(args) != op.Operands() {
		err = ErrOpcode(op)
		return
	}

	next_ip := cpu.Ip + int64(len(args)) + 1

	// values resolves the first n operands as values.
	values := func(n int) (vals []int64, err error) {
		vals = make([]int64, n)
		for i := range n {
			vals[i], err = cpu.Value(args[i])
			if err != nil {
				return
			}
		}
		return
	}

	// store resolves args[n] as a destination, then writes once
	// all other operands have been resolved.
	store := func(n int, compute func(vals []int64) (int64, error)) (err error) {
		vals, err := values(n)
		if err != nil {
			return
		}
		addr, err := cpu.Address(args[n])
		if err != nil {
			return
		}
		if addr < 0 {
			return ErrAddressInvalid
		}
		value, err := compute(vals)
		if err != nil {
			return
		}
		return cpu.Memory.Write(addr, value)
	}

	boolean := func(cond bool) int64 {
		if cond {
			return 1
		}
		return 0
	}

	switch op {
	case OP_ADD:
		err = store(2, func(v []int64) (int64, error) { return v[0] + v[1], nil })
	case OP_MUL:
		err = store(2, func(v []int64) (int64, error) { return v[0] * v[1], nil })
	case OP_INPUT:
		err = store(0, func([]int64) (int64, error) { return cpu.nextInput() })
	case OP_OUTPUT:
		var vals []int64
		vals, err = values(1)
		if err == nil {
			cpu.Output = append(cpu.Output, vals[0])
		}
	case OP_JUMP_TRUE, OP_JUMP_FALSE:
		var vals []int64
		vals, err = values(2)
		if err == nil && (vals[0] != 0) == (op == OP_JUMP_TRUE) {
			next_ip = vals[1]
		}
	case OP_LESS:
		err = store(2, func(v []int64) (int64, error) { return boolean(v[0] < v[1]), nil })
	case OP_EQUAL:
		err = store(2, func(v []int64) (int64, error) { return boolean(v[0] == v[1]), nil })
	case OP_ADJUST_BASE:
		var vals []int64
		vals, err = values(1)
		if err == nil {
			cpu.RelativeBase += vals[0]
		}
	case OP_HALT:
		next_ip = cpu.Ip
	default:
		err = ErrOpcode(op)
	}

	if err != nil {
		return
	}

	cpu.Ip = next_ip

	return
}

// Run executes until the machine halts, or, if limit is positive, until
// limit new outputs have been produced by this call.
func (cpu *Cpu) Run(limit int) (state State, err error) {
	start := len(cpu.Output)

	for {
		state, err = cpu.Step()
		if err != nil || state == STATE_HALTED {
			return
		}

		if limit > 0 && len(cpu.Output)-start >= limit {
			state = STATE_SUSPENDED
			return
		}
	}
}

// String returns the current machine state as a string.
// The format is for human inspection only.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	sb.WriteString("=======\n")
	fmt.Fprintf(&sb, "% 13s: %v\n", "memory", cpu.Memory.Dense())
	if len(cpu.Memory.Sparse) > 0 {
		addrs := make([]int64, 0, len(cpu.Memory.Sparse))
		for addr := range cpu.Memory.Sparse {
			addrs = append(addrs, addr)
		}
		slices.Sort(addrs)
		sparse := make([]string, len(addrs))
		for n, addr := range addrs {
			sparse[n] = fmt.Sprintf("%d:%d", addr, cpu.Memory.Sparse[addr])
		}
		fmt.Fprintf(&sb, "% 13s: [%v]\n", "sparse", strings.Join(sparse, " "))
	}
	fmt.Fprintf(&sb, "% 13s: %v\n", "ip", cpu.Ip)
	fmt.Fprintf(&sb, "% 13s: %v\n", "relative_base", cpu.RelativeBase)
	fmt.Fprintf(&sb, "% 13s: %v\n", "input", cpu.Input.Data)
	fmt.Fprintf(&sb, "% 13s: %v\n", "output", cpu.Output)

	text = sb.String()

	return
}
