package cpu

import (
	"fmt"
)

// Opcode is the operation code in the low two digits of an instruction word.
type Opcode int64

const (
	OP_ADD         = Opcode(1)  // dst = a + b
	OP_MUL         = Opcode(2)  // dst = a * b
	OP_INPUT       = Opcode(3)  // dst = next input
	OP_OUTPUT      = Opcode(4)  // output a
	OP_JUMP_TRUE   = Opcode(5)  // if a != 0, ip = b
	OP_JUMP_FALSE  = Opcode(6)  // if a == 0, ip = b
	OP_LESS        = Opcode(7)  // dst = a < b
	OP_EQUAL       = Opcode(8)  // dst = a == b
	OP_ADJUST_BASE = Opcode(9)  // relative base += a
	OP_HALT        = Opcode(99) // stop
)

// Mode is the addressing mode of an operand.
type Mode int64

const (
	MODE_POSITION  = Mode(0) // memory[raw]
	MODE_IMMEDIATE = Mode(1) // raw
	MODE_RELATIVE  = Mode(2) // memory[relative base + raw]
)

// WORD_LIMIT is one past the largest decodable instruction word.
const WORD_LIMIT = 100_000

var opcodeInfo = map[Opcode](struct {
	name     string
	operands int
}){
	OP_ADD:         {"add", 3},
	OP_MUL:         {"mul", 3},
	OP_INPUT:       {"in", 1},
	OP_OUTPUT:      {"out", 1},
	OP_JUMP_TRUE:   {"jt", 2},
	OP_JUMP_FALSE:  {"jf", 2},
	OP_LESS:        {"lt", 3},
	OP_EQUAL:       {"eq", 3},
	OP_ADJUST_BASE: {"arb", 1},
	OP_HALT:        {"halt", 0},
}

// Valid reports if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodeInfo[op]
	return ok
}

// Operands returns the number of operands that follow the opcode,
// or -1 for an invalid opcode.
func (op Opcode) Operands() int {
	info, ok := opcodeInfo[op]
	if !ok {
		return -1
	}
	return info.operands
}

func (op Opcode) String() string {
	info, ok := opcodeInfo[op]
	if !ok {
		return fmt.Sprintf("op%d", int64(op))
	}
	return info.name
}

func (m Mode) String() string {
	switch m {
	case MODE_POSITION:
		return "pos"
	case MODE_IMMEDIATE:
		return "imm"
	case MODE_RELATIVE:
		return "rel"
	}
	return fmt.Sprintf("mode%d", int64(m))
}

// Decode splits an instruction word into its opcode and the modes of its
// three operands. Mode digits are not validated here; an undefined mode is
// only an error when an operand using it is resolved.
func Decode(word int64) (op Opcode, modes [3]Mode, err error) {
	if word < 0 || word >= WORD_LIMIT {
		err = ErrOpcode(word)
		return
	}

	op = Opcode(word % 100)
	if !op.Valid() {
		err = ErrOpcode(word)
		return
	}

	digits := word / 100
	for n := range modes {
		modes[n] = Mode(digits % 10)
		digits /= 10
	}

	return
}
