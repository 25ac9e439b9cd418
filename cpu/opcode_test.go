package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	table := [](struct {
		name  string
		word  int64
		op    Opcode
		modes [3]Mode
	}){
		{"add", 1, OP_ADD, [3]Mode{MODE_POSITION, MODE_POSITION, MODE_POSITION}},
		{"mul_mixed", 1002, OP_MUL, [3]Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}},
		{"add_imm", 1101, OP_ADD, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_POSITION}},
		{"add_rel_dst", 21101, OP_ADD, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}},
		{"in_rel", 203, OP_INPUT, [3]Mode{MODE_RELATIVE, MODE_POSITION, MODE_POSITION}},
		{"out_imm", 104, OP_OUTPUT, [3]Mode{MODE_IMMEDIATE, MODE_POSITION, MODE_POSITION}},
		{"jt", 1105, OP_JUMP_TRUE, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_POSITION}},
		{"jf", 6, OP_JUMP_FALSE, [3]Mode{}},
		{"lt", 1107, OP_LESS, [3]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_POSITION}},
		{"eq", 22208, OP_EQUAL, [3]Mode{MODE_RELATIVE, MODE_RELATIVE, MODE_RELATIVE}},
		{"arb", 109, OP_ADJUST_BASE, [3]Mode{MODE_IMMEDIATE, MODE_POSITION, MODE_POSITION}},
		{"halt", 99, OP_HALT, [3]Mode{}},
		{"bad_mode_kept", 301, OP_ADD, [3]Mode{Mode(3), MODE_POSITION, MODE_POSITION}},
	}

	for _, entry := range table {
		assert := assert.New(t)

		op, modes, err := Decode(entry.word)
		assert.NoError(err, entry.name)
		assert.Equal(entry.op, op, entry.name)
		assert.Equal(entry.modes, modes, entry.name)
	}
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []int64{0, 10, 42, 98, 100, 1110, -1, -99, WORD_LIMIT + 1} {
		_, _, err := Decode(word)
		assert.ErrorIs(err, ErrOpcodeInvalid, "%d", word)
		assert.ErrorIs(err, ErrOpcode(0), "%d", word)
		assert.Equal(ErrOpcode(word), err)
	}
}

func TestOpcode_Operands(t *testing.T) {
	assert := assert.New(t)

	expected := map[Opcode]int{
		OP_HALT: 0,
		OP_ADD:  3, OP_MUL: 3, OP_LESS: 3, OP_EQUAL: 3,
		OP_JUMP_TRUE: 2, OP_JUMP_FALSE: 2,
		OP_INPUT: 1, OP_OUTPUT: 1, OP_ADJUST_BASE: 1,
	}

	for op, count := range expected {
		assert.True(op.Valid(), op.String())
		assert.Equal(count, op.Operands(), op.String())
	}

	assert.False(Opcode(10).Valid())
	assert.Equal(-1, Opcode(10).Operands())
	assert.Equal("op10", Opcode(10).String())
	assert.Equal("rel", MODE_RELATIVE.String())
	assert.Equal("mode7", Mode(7).String())
}

func FuzzDecode(f *testing.F) {
	for _, word := range []int64{1, 99, 1002, 21101, 22209, 301, -5, 123456} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word int64) {
		assert := assert.New(t)

		op1, modes1, err1 := Decode(word)
		op2, modes2, err2 := Decode(word)

		assert.Equal(err1, err2)
		if err1 != nil {
			assert.ErrorIs(err1, ErrOpcodeInvalid)
			return
		}

		assert.Equal(op1, op2)
		assert.Equal(modes1, modes2)
		assert.True(op1.Valid())
		assert.Equal(word%100, int64(op1))

		// Re-encode the word from its parts.
		rebuilt := int64(op1) + 100*int64(modes1[0]) + 1000*int64(modes1[1]) + 10000*int64(modes1[2])
		assert.Equal(word, rebuilt)
	})
}
