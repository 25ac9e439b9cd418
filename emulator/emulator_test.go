package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	program, err := Parse(strings.NewReader("1,9,10,3,\n2,3,11,0,99,30,40,50\n"))
	assert.NoError(err)
	assert.Equal([]int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, program)

	program, err = Parse(strings.NewReader(" -1 , 1125899906842624 "))
	assert.NoError(err)
	assert.Equal([]int64{-1, 1125899906842624}, program)

	assert.Equal("-1,1125899906842624", Format(program))
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse(strings.NewReader("\n"))
	assert.ErrorIs(err, ErrProgramEmpty)

	_, err = Parse(strings.NewReader("1,2,x,99"))
	var syntax *ErrProgramSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.Index)
		assert.Equal("x", syntax.Text)
	}

	_, err = Parse(strings.NewReader("1,,99"))
	assert.True(errors.As(err, &syntax))
	assert.Equal(1, syntax.Index)
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50})

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)

	var done bool
	var err error
	for _, ip := range []int64{0, 4, 8} {
		assert.Equal(ip, emu.Cpu.Ip)
		done, err = emu.Tick()
		assert.NoError(err)
		if ip == 8 {
			assert.True(done)
		} else {
			assert.False(done)
		}
	}

	value, err := emu.Peek(0)
	assert.NoError(err)
	assert.Equal(int64(3500), value)

	// The image is untouched, so a reset starts over.
	emu.Reset()
	value, err = emu.Peek(0)
	assert.NoError(err)
	assert.Equal(int64(1), value)
}

func TestEmulator_Patch(t *testing.T) {
	assert := assert.New(t)

	emu := &Emulator{}
	err := emu.Load(strings.NewReader("1,0,0,0,99,5,6"))
	assert.NoError(err)

	assert.NoError(emu.Patch(1, 5, 6))
	state, err := emu.Run(0)
	assert.NoError(err)
	assert.Equal(cpu.STATE_HALTED, state)

	value, err := emu.Peek(0)
	assert.NoError(err)
	assert.Equal(int64(11), value)

	err = emu.Patch(-1, 0)
	assert.ErrorIs(err, cpu.ErrAddressInvalid)
}

func TestEmulator_Inputs(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{3, 0, 4, 0, 99})
	emu.Inputs = []int64{17}
	emu.Reset()

	state, err := emu.Run(0)
	assert.NoError(err)
	assert.Equal(cpu.STATE_HALTED, state)
	assert.Equal([]int64{17}, emu.Cpu.Output)

	code, err := emu.Diagnostic()
	assert.NoError(err)
	assert.Equal(int64(17), code)
}

func TestEmulator_Console(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{3, 0, 4, 0, 99})
	emu.Policy = cpu.INPUT_INTERACTIVE
	emu.Console = &io.Prompt{Input: strings.NewReader("-8\n")}
	emu.Reset()

	_, err := emu.Run(0)
	assert.NoError(err)
	assert.Equal([]int64{-8}, emu.Cpu.Output)
}

func TestEmulator_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{1101, 1, 1, 0, 3, 0, 99})

	_, err := emu.Run(0)
	assert.ErrorIs(err, cpu.ErrInputExhausted)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(int64(4), rt.Ip)
	}

	emu.Reset()
	_, err = emu.Tick()
	assert.NoError(err)
	_, err = emu.Tick()
	assert.True(errors.As(err, &rt))
	assert.Equal(int64(4), rt.Ip)
}

func TestEmulator_Verbose(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{99})
	emu.Verbose = true

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.Cpu.Debug)
	assert.Contains(emu.String(), "program: 1 cells")
}
