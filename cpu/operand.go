package cpu

import (
	"fmt"
)

// Operand is a raw operand paired with its decoded addressing mode.
type Operand struct {
	Raw  int64
	Mode Mode
}

func (arg Operand) String() string {
	switch arg.Mode {
	case MODE_POSITION:
		return fmt.Sprintf("[%d]", arg.Raw)
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%d", arg.Raw)
	case MODE_RELATIVE:
		return fmt.Sprintf("[rb%+d]", arg.Raw)
	}
	return fmt.Sprintf("%d:%v", arg.Raw, arg.Mode)
}

// Value dereferences an operand according to its mode.
func (cpu *Cpu) Value(arg Operand) (value int64, err error) {
	switch arg.Mode {
	case MODE_POSITION:
		value, err = cpu.Memory.Read(arg.Raw)
	case MODE_IMMEDIATE:
		value = arg.Raw
	case MODE_RELATIVE:
		value, err = cpu.Memory.Read(cpu.RelativeBase + arg.Raw)
	default:
		err = ErrMode(arg.Mode)
	}

	return
}

// Address gets the destination address of a write operand.
// No defined opcode writes through an immediate operand; one is treated
// as a position.
func (cpu *Cpu) Address(arg Operand) (addr int64, err error) {
	switch arg.Mode {
	case MODE_POSITION, MODE_IMMEDIATE:
		addr = arg.Raw
	case MODE_RELATIVE:
		addr = cpu.RelativeBase + arg.Raw
	default:
		err = ErrMode(arg.Mode)
	}

	return
}
