package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrModeInvalid     = errors.New(f("mode invalid"))
	ErrAddressInvalid  = errors.New(f("address invalid"))
	ErrInputExhausted  = errors.New(f("input exhausted"))
	ErrConsoleMissing  = errors.New(f("console missing"))
	ErrDiagnosticEmpty = errors.New(f("diagnostic has no output"))
)

// ErrOpcode is an instruction word that does not decode to a known opcode.
type ErrOpcode int64

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v in word %v", int64(eo)%100, int64(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeInvalid {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrMode is an operand addressing mode outside of position, immediate
// and relative.
type ErrMode Mode

func (em ErrMode) Error() string {
	return f("bad mode %v", int64(em))
}

func (em ErrMode) Is(err error) (ok bool) {
	if err == ErrModeInvalid {
		return true
	}
	_, ok = err.(ErrMode)
	return
}

// ErrInstruction is the location of a failed instruction.
type ErrInstruction struct {
	Ip   int64
	Word int64
}

func (err ErrInstruction) Error() string {
	return f("ip %v word %v", err.Ip, err.Word)
}

// ErrBadDiagnostic is a diagnostic run that reported failing checks.
type ErrBadDiagnostic struct {
	Codes []int64 // All outputs but the last.
}

func (err *ErrBadDiagnostic) Error() string {
	return f("bad diagnostic codes %v", err.Codes)
}

func (err *ErrBadDiagnostic) Is(target error) (ok bool) {
	_, ok = target.(*ErrBadDiagnostic)
	return
}
