package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrProgramEmpty = errors.New(f("program empty"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int64
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrProgramSyntax is a program image cell that is not an integer.
type ErrProgramSyntax struct {
	Index int
	Text  string
}

func (err *ErrProgramSyntax) Error() string {
	return f("cell %d '%v' is not an integer", err.Index, err.Text)
}
