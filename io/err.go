package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed = errors.New(f("console closed"))
	ErrScriptInput   = errors.New(f("script has no input function"))
)

// ErrInputArgument is a supplied input that is not an integer.
type ErrInputArgument string

func (err ErrInputArgument) Error() string {
	return f("'%v' is not an integer", string(err))
}

func (err ErrInputArgument) Is(target error) (ok bool) {
	_, ok = target.(ErrInputArgument)
	return
}
