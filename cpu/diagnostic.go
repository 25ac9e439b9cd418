package cpu

import (
	"slices"
)

// Diagnostic checks the output of a diagnostic program: every output but
// the last must be zero, and the last is the diagnostic code.
func (cpu *Cpu) Diagnostic() (code int64, err error) {
	if len(cpu.Output) == 0 {
		err = ErrDiagnosticEmpty
		return
	}

	checks := cpu.Output[:len(cpu.Output)-1]
	for _, check := range checks {
		if check != 0 {
			err = &ErrBadDiagnostic{Codes: slices.Clone(checks)}
			return
		}
	}

	code = cpu.Output[len(cpu.Output)-1]

	return
}

// Clone returns an independent copy of the machine. The copy shares the
// Console and Logger, but no machine state.
func (cpu *Cpu) Clone() (clone *Cpu) {
	clone = &Cpu{
		Debug:   cpu.Debug,
		Logger:  cpu.Logger,
		Console: cpu.Console,

		Ip:           cpu.Ip,
		RelativeBase: cpu.RelativeBase,
		Memory:       cpu.Memory.Clone(),
		Input:        cpu.Input.Clone(),
		Output:       slices.Clone(cpu.Output),

		interactive: cpu.interactive,
	}

	return
}
