// Package io provides the input sources and queues for the Intcode machine.
// It includes the pending input Queue, and the Console implementations that
// answer input requests once the queue runs dry: a line oriented Prompt, a
// terminal Readline console, and a Starlark Script.
package io

// Console defines the interface for interactive input sources.
type Console interface {
	// Read returns the next input value. The output log of the
	// requesting machine is supplied so that the console can
	// display (or react to) what has been printed so far.
	Read(output []int64) (value int64, err error)
}
