package io

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// Readline is a terminal console with line editing and history.
type Readline struct {
	Echo bool // If set, new outputs are printed before each prompt.

	instance *readline.Instance
	shown    int
}

var _ Console = (*Readline)(nil)

// NewReadline creates a terminal console. An empty prompt selects PROMPT_DEFAULT.
func NewReadline(prompt string, history string) (rc *Readline, err error) {
	if len(prompt) == 0 {
		prompt = PROMPT_DEFAULT
	}

	instance, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return
	}

	rc = &Readline{instance: instance}

	return
}

// Close releases the terminal.
func (rc *Readline) Close() error {
	return rc.instance.Close()
}

// Flush prints the outputs not yet shown.
func (rc *Readline) Flush(output []int64) {
	for _, out := range output[min(rc.shown, len(output)):] {
		fmt.Fprintln(rc.instance.Stdout(), out)
	}
	rc.shown = len(output)
}

// Read reads lines until one parses as an integer.
// Lines that do not parse are reported and the prompt repeats.
func (rc *Readline) Read(output []int64) (value int64, err error) {
	if rc.Echo {
		rc.Flush(output)
	}

	for {
		var line string
		line, err = rc.instance.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			err = ErrConsoleClosed
			return
		}
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		value, err = strconv.ParseInt(line, 10, 64)
		if err == nil {
			return
		}
		fmt.Fprintln(rc.instance.Stderr(), ErrInputArgument(line))
	}
}
