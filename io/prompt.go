package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PROMPT_DEFAULT is the prompt text written before each read.
const PROMPT_DEFAULT = "--> "

// Prompt is a line oriented console. It wraps an io.Reader for input and
// an optional io.Writer for the prompt text.
type Prompt struct {
	Input  io.Reader
	Output io.Writer
	Text   string // Prompt text; PROMPT_DEFAULT if empty.

	reader *bufio.Reader
}

var _ Console = (*Prompt)(nil)

// Read writes the prompt, then reads and parses one line as an integer.
// Blank lines are skipped.
func (pc *Prompt) Read(output []int64) (value int64, err error) {
	if pc.reader == nil {
		pc.reader = bufio.NewReader(pc.Input)
	}

	text := pc.Text
	if len(text) == 0 {
		text = PROMPT_DEFAULT
	}

	for {
		if pc.Output != nil {
			fmt.Fprint(pc.Output, text)
		}

		var line string
		line, err = pc.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			if err != nil {
				err = ErrConsoleClosed
				return
			}
			continue
		}

		value, err = strconv.ParseInt(line, 10, 64)
		if err != nil {
			err = ErrInputArgument(line)
		}
		return
	}
}
