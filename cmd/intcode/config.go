package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional run configuration file.
type Config struct {
	Prompt  string  `toml:"prompt"`  // Interactive prompt text.
	History string  `toml:"history"` // Readline history file.
	Debug   bool    `toml:"debug"`   // Trace every instruction.
	Input   []int64 `toml:"input"`   // Queued inputs.
	Script  string  `toml:"script"`  // Starlark console script.
	Limit   int     `toml:"limit"`   // Stop after this many outputs.
}

// LoadConfig parses a TOML configuration file.
func LoadConfig(path string) (config *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	config = &Config{}
	err = toml.Unmarshal(data, config)
	if err != nil {
		config = nil
	}

	return
}
