// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
)

// options are the merged configuration file and command line settings.
type options struct {
	Config
	configPath string
	diagnostic bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "intcode [flags] PROGRAM",
		Short: "Run an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.Int64SliceVarP(&opts.Input, "input", "i", nil, "Queued inputs (disables the console)")
	flags.StringVarP(&opts.Script, "script", "s", "", "Starlark console script")
	flags.StringVar(&opts.Prompt, "prompt", io.PROMPT_DEFAULT, "Interactive prompt")
	flags.StringVar(&opts.History, "history", "", "Interactive history file")
	flags.BoolVarP(&opts.Debug, "debug", "d", false, "Trace every instruction")
	flags.IntVar(&opts.Limit, "limit", 0, "Stop after this many outputs")
	flags.BoolVar(&opts.diagnostic, "diagnostic", false, "Check diagnostic output, print the code")

	return rootCmd
}

// merge fills settings not given on the command line from the config file.
func (opts *options) merge(cmd *cobra.Command) (err error) {
	if len(opts.configPath) == 0 {
		return
	}

	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("%v: %w", opts.configPath, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("input") {
		opts.Input = config.Input
	}
	if !flags.Changed("script") {
		opts.Script = config.Script
	}
	if !flags.Changed("prompt") && len(config.Prompt) != 0 {
		opts.Prompt = config.Prompt
	}
	if !flags.Changed("history") {
		opts.History = config.History
	}
	if !flags.Changed("debug") {
		opts.Debug = config.Debug
	}
	if !flags.Changed("limit") {
		opts.Limit = config.Limit
	}

	return
}

// console selects the interactive input source.
func (opts *options) console() (console cpu.Console, rl *io.Readline, err error) {
	if len(opts.Script) != 0 {
		var src []byte
		src, err = os.ReadFile(opts.Script)
		if err != nil {
			return
		}
		console, err = io.NewScript(opts.Script, src)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.Script, err)
		}
		return
	}

	rl, err = io.NewReadline(opts.Prompt, opts.History)
	if err != nil {
		return
	}
	rl.Echo = true
	console = rl

	return
}

func run(cmd *cobra.Command, opts *options, path string) (err error) {
	err = opts.merge(cmd)
	if err != nil {
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	emu := &emulator.Emulator{
		Verbose: opts.Debug,
		Inputs:  opts.Input,
		Policy:  cpu.INPUT_QUEUED,
	}

	var rl *io.Readline
	if len(opts.Input) == 0 {
		emu.Policy = cpu.INPUT_INTERACTIVE
		emu.Console, rl, err = opts.console()
		if err != nil {
			return
		}
		if rl != nil {
			defer rl.Close()
		}
	}

	err = emu.Load(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}

	state, err := emu.Run(opts.Limit)
	if err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}

	out := cmd.OutOrStdout()

	if opts.diagnostic {
		var code int64
		code, err = emu.Diagnostic()
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		fmt.Fprintln(out, code)
		return
	}

	if rl != nil {
		rl.Flush(emu.Cpu.Output)
	} else {
		for _, value := range emu.Cpu.Output {
			fmt.Fprintln(out, value)
		}
	}

	if state == cpu.STATE_SUSPENDED {
		log.Printf("%v: %v at ip %d", path, state, emu.Cpu.Ip)
	}

	return
}
