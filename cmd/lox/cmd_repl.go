package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/akashmaji946/loxgo/internal/config"
	"github.com/akashmaji946/loxgo/internal/replshell"
)

// replCmd starts the interactive REPL.
type replCmd struct {
	noColor bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive Lox session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive read-eval-print loop. Ctrl+D or 'quit' exits.
`
}

func (r *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.noColor, "no-color", false, "disable colored output")
}

func (r *replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .loxrc.yaml: %v\n", err)
	}
	if r.noColor {
		cfg.NoColor = true
	}

	shell := replshell.New(cfg, os.Stdout)
	if err := shell.Run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
