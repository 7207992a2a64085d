/*
File    : loxgo/cmd/lox/main.go

Entry point for the lox interpreter. Dispatches to the `run` and
`repl` subcommands via google/subcommands (grounded on
informatter-nilan's cmd_run.go/cmd_repl.go, which use the same
library for the same two-mode split), with a positional-argument
shorthand, `lox program.lox` behaves like `lox run program.lox`,
treating a single bare argument as a filename. subcommands.Execute has
no notion of a default subcommand, so a bare `lox` with no arguments is
rewritten the same way into `lox repl`.
*/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	args := os.Args[1:]
	switch {
	case len(args) == 0:
		os.Args = append([]string{os.Args[0], "repl"}, args...)
	default:
		if _, err := os.Stat(args[0]); err == nil {
			os.Args = append([]string{os.Args[0], "run"}, args...)
		}
	}

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
