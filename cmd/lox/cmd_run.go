package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/akashmaji946/loxgo/internal/driver"
	"github.com/akashmaji946/loxgo/internal/logging"
)

// runCmd executes a single Lox source file and exits with the
// static(65)/runtime(70)/success(0) exit code the outcome warrants.
type runCmd struct {
	printAST bool
	logLevel string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a Lox source file" }
func (*runCmd) Usage() string {
	return `run <path>:
  Scan, parse, resolve, and evaluate a Lox source file.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.printAST, "print-ast", false, "print the parsed AST instead of evaluating")
	f.BoolVar(&r.printAST, "p", false, "print the parsed AST instead of evaluating (shorthand)")
	f.StringVar(&r.logLevel, "log-level", "", "ambient diagnostic log level: debug|info|warn|error")
}

func (r *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "run: missing source file")
		return subcommands.ExitUsageError
	}

	opts := []driver.Option{driver.WithOutput(os.Stdout)}
	if r.printAST {
		opts = append(opts, driver.WithPrintAST(os.Stdout))
	}
	if r.logLevel != "" {
		opts = append(opts, driver.WithLogger(logging.New(os.Stderr, r.logLevel)))
	} else {
		opts = append(opts, driver.WithLogger(logging.Discard()))
	}

	return subcommands.ExitStatus(driver.RunFile(args[0], opts...))
}
