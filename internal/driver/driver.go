/*
File    : loxgo/internal/driver/driver.go
Package : driver

Package driver wires the four pipeline stages (scanner, parser,
resolver, evaluator) into the single entrypoint both cmd/lox and
internal/replshell call. It owns the exit-code mapping (0 success, 65
static error, 70 runtime error) and the decision of which stage's
errors get reported where.

Grounded on the read/parse/evaluate/report/translate-to-exit-code shape
used elsewhere for a file-running entrypoint (executeFileWithRecovery),
generalized here to Lox's four-stage pipeline and to ordinary Go error
returns instead of panic/recover, since RuntimeError travels through
the call stack as an ordinary error rather than a panic.
*/
package driver

import (
	"io"
	"log/slog"
	"os"

	"github.com/akashmaji946/loxgo/internal/astprint"
	"github.com/akashmaji946/loxgo/internal/eval"
	"github.com/akashmaji946/loxgo/internal/lexer"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/akashmaji946/loxgo/internal/resolve"
)

// Exit codes, following the conventional sysexits.h values.
const (
	ExitOK      = 0
	ExitStatic  = 65
	ExitRuntime = 70
)

// Session runs one or more source snippets against a single persistent
// Evaluator. A file run uses one Session for its one snippet; a REPL
// uses one Session for its whole interactive lifetime so that globals
// (variables, functions, classes) persist across lines.
type Session struct {
	evaluator *eval.Evaluator
	log       *slog.Logger
	printAST  bool
	astOut    io.Writer
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithOutput redirects `print` output (the REPL passes a colorized
// writer; tests pass a bytes.Buffer).
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.evaluator.SetOutput(w) }
}

// WithLogger installs an ambient diagnostic logger (internal/logging).
// Defaults to slog.Default() when not supplied.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithPrintAST makes Run write the parsed tree to w instead of
// evaluating it, for the `--print-ast` driver flag.
func WithPrintAST(w io.Writer) Option {
	return func(s *Session) { s.printAST = true; s.astOut = w }
}

// New creates a Session with a fresh globals environment.
func New(opts ...Option) *Session {
	s := &Session{evaluator: eval.New(), log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run scans, parses, resolves, and evaluates source, returning the
// exit code the process should use. Parse/resolve errors are all
// collected and reported (not just the first) before evaluation is
// skipped entirely: a program with known static errors is never
// evaluated.
func (s *Session) Run(source string, stderr io.Writer) int {
	s.log.Debug("scanning", "bytes", len(source))
	tokens, scanErrs := lexer.New(source).Scan()
	if len(scanErrs) > 0 {
		reportAll(stderr, scanErrs)
		return ExitStatic
	}

	s.log.Debug("parsing", "tokens", len(tokens))
	statements, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		reportAll(stderr, parseErrs)
		return ExitStatic
	}

	s.log.Debug("resolving", "statements", len(statements))
	locals, resolveErrs := resolve.New().Resolve(statements)
	if len(resolveErrs) > 0 {
		reportAll(stderr, resolveErrs)
		return ExitStatic
	}
	s.evaluator.SetLocals(locals)

	if s.printAST {
		io.WriteString(s.astOut, astprint.Print(statements))
		return ExitOK
	}

	s.log.Debug("evaluating")
	if err := s.evaluator.Interpret(statements); err != nil {
		reportAll(stderr, []error{err})
		return ExitRuntime
	}
	return ExitOK
}

func reportAll(w io.Writer, errs []error) {
	for _, err := range errs {
		io.WriteString(w, err.Error()+"\n")
	}
}

// RunFile reads path and runs it as a single top-level program,
// returning the process exit code.
func RunFile(path string, opts ...Option) int {
	data, err := os.ReadFile(path)
	if err != nil {
		io.WriteString(os.Stderr, "Could not read file '"+path+"': "+err.Error()+"\n")
		return ExitRuntime
	}
	s := New(opts...)
	return s.Run(string(data), os.Stderr)
}
