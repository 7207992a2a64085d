/*
File    : loxgo/internal/eval/eval.go
Package : eval

Package eval is the tree-walking evaluator: it executes a resolved
statement list against the globals environment, using the resolver's
distance map as the fast path for already-resolved
variable/assign/this/super references. Grounded on the same
io.Writer-injection-for-testable-output, struct-holding-mutable-state
Evaluator shape used for expression-oriented evaluation elsewhere,
generalized to Lox's statement-oriented evaluation, and on the
reference jlox-in-Go port's (*Interpreter) shape for call/class/
closure semantics.
*/
package eval

import (
	"io"
	"os"
	"time"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/loxvalue"
	"github.com/akashmaji946/loxgo/internal/resolve"
	"github.com/akashmaji946/loxgo/internal/token"
)

// Evaluator executes a resolved Lox program. One Evaluator instance
// corresponds to one run of a file, or one whole REPL session (REPL
// semantics require the globals environment to persist across lines).
type Evaluator struct {
	Globals     *environment.Environment
	environment *environment.Environment
	locals      resolve.Locals
	output      io.Writer
}

// New creates an Evaluator with a fresh globals environment preloaded
// with the `clock` native.
func New() *Evaluator {
	globals := environment.New(nil)
	ev := &Evaluator{Globals: globals, environment: globals, output: os.Stdout}
	globals.Define("clock", loxvalue.NewNative("clock", 0, func(args []interface{}) (interface{}, error) {
		return float64(time.Now().UnixNano()) / float64(time.Second), nil
	}))
	return ev
}

// SetOutput redirects `print` output, used by the REPL to write to a
// colorized writer and by tests to capture output into a buffer.
func (e *Evaluator) SetOutput(w io.Writer) {
	e.output = w
}

// SetLocals adds the resolver's side-table for one statement list.
// Call it before Interpret with the Locals produced by resolving that
// exact list. Entries from earlier lists are kept, so a function or
// class defined by an earlier REPL line still finds its resolved
// locals when a later line calls it.
func (e *Evaluator) SetLocals(locals resolve.Locals) {
	if e.locals == nil {
		e.locals = make(resolve.Locals, len(locals))
	}
	for expr, distance := range locals {
		e.locals[expr] = distance
	}
}

// Interpret executes statements in order against the current
// environment. It stops at (and returns) the first RuntimeError; the
// caller reports it and treats the run as aborted, while a
// REPL-hosting caller simply starts the next line with a fresh "had
// runtime error" flag and the same Evaluator (so globals persist).
func (e *Evaluator) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if _, err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execute(stmt ast.Stmt) (interface{}, error) {
	return stmt.AcceptStmt(e)
}

func (e *Evaluator) evaluate(expr ast.Expr) (interface{}, error) {
	return expr.AcceptExpr(e)
}

// executeBlock runs statements against env, restoring the previous
// environment on every exit path, normal completion, a propagated
// RuntimeError, or a Return signal unwinding through it.
func (e *Evaluator) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := e.environment
	e.environment = env
	defer func() { e.environment = previous }()

	for _, stmt := range statements {
		if _, err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable resolves a Variable or This read: the
// resolver's distance if this exact node was resolved, else a global
// lookup, which is how top-level declarations get to forward-reference
// each other.
func (e *Evaluator) lookupVariable(name token.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := e.locals[expr]; ok {
		return e.environment.GetAt(distance, name.Lexeme), nil
	}
	if value, ok := e.Globals.Get(name.Lexeme); ok {
		return value, nil
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}
