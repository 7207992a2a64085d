/*
File    : loxgo/internal/resolve/resolve.go
Package : resolve

Package resolve implements the static resolver: a second pass over the
AST that performs lexical scope analysis without executing anything,
producing a side-table from expression node to scope distance.
Grounded directly on original_source's resolver.py (same
scope-stack-of-maps design, same declare/define discipline), with the
class/this/super state machine layered on top to cover the rules
absent from that pylox revision.

The side-table is a map keyed on the ast.Expr interface value itself
(a Go pointer under the hood), so two syntactically identical
sub-expressions, distinct *ast.Variable values, are distinct keys,
without needing a separate id field.
*/
package resolve

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/token"
)

type functionKind int

const (
	functionNone functionKind = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Locals is the resolver's output: expression node identity → scope
// distance. The evaluator consults it via GetAt/AssignAt-by-distance;
// an expression absent from Locals is resolved against globals at
// evaluation time, letting top-level declarations forward-reference
// each other.
type Locals map[ast.Expr]int

// Resolver walks a statement list exactly once, collecting Locals and
// any static errors found along the way.
type Resolver struct {
	locals          Locals
	scopes          []map[string]bool
	currentFunction functionKind
	currentClass    classKind
	errors          []error
}

// New creates a Resolver ready to resolve a program's statement list.
func New() *Resolver {
	return &Resolver{locals: make(Locals)}
}

// Resolve walks statements and returns the populated side-table
// together with every static error found. A non-empty error slice
// means evaluation must be skipped entirely.
func (r *Resolver) Resolve(statements []ast.Stmt) (Locals, []error) {
	r.resolveStmts(statements)
	return r.locals, r.errors
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	_, _ = stmt.AcceptStmt(r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	_, _ = expr.AcceptExpr(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope bound to false ("not ready
// yet"), so a read of the same name while resolving its own
// initializer can be caught. A no-op at global scope, which is
// represented by an empty scope stack.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.errors = append(r.errors, loxerr.NewResolveError(name, "Already a variable with this name in this scope."))
	}
	scope[name.Lexeme] = false
}

// define marks name ready for use in the innermost scope.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; the first
// scope containing name fixes the distance (0 = innermost). If no
// scope contains it, expr is left unresolved entirely; the evaluator
// falls back to globals.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
