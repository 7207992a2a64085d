/*
File    : loxgo/internal/ast/expr.go
Package : ast

Package ast defines the expression and statement node types built by
the parser and walked by the resolver and evaluator. Dispatch uses the
visitor pattern: each concrete node implements Accept, and each pass
(resolver, evaluator, printer) implements ExprVisitor/StmtVisitor. This
mirrors the PrintingVisitor pattern used elsewhere and the reference
jlox-in-Go port's Visit* methods, adapted so that every Visit method
returns (interface{}, error); the evaluator's RuntimeError and Return
signal both travel as ordinary Go errors.

Node identity for the resolver's side-table is just the Go pointer: two
syntactically identical expressions are two different *Variable (or
other) values, so a map keyed on the Expr interface value already
distinguishes them without an extra id field.
*/
package ast

import "github.com/akashmaji946/loxgo/internal/token"

// Expr is implemented by every expression AST node.
type Expr interface {
	AcceptExpr(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented by each pass that walks expressions: the
// resolver, the evaluator, and the AST pretty-printer.
type ExprVisitor interface {
	VisitAssignExpr(e *Assign) (interface{}, error)
	VisitBinaryExpr(e *Binary) (interface{}, error)
	VisitCallExpr(e *Call) (interface{}, error)
	VisitGetExpr(e *Get) (interface{}, error)
	VisitGroupingExpr(e *Grouping) (interface{}, error)
	VisitLiteralExpr(e *Literal) (interface{}, error)
	VisitLogicalExpr(e *Logical) (interface{}, error)
	VisitSetExpr(e *Set) (interface{}, error)
	VisitSuperExpr(e *Super) (interface{}, error)
	VisitThisExpr(e *This) (interface{}, error)
	VisitUnaryExpr(e *Unary) (interface{}, error)
	VisitVariableExpr(e *Variable) (interface{}, error)
}

// Literal is a number, string, boolean, or nil constant.
type Literal struct {
	Value interface{}
}

func (e *Literal) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Variable is a read of a named binding.
type Variable struct {
	Name token.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign writes a new value to an existing named binding.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Unary is a prefix `-` or `!` application.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix arithmetic, comparison, or equality application.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Logical is `and`/`or`, which short-circuit and so cannot share
// Binary's eager-evaluate-both-sides semantics.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Grouping is a parenthesized sub-expression, kept as its own node
// (rather than collapsed away) so the printer can round-trip it.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Call is a function/class invocation: callee(args...).
type Call struct {
	Callee    Expr
	Paren     token.Token // closing ')', used to report arity/type errors at a line
	Arguments []Expr
}

func (e *Call) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// Get reads a property (field or method) off an instance: object.name.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// Set writes a field on an instance: object.name = value.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// This refers to the receiver inside a method body.
type This struct {
	Keyword token.Token
}

func (e *This) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

// Super refers to a method defined on the superclass: super.method.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }
