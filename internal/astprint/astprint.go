/*
File    : loxgo/internal/astprint/astprint.go
Package : astprint

Package astprint renders a parsed statement list back out as an
indented tree, for the `--print-ast` driver flag. Its shape, a
visitor holding an indent level and a bytes.Buffer, walking the tree
and writing one line per node (its kind, then its name, operator or
literal where it has one), follows the same
PrintingVisitor pattern used for debug-printing parse trees elsewhere,
implemented here against ast.ExprVisitor/ast.StmtVisitor so it can
walk Lox's AST.
*/
package astprint

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/loxvalue"
)

const indentSize = 2

// Printer walks a statement list and renders it as an indented tree.
// Not re-entrant: create a fresh Printer per tree.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// New creates an empty Printer.
func New() *Printer {
	return &Printer{}
}

// Print renders statements and returns the accumulated text.
func Print(statements []ast.Stmt) string {
	p := New()
	for _, stmt := range statements {
		p.walkStmt(stmt)
	}
	return p.buf.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *Printer) nested(body func()) {
	p.indent += indentSize
	body()
	p.indent -= indentSize
}

func (p *Printer) walkStmt(s ast.Stmt) {
	_, _ = s.AcceptStmt(p)
}

func (p *Printer) walkExpr(e ast.Expr) {
	_, _ = e.AcceptExpr(p)
}

func (p *Printer) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	p.line("Block")
	p.nested(func() {
		for _, stmt := range s.Statements {
			p.walkStmt(stmt)
		}
	})
	return nil, nil
}

func (p *Printer) VisitClassStmt(s *ast.Class) (interface{}, error) {
	p.line("Class %s", s.Name.Lexeme)
	p.nested(func() {
		if s.Superclass != nil {
			p.line("Superclass %s", s.Superclass.Name.Lexeme)
		}
		for _, method := range s.Methods {
			p.walkStmt(method)
		}
	})
	return nil, nil
}

func (p *Printer) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	p.line("Expression")
	p.nested(func() { p.walkExpr(s.Expr) })
	return nil, nil
}

func (p *Printer) VisitFunctionStmt(s *ast.Function) (interface{}, error) {
	p.line("Function %s", s.Name.Lexeme)
	p.nested(func() {
		for _, stmt := range s.Body {
			p.walkStmt(stmt)
		}
	})
	return nil, nil
}

func (p *Printer) VisitIfStmt(s *ast.If) (interface{}, error) {
	p.line("If")
	p.nested(func() {
		p.walkExpr(s.Condition)
		p.walkStmt(s.Then)
		if s.Else != nil {
			p.walkStmt(s.Else)
		}
	})
	return nil, nil
}

func (p *Printer) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	p.line("Print")
	p.nested(func() { p.walkExpr(s.Expr) })
	return nil, nil
}

func (p *Printer) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	p.line("Return")
	if s.Value != nil {
		p.nested(func() { p.walkExpr(s.Value) })
	}
	return nil, nil
}

func (p *Printer) VisitVarStmt(s *ast.Var) (interface{}, error) {
	p.line("Var %s", s.Name.Lexeme)
	if s.Initializer != nil {
		p.nested(func() { p.walkExpr(s.Initializer) })
	}
	return nil, nil
}

func (p *Printer) VisitWhileStmt(s *ast.While) (interface{}, error) {
	p.line("While")
	p.nested(func() {
		p.walkExpr(s.Condition)
		p.walkStmt(s.Body)
	})
	return nil, nil
}

func (p *Printer) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	p.line("Assign %s", e.Name.Lexeme)
	p.nested(func() { p.walkExpr(e.Value) })
	return nil, nil
}

func (p *Printer) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	p.line("Binary %s", e.Operator.Lexeme)
	p.nested(func() {
		p.walkExpr(e.Left)
		p.walkExpr(e.Right)
	})
	return nil, nil
}

func (p *Printer) VisitCallExpr(e *ast.Call) (interface{}, error) {
	p.line("Call")
	p.nested(func() {
		p.walkExpr(e.Callee)
		for _, arg := range e.Arguments {
			p.walkExpr(arg)
		}
	})
	return nil, nil
}

func (p *Printer) VisitGetExpr(e *ast.Get) (interface{}, error) {
	p.line("Get %s", e.Name.Lexeme)
	p.nested(func() { p.walkExpr(e.Object) })
	return nil, nil
}

func (p *Printer) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	p.line("Grouping")
	p.nested(func() { p.walkExpr(e.Expression) })
	return nil, nil
}

func (p *Printer) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	p.line("Literal %s", loxvalue.Stringify(e.Value))
	return nil, nil
}

func (p *Printer) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	p.line("Logical %s", e.Operator.Lexeme)
	p.nested(func() {
		p.walkExpr(e.Left)
		p.walkExpr(e.Right)
	})
	return nil, nil
}

func (p *Printer) VisitSetExpr(e *ast.Set) (interface{}, error) {
	p.line("Set %s", e.Name.Lexeme)
	p.nested(func() {
		p.walkExpr(e.Object)
		p.walkExpr(e.Value)
	})
	return nil, nil
}

func (p *Printer) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	p.line("Super %s", e.Method.Lexeme)
	return nil, nil
}

func (p *Printer) VisitThisExpr(e *ast.This) (interface{}, error) {
	p.line("This")
	return nil, nil
}

func (p *Printer) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	p.line("Unary %s", e.Operator.Lexeme)
	p.nested(func() { p.walkExpr(e.Right) })
	return nil, nil
}

func (p *Printer) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	p.line("Variable %s", e.Name.Lexeme)
	return nil, nil
}
