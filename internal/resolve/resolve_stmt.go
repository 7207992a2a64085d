/*
File    : loxgo/internal/resolve/resolve_stmt.go

StmtVisitor implementation: each visit method pushes/pops scopes where
that statement form introduces one, then recurses into its children.
*/
package resolve

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/loxerr"
)

func (r *Resolver) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) (interface{}, error) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) (interface{}, error) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, functionFunction)
	return nil, nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) (interface{}, error) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	if r.currentFunction == functionNone {
		r.errors = append(r.errors, loxerr.NewResolveError(s.Keyword, "Can't return from top-level code."))
	}
	if s.Value != nil {
		if r.currentFunction == functionInitializer {
			r.errors = append(r.errors, loxerr.NewResolveError(s.Keyword, "Can't return a value from an initializer."))
		}
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) (interface{}, error) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil, nil
}

// VisitClassStmt implements the class rules: self-inheritance check,
// the `super` indirection scope, the `this` indirection scope for
// every method, and per-method function kind (initializer vs. method).
func (r *Resolver) VisitClassStmt(s *ast.Class) (interface{}, error) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errors = append(r.errors, loxerr.NewResolveError(s.Superclass.Name, "A class can't inherit from itself."))
		} else {
			r.currentClass = classSubclass
			r.resolveExpr(s.Superclass)
		}
	}

	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope() // this

	if s.Superclass != nil {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
	return nil, nil
}
