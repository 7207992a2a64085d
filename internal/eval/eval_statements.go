/*
File    : loxgo/internal/eval/eval_statements.go

StmtVisitor implementation. Every method returns (nil, err) on success:
statements have no value of their own, only side effects, except that
a *loxerr.ReturnSignal returned from VisitReturnStmt rides the same
error channel up through executeBlock to the function-call boundary in
eval_calls.go, which is the only place that ever type-asserts for it.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/loxvalue"
)

func (e *Evaluator) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	_, err := e.evaluate(s.Expr)
	return nil, err
}

func (e *Evaluator) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	value, err := e.evaluate(s.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.output, loxvalue.Stringify(value))
	return nil, nil
}

func (e *Evaluator) VisitVarStmt(s *ast.Var) (interface{}, error) {
	var value interface{}
	if s.Initializer != nil {
		v, err := e.evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	e.environment.Define(s.Name.Lexeme, value)
	return nil, nil
}

func (e *Evaluator) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	return nil, e.executeBlock(s.Statements, environment.New(e.environment))
}

func (e *Evaluator) VisitIfStmt(s *ast.If) (interface{}, error) {
	condition, err := e.evaluate(s.Condition)
	if err != nil {
		return nil, err
	}
	if loxvalue.Truthy(condition) {
		return e.execute(s.Then)
	}
	if s.Else != nil {
		return e.execute(s.Else)
	}
	return nil, nil
}

func (e *Evaluator) VisitWhileStmt(s *ast.While) (interface{}, error) {
	for {
		condition, err := e.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if !loxvalue.Truthy(condition) {
			return nil, nil
		}
		if _, err := e.execute(s.Body); err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) VisitFunctionStmt(s *ast.Function) (interface{}, error) {
	fn := loxvalue.NewFunction(s, e.environment, false)
	e.environment.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (e *Evaluator) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	var value interface{}
	if s.Value != nil {
		v, err := e.evaluate(s.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nil, loxerr.NewReturnSignal(value)
}

func (e *Evaluator) VisitClassStmt(s *ast.Class) (interface{}, error) {
	var superclass *loxvalue.Class
	if s.Superclass != nil {
		value, err := e.evaluate(s.Superclass)
		if err != nil {
			return nil, err
		}
		sc, ok := value.(*loxvalue.Class)
		if !ok {
			return nil, loxerr.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	e.environment.Define(s.Name.Lexeme, nil)

	classEnv := e.environment
	if s.Superclass != nil {
		classEnv = environment.New(e.environment)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*loxvalue.Function, len(s.Methods))
	for _, method := range s.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = loxvalue.NewFunction(method, classEnv, isInitializer)
	}

	class := loxvalue.NewClass(s.Name.Lexeme, superclass, methods)
	e.environment.Assign(s.Name.Lexeme, class)
	return nil, nil
}
