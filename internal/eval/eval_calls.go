/*
File    : loxgo/internal/eval/eval_calls.go

Call/Get/Set/This/Super visitors, plus callFunction, the shared
mechanics of invoking a user-defined Function: bind arguments into a
fresh environment chained off the closure, run the body, and unwind
either a return value or (for an initializer) always `this`. Kept in
the eval package rather than on loxvalue.Function itself so that
loxvalue never needs to import eval (Function doesn't know how to run
a body, only the Evaluator does).
*/
package eval

import (
	"strconv"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/loxvalue"
)

func (e *Evaluator) VisitCallExpr(ex *ast.Call) (interface{}, error) {
	callee, err := e.evaluate(ex.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, len(ex.Arguments))
	for _, argExpr := range ex.Arguments {
		arg, err := e.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(loxvalue.Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(ex.Paren, "Expected "+strconv.Itoa(callable.Arity())+" arguments but got "+strconv.Itoa(len(args))+".")
	}

	switch fn := callable.(type) {
	case *loxvalue.Native:
		return fn.Fn(args)
	case *loxvalue.Function:
		return e.callFunction(fn, args)
	case *loxvalue.Class:
		instance := loxvalue.NewInstance(fn)
		if init := fn.FindMethod("init"); init != nil {
			if _, err := e.callFunction(init.Bind(instance), args); err != nil {
				return nil, err
			}
		}
		return instance, nil
	default:
		return nil, loxerr.NewRuntimeError(ex.Paren, "Can only call functions and classes.")
	}
}

// callFunction runs fn's body against a fresh environment chained off
// its closure with parameters bound to args. A *loxerr.ReturnSignal
// unwinding out of the body is caught here; this is its only
// interception point, unwinding exactly to the call boundary. An
// initializer always yields `this` regardless of what (if anything)
// the body returned.
func (e *Evaluator) callFunction(fn *loxvalue.Function, args []interface{}) (interface{}, error) {
	env := environment.New(fn.Closure)
	for i, param := range fn.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := e.executeBlock(fn.Declaration.Body, env)
	if err == nil {
		if fn.IsInitializer {
			return fn.Closure.GetAt(0, "this"), nil
		}
		return nil, nil
	}

	if ret, ok := err.(*loxerr.ReturnSignal); ok {
		if fn.IsInitializer {
			return fn.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	return nil, err
}

func (e *Evaluator) VisitGetExpr(ex *ast.Get) (interface{}, error) {
	object, err := e.evaluate(ex.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxvalue.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Name, "Only instances have properties.")
	}
	value, ok := instance.Get(ex.Name.Lexeme)
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Name, "Undefined property '"+ex.Name.Lexeme+"'.")
	}
	return value, nil
}

func (e *Evaluator) VisitSetExpr(ex *ast.Set) (interface{}, error) {
	object, err := e.evaluate(ex.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxvalue.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Name, "Only instances have fields.")
	}
	value, err := e.evaluate(ex.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(ex.Name.Lexeme, value)
	return value, nil
}

func (e *Evaluator) VisitThisExpr(ex *ast.This) (interface{}, error) {
	return e.lookupVariable(ex.Keyword, ex)
}

// VisitSuperExpr resolves `super.method` by reading the synthetic
// `super` binding at the recorded distance and `this` one level
// closer, both installed by VisitClassStmt's env chaining, following
// the reference jlox-in-Go port's super-resolution shape.
func (e *Evaluator) VisitSuperExpr(ex *ast.Super) (interface{}, error) {
	distance, ok := e.locals[ex]
	if !ok {
		return nil, loxerr.NewRuntimeError(ex.Keyword, "Undefined variable 'super'.")
	}
	superclass, _ := e.environment.GetAt(distance, "super").(*loxvalue.Class)
	instance, _ := e.environment.GetAt(distance-1, "this").(*loxvalue.Instance)

	method := superclass.FindMethod(ex.Method.Lexeme)
	if method == nil {
		return nil, loxerr.NewRuntimeError(ex.Method, "Undefined property '"+ex.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
