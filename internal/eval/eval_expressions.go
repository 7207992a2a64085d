/*
File    : loxgo/internal/eval/eval_expressions.go

ExprVisitor implementation for every expression except Call/Get/Set/
This/Super, which live in eval_calls.go alongside the function-call
helper they share.
*/
package eval

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/loxvalue"
	"github.com/akashmaji946/loxgo/internal/token"
)

func (e *Evaluator) VisitLiteralExpr(ex *ast.Literal) (interface{}, error) {
	return ex.Value, nil
}

func (e *Evaluator) VisitGroupingExpr(ex *ast.Grouping) (interface{}, error) {
	return e.evaluate(ex.Expression)
}

func (e *Evaluator) VisitVariableExpr(ex *ast.Variable) (interface{}, error) {
	return e.lookupVariable(ex.Name, ex)
}

func (e *Evaluator) VisitAssignExpr(ex *ast.Assign) (interface{}, error) {
	value, err := e.evaluate(ex.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := e.locals[ex]; ok {
		e.environment.AssignAt(distance, ex.Name.Lexeme, value)
		return value, nil
	}
	if ok := e.Globals.Assign(ex.Name.Lexeme, value); !ok {
		return nil, loxerr.NewRuntimeError(ex.Name, "Undefined variable '"+ex.Name.Lexeme+"'.")
	}
	return value, nil
}

func (e *Evaluator) VisitLogicalExpr(ex *ast.Logical) (interface{}, error) {
	left, err := e.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}
	if ex.Operator.Kind == "or" {
		if loxvalue.Truthy(left) {
			return left, nil
		}
	} else if !loxvalue.Truthy(left) {
		return left, nil
	}
	return e.evaluate(ex.Right)
}

func (e *Evaluator) VisitUnaryExpr(ex *ast.Unary) (interface{}, error) {
	right, err := e.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Operator.Kind {
	case "-":
		n, ok := right.(float64)
		if !ok {
			return nil, loxerr.NewRuntimeError(ex.Operator, "Operand must be a number.")
		}
		return -n, nil
	case "!":
		return !loxvalue.Truthy(right), nil
	}
	return nil, loxerr.NewRuntimeError(ex.Operator, "Unknown unary operator.")
}

func (e *Evaluator) VisitBinaryExpr(ex *ast.Binary) (interface{}, error) {
	left, err := e.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Kind {
	case "+":
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.NewRuntimeError(ex.Operator, "Operands must be two numbers or two strings.")
	case "-":
		ln, rn, err := numberOperands(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case "*":
		ln, rn, err := numberOperands(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case "/":
		ln, rn, err := numberOperands(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case ">":
		ln, rn, err := numberOperands(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case ">=":
		ln, rn, err := numberOperands(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case "<":
		ln, rn, err := numberOperands(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case "<=":
		ln, rn, err := numberOperands(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case "==":
		return loxvalue.Equal(left, right), nil
	case "!=":
		return !loxvalue.Equal(left, right), nil
	}
	return nil, loxerr.NewRuntimeError(ex.Operator, "Unknown binary operator.")
}

func numberOperands(operator token.Token, left, right interface{}) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, loxerr.NewRuntimeError(operator, "Operands must be numbers.")
	}
	return ln, rn, nil
}
