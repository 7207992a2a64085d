/*
File    : loxgo/internal/eval/eval_test.go
*/
package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/eval"
	"github.com/akashmaji946/loxgo/internal/lexer"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/akashmaji946/loxgo/internal/resolve"
)

func interpret(t *testing.T, source string) (string, error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source).Scan()
	require.Empty(t, scanErrs)
	statements, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)
	locals, resolveErrs := resolve.New().Resolve(statements)
	require.Empty(t, resolveErrs)

	var out bytes.Buffer
	evaluator := eval.New()
	evaluator.SetOutput(&out)
	evaluator.SetLocals(locals)
	err := evaluator.Interpret(statements)
	return out.String(), err
}

func TestInterpret_Truthiness(t *testing.T) {
	out, err := interpret(t, `if (0) print "truthy"; else print "falsy";`)
	require.NoError(t, err)
	assert.Equal(t, "truthy\n", out)
}

func TestInterpret_NilAndFalseAreFalsy(t *testing.T) {
	out, err := interpret(t, `if (nil) print "a"; else print "b"; if (false) print "c"; else print "d";`)
	require.NoError(t, err)
	assert.Equal(t, "b\nd\n", out)
}

func TestInterpret_NumberStringifyDropsTrailingZero(t *testing.T) {
	out, err := interpret(t, `print 3.0; print 3.5;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n3.5\n", out)
}

func TestInterpret_EqualityIsSymmetricForNil(t *testing.T) {
	out, err := interpret(t, `print nil == nil; print nil == 1; print 1 == nil;`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse\nfalse\n", out)
}

func TestInterpret_FunctionStringifiesWithClosingBracket(t *testing.T) {
	out, err := interpret(t, `fun f() {} print f;`)
	require.NoError(t, err)
	assert.Equal(t, "<fn f>\n", out)
}

func TestInterpret_InstanceFieldsAreMutable(t *testing.T) {
	out, err := interpret(t, `class A {} var a = A(); a.x = 1; print a.x; a.x = a.x + 1; print a.x;`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpret_InitializerAlwaysReturnsThis(t *testing.T) {
	out, err := interpret(t, `
		class Counter {
			init(start) { this.value = start; }
		}
		var c = Counter(5);
		print c.value;
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := interpret(t, `print missing;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := interpret(t, `var a = 1; a();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestInterpret_WrongArityIsRuntimeError(t *testing.T) {
	_, err := interpret(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestInterpret_ClockNativeIsCallableWithZeroArity(t *testing.T) {
	out, err := interpret(t, `print clock() >= 0;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
