/*
File    : loxgo/internal/driver/driver_test.go

End-to-end scenario tests running the full scan→parse→resolve→eval
pipeline through Session.Run, covering the six numbered end-to-end
scenarios verbatim.
*/
package driver_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/internal/driver"
)

func run(t *testing.T, source string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errs bytes.Buffer
	session := driver.New(driver.WithOutput(&out))
	code = session.Run(source, &errs)
	return out.String(), errs.String(), code
}

func TestScenario1_ArithmeticPrecedence(t *testing.T) {
	out, _, code := run(t, `print 1 + 2 * 3;`)
	assert.Equal(t, "7\n", out)
	assert.Equal(t, driver.ExitOK, code)
}

func TestScenario2_BlockScopingShadowsThenRestores(t *testing.T) {
	out, _, code := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	assert.Equal(t, "2\n1\n", out)
	assert.Equal(t, driver.ExitOK, code)
}

func TestScenario3_ClosureSharesMutableUpvalue(t *testing.T) {
	out, _, code := run(t, `fun make(){var i=0; fun inc(){i=i+1; return i;} return inc;} var c = make(); print c(); print c(); print c();`)
	assert.Equal(t, "1\n2\n3\n", out)
	assert.Equal(t, driver.ExitOK, code)
}

func TestScenario4_MethodCallOnInstance(t *testing.T) {
	out, _, code := run(t, `class A { greet() { print "hi"; } } A().greet();`)
	assert.Equal(t, "hi\n", out)
	assert.Equal(t, driver.ExitOK, code)
}

func TestScenario5_SuperDispatch(t *testing.T) {
	out, _, code := run(t, `class A { f(){ return "A"; } } class B < A { f(){ return super.f() + "B"; } } print B().f();`)
	assert.Equal(t, "AB\n", out)
	assert.Equal(t, driver.ExitOK, code)
}

func TestScenario6_StringPlusNumberIsRuntimeError(t *testing.T) {
	_, errs, code := run(t, `print "a" + 1;`)
	assert.Contains(t, errs, "two numbers or two strings")
	assert.Equal(t, driver.ExitRuntime, code)
}

func TestStaticErrorsSkipEvaluationEntirely(t *testing.T) {
	out, errs, code := run(t, `print ;`)
	assert.Empty(t, out)
	assert.NotEmpty(t, errs)
	assert.Equal(t, driver.ExitStatic, code)
}
