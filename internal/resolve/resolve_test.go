/*
File    : loxgo/internal/resolve/resolve_test.go
*/
package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/lexer"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/akashmaji946/loxgo/internal/resolve"
)

func resolveSource(t *testing.T, source string) (resolve.Locals, []error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source).Scan()
	require.Empty(t, scanErrs)
	statements, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)
	return resolve.New().Resolve(statements)
}

func TestResolve_BlockVariableGetsLocalDistance(t *testing.T) {
	locals, errs := resolveSource(t, `{ var a = 1; print a; }`)
	assert.Empty(t, errs)
	assert.Len(t, locals, 1)
	for _, distance := range locals {
		assert.Equal(t, 0, distance)
	}
}

func TestResolve_GlobalReferenceIsLeftUnresolved(t *testing.T) {
	locals, errs := resolveSource(t, `var a = 1; print a;`)
	assert.Empty(t, errs)
	assert.Empty(t, locals)
}

func TestResolve_ReadInOwnInitializerIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `{ var a = a; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "own initializer")
}

func TestResolve_ReturnAtTopLevelIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `return 1;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Can't return from top-level code.")
}

func TestResolve_ThisOutsideClassIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `print this;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Can't use 'this' outside of a class.")
}

func TestResolve_SuperWithoutSuperclassIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `class A { f() { return super.f(); } }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Can't use 'super' in a class with no superclass.")
}

func TestResolve_SelfInheritanceIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `class A < A {}`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "can't inherit from itself")
}

func TestResolve_RedeclarationInSameScopeIsAnError(t *testing.T) {
	_, errs := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Already a variable with this name in this scope.")
}
