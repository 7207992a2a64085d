/*
File    : loxgo/internal/environment/environment_test.go
*/
package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/internal/environment"
)

func TestDefineAndGet(t *testing.T) {
	env := environment.New(nil)
	env.Define("a", 1.0)
	value, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1.0, value)
}

func TestGetWalksEnclosingChain(t *testing.T) {
	globals := environment.New(nil)
	globals.Define("a", 1.0)
	inner := environment.New(globals)
	value, ok := inner.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1.0, value)
}

func TestGetMissingReportsNotFound(t *testing.T) {
	env := environment.New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssignWalksEnclosingChainToExistingBinding(t *testing.T) {
	globals := environment.New(nil)
	globals.Define("a", 1.0)
	inner := environment.New(globals)

	ok := inner.Assign("a", 2.0)
	assert.True(t, ok)

	value, _ := globals.Get("a")
	assert.Equal(t, 2.0, value)
}

func TestAssignMissingReportsFailure(t *testing.T) {
	env := environment.New(nil)
	assert.False(t, env.Assign("missing", 1.0))
}

// SharedByPointer verifies the closure-identity invariant: two
// environments chained off the same enclosing node observe each
// other's mutations through it, because Environment is always shared
// by pointer rather than copied.
func TestSharedByPointer(t *testing.T) {
	enclosing := environment.New(nil)
	enclosing.Define("count", 0.0)

	a := environment.New(enclosing)
	b := environment.New(enclosing)

	a.AssignAt(1, "count", 5.0)
	value := b.GetAt(1, "count")
	assert.Equal(t, 5.0, value)
}
