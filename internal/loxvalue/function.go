/*
File    : loxgo/internal/loxvalue/function.go

Function is the runtime representation of a user-defined function or
method: a declaration paired with the environment captured at
definition time (the closure) and a flag marking whether it is a class
initializer, which changes what a bare `return;` (or falling off the
end of the body) yields. Grounded on the same Name/Params/Body/Scp
shape used for function.Function elsewhere, generalized here with
pointer-shared closures and the initializer flag. Function does not
run its own body: the call itself is performed by internal/eval.
*/
package loxvalue

import (
	"fmt"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
)

// Function is a user-defined callable: either a top-level `fun`
// declaration or a class method.
type Function struct {
	Declaration   *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction wraps a parsed function declaration with the environment
// in effect at the point of its declaration.
func NewFunction(decl *ast.Function, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Arity() int   { return len(f.Declaration.Params) }
func (f *Function) Name() string { return f.Declaration.Name.Lexeme }

// String renders `<fn NAME>`, including the closing bracket that some
// pylox revisions drop.
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name())
}

// Bind produces a fresh Function whose closure wraps f's closure with
// a new scope defining `this` as instance, an instance method on
// Function itself (some source revisions make `bind` a static/class
// method instead).
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}
