/*
File    : loxgo/internal/loxvalue/native.go

Native wraps a host-implemented function (currently just `clock`) as a
Callable so it can sit in the globals environment next to user
functions and classes indistinguishably from the evaluator's point of
view.
*/
package loxvalue

import "fmt"

// NativeFn is the Go function a Native callable dispatches to. args is
// already arity-checked by the caller (internal/eval).
type NativeFn func(args []interface{}) (interface{}, error)

// Native is a builtin Lox callable implemented in Go.
type Native struct {
	FnName string
	Arg    int
	Fn     NativeFn
}

// NewNative builds a Native callable named name with the given arity.
func NewNative(name string, arity int, fn NativeFn) *Native {
	return &Native{FnName: name, Arg: arity, Fn: fn}
}

func (n *Native) Name() string  { return n.FnName }
func (n *Native) Arity() int    { return n.Arg }
func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.FnName) }
