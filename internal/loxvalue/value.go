/*
File    : loxgo/internal/loxvalue/value.go
Package : loxvalue

Package loxvalue defines Lox's dynamic value domain: nil, boolean,
number, string, callable, and instance. Primitives
(nil/bool/float64/string) travel as plain Go values rather than boxed
in a wrapper type, simpler than a GoMixObject-style boxing
(objects.Integer, objects.String, ...) and matching the reference
jlox-in-Go port's use of bare interface{}, since Lox has only four
primitive kinds and no need for a GetType() tag on each of them. The
non-primitive kinds that DO need identity and behavior, functions,
classes, instances, get real struct types below, which is where the
"every kind is a type implementing a small interface" instinct
(objects.GoMixObject) is kept: Callable plays that role here.
*/
package loxvalue

import (
	"fmt"
	"strconv"
	"strings"
)

// Callable is implemented by every value that can appear as the callee
// of a Call expression: user functions, classes (as constructors), and
// natives.
type Callable interface {
	Arity() int
	Name() string
}

// Truthy implements Lox's truthiness rule: nil and false are falsy,
// everything else, including 0 and "", is truthy.
func Truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements Lox's equality rule: nil equals only nil;
// numbers/strings/booleans compare by value; functions/classes/
// instances compare by identity (Go's == on pointers already gives us
// that once both operands share a concrete pointer type).
func Equal(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders a runtime value the way `print` and the REPL
// display it.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		return strings.TrimSuffix(text, ".0")
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TypeName names the kind of a runtime value for diagnostics; it is
// not part of any user-observable contract.
func TypeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case Callable:
		return "callable"
	case *Instance:
		return "instance"
	default:
		return "unknown"
	}
}
