/*
File    : loxgo/internal/loxerr/loxerr.go
Package : loxerr

Package loxerr defines the pipeline's error taxonomy: ScanError,
ParseError, ResolveError and RuntimeError. Each is a small typed error
carrying a source line, grounded on the same convention elsewhere
(objects.Error in an objects package) of giving every domain failure
its own lightweight type rather than routing everything through
fmt.Errorf.
*/
package loxerr

import (
	"fmt"

	"github.com/akashmaji946/loxgo/internal/token"
)

// ScanError is reported by the lexer: an unexpected byte or an
// unterminated string literal.
type ScanError struct {
	Line    int
	Message string
}

func NewScanError(line int, message string) *ScanError {
	return &ScanError{Line: line, Message: message}
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParseError is reported by the parser against the offending token.
// Error formats "at end" when that token is EOF and "at '<lexeme>'"
// otherwise.
type ParseError struct {
	Token   token.Token
	Message string
}

func NewParseError(tok token.Token, message string) *ParseError {
	return &ParseError{Token: tok, Message: message}
}

func (e *ParseError) Error() string {
	where := " at '" + e.Token.Lexeme + "'"
	if e.Token.Kind == token.EOF {
		where = " at end"
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, where, e.Message)
}

// ResolveError is reported by the static resolver: illegal read-in-own
// initializer, redeclaration, misplaced return/this/super, or
// self-inheritance.
type ResolveError struct {
	Token   token.Token
	Message string
}

func NewResolveError(tok token.Token, message string) *ResolveError {
	return &ResolveError{Token: tok, Message: message}
}

func (e *ResolveError) Error() string {
	where := " at '" + e.Token.Lexeme + "'"
	if e.Token.Kind == token.EOF {
		where = " at end"
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, where, e.Message)
}

// RuntimeError aborts evaluation of the current top-level execution.
// It is an ordinary Go error returned up the call stack from every
// Eval method: plain error propagation stands in for the host
// exception a tree-walking interpreter would otherwise throw.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// ReturnSignal is not a failure: it is the sentinel that unwinds a
// function call with its return value, caught exactly at the call
// boundary. It implements error only so it can travel through the
// same error-returning call chain as a genuine RuntimeError without a
// second control-flow channel.
type ReturnSignal struct {
	Value interface{}
}

func NewReturnSignal(value interface{}) *ReturnSignal {
	return &ReturnSignal{Value: value}
}

func (r *ReturnSignal) Error() string {
	return "return used outside of a function call"
}
