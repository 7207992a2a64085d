/*
File    : loxgo/internal/parser/parser.go
Package : parser

Package parser implements a recursive-descent parser over the Lox
grammar. It turns a token slice into a statement list, reporting every
grammar violation it finds rather than stopping at the first one,
collecting errors into a slice of *loxerr.ParseError instead of
panicking on the first one.

The parser is split across several files by concern:
  - parser.go: cursor state, token helpers, synchronization
  - parser_declarations.go: declaration, classDecl, funDecl, varDecl
  - parser_statements.go: statement, block, if/while/for/print/return
  - parser_expressions.go: the full expression precedence ladder
*/
package parser

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/token"
)

const maxArgs = 255

// Parser walks a fixed token slice with a single cursor.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []error
}

// New creates a Parser over tokens. tokens must end with exactly one
// EOF token, as guaranteed by lexer.Scan.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a full program (the `program` rule) and returns its
// statement list together with every parse error encountered. A
// declaration that fails to parse is dropped rather than replaced with
// a nil entry, so callers should treat a non-empty error slice as "do
// not evaluate" regardless of how many statements came back.
func (p *Parser) Parse() ([]ast.Stmt, []error) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements, p.errors
}

// --- cursor primitives ---

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past an expected token kind, or reports a
// "Expect X" ParseError anchored at the current token.
func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, loxerr.NewParseError(p.peek(), message)
}

// synchronize discards tokens until it is positioned at a likely
// statement boundary, so a single malformed declaration does not
// cascade into a wall of spurious errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
