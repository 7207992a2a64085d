/*
File    : loxgo/internal/lexer/lexer.go
Package : lexer

Package lexer turns Lox source text into a token stream. It is a
single-pass scanner with one byte of lookahead (two for a decimal
point).
*/
package lexer

import (
	"strconv"

	"github.com/akashmaji946/loxgo/internal/loxerr"
	"github.com/akashmaji946/loxgo/internal/token"
)

// Lexer holds scanning state over one source string. It is not
// reusable across sources; build a fresh Lexer per Scan call.
type Lexer struct {
	src     string
	start   int // offset of the first byte of the token under construction
	current int // offset of the next unconsumed byte
	line    int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Scan consumes the entire source and returns its tokens, always
// terminated by exactly one EOF token. Scan errors are collected and
// returned alongside whatever tokens were produced; the scanner
// recovers from an unexpected character by resuming at the next byte,
// so a single bad byte never aborts scanning the rest of the file.
func (l *Lexer) Scan() ([]token.Token, []error) {
	var tokens []token.Token
	var errs []error

	for !l.atEnd() {
		l.start = l.current
		tok, err := l.scanToken()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if tok != nil {
			tokens = append(tokens, *tok)
		}
	}

	tokens = append(tokens, token.New(token.EOF, "", nil, l.line))
	return tokens, errs
}

func (l *Lexer) scanToken() (*token.Token, error) {
	c := l.advance()

	switch c {
	case ' ', '\t', '\r':
		return nil, nil
	case '\n':
		l.line++
		return nil, nil
	case '(':
		return l.simple(token.LeftParen), nil
	case ')':
		return l.simple(token.RightParen), nil
	case '{':
		return l.simple(token.LeftBrace), nil
	case '}':
		return l.simple(token.RightBrace), nil
	case ',':
		return l.simple(token.Comma), nil
	case '.':
		return l.simple(token.Dot), nil
	case '-':
		return l.simple(token.Minus), nil
	case '+':
		return l.simple(token.Plus), nil
	case ';':
		return l.simple(token.Semicolon), nil
	case '*':
		return l.simple(token.Star), nil
	case '!':
		return l.twoChar('=', token.BangEqual, token.Bang), nil
	case '=':
		return l.twoChar('=', token.EqualEqual, token.Equal), nil
	case '<':
		return l.twoChar('=', token.LessEqual, token.Less), nil
	case '>':
		return l.twoChar('=', token.GreaterEqual, token.Greater), nil
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
			return nil, nil
		}
		return l.simple(token.Slash), nil
	case '"':
		return l.scanString()
	default:
		if isDigit(c) {
			return l.scanNumber(), nil
		}
		if isAlpha(c) {
			return l.scanIdentifier(), nil
		}
		return nil, loxerr.NewScanError(l.line, "Unexpected character: "+string(c))
	}
}

func (l *Lexer) simple(kind token.Kind) *token.Token {
	tok := token.New(kind, l.lexeme(), nil, l.line)
	return &tok
}

// twoChar emits two if the next byte is expected (consuming it), else one.
func (l *Lexer) twoChar(expected byte, two, one token.Kind) *token.Token {
	if l.match(expected) {
		return l.simple(two)
	}
	return l.simple(one)
}

func (l *Lexer) scanString() (*token.Token, error) {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		return nil, loxerr.NewScanError(l.line, "Unterminated string")
	}
	l.advance() // closing quote

	value := l.src[l.start+1 : l.current-1]
	tok := token.New(token.String, l.lexeme(), value, l.line)
	return &tok, nil
}

func (l *Lexer) scanNumber() *token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	value, _ := strconv.ParseFloat(l.lexeme(), 64)
	tok := token.New(token.Number, l.lexeme(), value, l.line)
	return &tok
}

func (l *Lexer) scanIdentifier() *token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := l.lexeme()
	kind, isKeyword := token.Keywords[lexeme]
	if !isKeyword {
		kind = token.Identifier
	}
	tok := token.New(kind, lexeme, nil, l.line)
	return &tok
}

func (l *Lexer) lexeme() string {
	return l.src[l.start:l.current]
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
