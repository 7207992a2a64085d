/*
File    : loxgo/internal/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/internal/token"
)

func TestScan_Punctuation(t *testing.T) {
	tokens, errs := New("(){},.-+;*").Scan()
	assert.Empty(t, errs)

	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.EOF,
	}, kinds)
}

func TestScan_TwoCharOperators(t *testing.T) {
	tokens, errs := New("!= == <= >= ! = < >").Scan()
	assert.Empty(t, errs)
	assert.Equal(t, token.BangEqual, tokens[0].Kind)
	assert.Equal(t, token.EqualEqual, tokens[1].Kind)
	assert.Equal(t, token.LessEqual, tokens[2].Kind)
	assert.Equal(t, token.GreaterEqual, tokens[3].Kind)
	assert.Equal(t, token.Bang, tokens[4].Kind)
	assert.Equal(t, token.Equal, tokens[5].Kind)
	assert.Equal(t, token.Less, tokens[6].Kind)
	assert.Equal(t, token.Greater, tokens[7].Kind)
}

func TestScan_String(t *testing.T) {
	tokens, errs := New(`"hello world"`).Scan()
	assert.Empty(t, errs)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScan_UnterminatedString(t *testing.T) {
	_, errs := New(`"hello`).Scan()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unterminated string")
}

func TestScan_Number(t *testing.T) {
	tokens, errs := New("123 45.67").Scan()
	assert.Empty(t, errs)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestScan_KeywordsAndIdentifiers(t *testing.T) {
	tokens, errs := New("class fun myVar").Scan()
	assert.Empty(t, errs)
	assert.Equal(t, token.Class, tokens[0].Kind)
	assert.Equal(t, token.Fun, tokens[1].Kind)
	assert.Equal(t, token.Identifier, tokens[2].Kind)
	assert.Equal(t, "myVar", tokens[2].Lexeme)
}

func TestScan_CommentsAreSkipped(t *testing.T) {
	tokens, errs := New("1 // a comment\n2").Scan()
	assert.Empty(t, errs)
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
}

func TestScan_UnexpectedCharacterContinuesScanning(t *testing.T) {
	tokens, errs := New("1 @ 2").Scan()
	assert.Len(t, errs, 1)
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
}

func TestScan_AlwaysAppendsEOF(t *testing.T) {
	tokens, _ := New("").Scan()
	assert.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}
