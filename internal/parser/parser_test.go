/*
File    : loxgo/internal/parser/parser_test.go
*/
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/lexer"
	"github.com/akashmaji946/loxgo/internal/parser"
)

func parseSource(t *testing.T, source string) ([]ast.Stmt, []error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source).Scan()
	require.Empty(t, scanErrs)
	return parser.New(tokens).Parse()
}

func TestParse_PrecedenceBindsMultiplicationTighterThanAddition(t *testing.T) {
	statements, errs := parseSource(t, `1 + 2 * 3;`)
	require.Empty(t, errs)
	require.Len(t, statements, 1)

	exprStmt := statements[0].(*ast.Expression)
	binary := exprStmt.Expr.(*ast.Binary)
	assert.Equal(t, "+", string(binary.Operator.Kind))
	_, rightIsBinary := binary.Right.(*ast.Binary)
	assert.True(t, rightIsBinary, "right operand of + should itself be the * expression")
}

func TestParse_ForDesugarsIntoWhileInsideBlock(t *testing.T) {
	statements, errs := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Empty(t, errs)
	require.Len(t, statements, 1)

	block, ok := statements[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	_, isVar := block.Statements[0].(*ast.Var)
	assert.True(t, isVar)
	_, isWhile := block.Statements[1].(*ast.While)
	assert.True(t, isWhile)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	statements, errs := parseSource(t, `class B < A { f() { return 1; } }`)
	require.Empty(t, errs)
	require.Len(t, statements, 1)

	class := statements[0].(*ast.Class)
	assert.Equal(t, "B", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "f", class.Methods[0].Name.Lexeme)
}

func TestParse_AssignmentToNonLvalueIsReportedNotFatal(t *testing.T) {
	_, errs := parseSource(t, `1 = 2;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Invalid assignment target.")
}

func TestParse_MissingSemicolonIsAParseError(t *testing.T) {
	_, errs := parseSource(t, `var a = 1`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Expect ';'")
}

func TestParse_TooManyArgumentsIsReportedNotFatal(t *testing.T) {
	args := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	statements, errs := parseSource(t, `f(`+args+`);`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Can't have more than 255 arguments.")
	require.Len(t, statements, 1) // the call still parses despite the reported error
}
