/*
File    : golox/lexer/token_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestToken_String tests the `tokenize` display form:
// "<TYPE_NAME> <lexeme> <literal>"
func TestToken_String(t *testing.T) {
	tests := []struct {
		Token    Token
		Expected string
	}{
		{NewToken(LEFT_PAREN, "(", 1), "LEFT_PAREN ( null"},
		{NewToken(EQUAL_EQUAL, "==", 1), "EQUAL_EQUAL == null"},
		{NewToken(VAR_KEY, "var", 1), "VAR var null"},
		{NewToken(AND_KEY, "and", 1), "AND and null"},
		{NewIdentToken("x", 1), "IDENTIFIER x x"},
		{NewStringToken("hello", 1), `STRING "hello" hello`},
		{NewNumberToken("1.0", 1.0, 1), "NUMBER 1.0 1.0"},
		{NewNumberToken("42", 42, 1), "NUMBER 42 42.0"},
		{NewNumberToken("45.67", 45.67, 1), "NUMBER 45.67 45.67"},
		{NewToken(EOF_TYPE, "", 1), "EOF  null"},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, test.Token.String())
	}
}

// TestFormatNumberLiteral tests the token-literal number rule: always a
// '.', integers as "N.0", fractional values in shortest decimal form.
func TestFormatNumberLiteral(t *testing.T) {
	tests := []struct {
		Value    float64
		Expected string
	}{
		{1.0, "1.0"},
		{0, "0.0"},
		{45.67, "45.67"},
		{0.5, "0.5"},
		{1234.1234, "1234.1234"},
		{200000, "200000.0"},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, FormatNumberLiteral(test.Value))
	}
}

// TestToken_IsTrivia verifies the trivia classification used by the
// parser's skip logic.
func TestToken_IsTrivia(t *testing.T) {
	trivia := []Token{
		NewToken(WHITESPACE_TRIVIA, " ", 1),
		NewToken(TAB_TRIVIA, "\t", 1),
		NewToken(NEWLINE_TRIVIA, "\n", 1),
		NewToken(COMMENT_TRIVIA, "// x", 1),
	}
	for _, tok := range trivia {
		assert.True(t, tok.IsTrivia(), "%s must be trivia", tok.Type)
	}

	solid := []Token{
		NewToken(LEFT_PAREN, "(", 1),
		NewToken(VAR_KEY, "var", 1),
		NewIdentToken("x", 1),
		NewToken(EOF_TYPE, "", 1),
	}
	for _, tok := range solid {
		assert.False(t, tok.IsTrivia(), "%s must not be trivia", tok.Type)
	}
}

// TestLookupIdent verifies keyword classification against the keyword
// table.
func TestLookupIdent(t *testing.T) {
	assert.Equal(t, IF_KEY, lookupIdent("if"))
	assert.Equal(t, WHILE_KEY, lookupIdent("while"))
	assert.Equal(t, NIL_KEY, lookupIdent("nil"))
	assert.Equal(t, IDENTIFIER, lookupIdent("ifs"))
	assert.Equal(t, IDENTIFIER, lookupIdent("myVar"))
	assert.Equal(t, IDENTIFIER, lookupIdent("_"))
}
