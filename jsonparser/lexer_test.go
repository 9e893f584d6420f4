package jsonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Tokenize([]byte(src))
	require.NoError(t, err)
	return tokens
}

func TestLexerStructural(t *testing.T) {
	tokens := collectTokens(t, "{ } [ ] : ,")
	expected := []TokenKind{
		TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket,
		TokenColon, TokenComma, TokenEOF,
	}
	require.Len(t, tokens, len(expected))
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Kind, "token %d", i)
	}
}

func TestLexerStructuralNoWhitespace(t *testing.T) {
	tokens := collectTokens(t, "{}[]:,")
	expected := []TokenKind{
		TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket,
		TokenColon, TokenComma, TokenEOF,
	}
	require.Len(t, tokens, len(expected))
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Kind, "token %d", i)
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\\b"`, `a\b`},
		{`"slash\/here"`, "slash/here"},
		{`"line1\nline2"`, "line1\nline2"},
		{`"tab\there"`, "tab\there"},
		{`"cr\rbs\bff\f"`, "cr\rbs\bff\f"},
		{`"A"`, "A"},
		{`"é"`, "é"},
		{`"中"`, "中"},
		{`"naïve utf8 passes through"`, "naïve utf8 passes through"},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, TokenString, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.literal, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	for _, src := range []string{`"hello`, `"ends with backslash\`} {
		_, err := Tokenize([]byte(src))
		require.Error(t, err, "input: %s", src)
		assert.IsType(t, &LexError{}, err, "input: %s", src)
		assert.Contains(t, err.Error(), "unterminated string", "input: %s", src)
	}
}

func TestLexerInvalidEscape(t *testing.T) {
	_, err := Tokenize([]byte(`"bad \x escape"`))
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
	assert.Contains(t, err.Error(), "invalid escape sequence")
}

func TestLexerUnicodeEscapeTooShort(t *testing.T) {
	for _, src := range []string{`"\u12`, `"\u"`, `"\uA"`} {
		_, err := Tokenize([]byte(src))
		require.Error(t, err, "input: %s", src)
		assert.IsType(t, &LexError{}, err, "input: %s", src)
	}
}

func TestLexerUnicodeEscapeNonHex(t *testing.T) {
	_, err := Tokenize([]byte(`"\uZZZZ"`))
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
	assert.Contains(t, err.Error(), `invalid \u escape`)
}

func TestLexerNumbers(t *testing.T) {
	tests := []string{
		"0", "42", "12345", "-1", "-0",
		"0.5", "3.14", "-3.14", "0.0",
		"1e5", "1E5", "1e+5", "1e-5", "2.5e10", "-2.5E-10",
	}
	for _, src := range tests {
		tokens := collectTokens(t, src)
		require.Len(t, tokens, 2, "input: %s", src)
		assert.Equal(t, TokenNumber, tokens[0].Kind, "input: %s", src)
		assert.Equal(t, src, tokens[0].Literal, "input: %s", src)
	}
}

func TestLexerLeadingZeroSplitsTokens(t *testing.T) {
	// The integer part of a number is a single '0' or a digit run, so "01"
	// lexes as two number tokens. The parser rejects the leftover token.
	tokens := collectTokens(t, "01")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, "0", tokens[0].Literal)
	assert.Equal(t, TokenNumber, tokens[1].Kind)
	assert.Equal(t, "1", tokens[1].Literal)
}

func TestLexerZeroWithFraction(t *testing.T) {
	tokens := collectTokens(t, "0.25")
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, "0.25", tokens[0].Literal)
}

func TestLexerInvalidNumbers(t *testing.T) {
	tests := []string{"-", "1e", "1e+", "-e"}
	for _, src := range tests {
		_, err := Tokenize([]byte(src))
		require.Error(t, err, "input: %s", src)
		assert.IsType(t, &LexError{}, err, "input: %s", src)
		assert.Contains(t, err.Error(), "invalid number", "input: %s", src)
	}
}

func TestLexerIntegerOverflow(t *testing.T) {
	_, err := Tokenize([]byte("123456789012345678901234567890"))
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
	assert.Contains(t, err.Error(), "invalid number")
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"true", TokenTrue},
		{"false", TokenFalse},
		{"null", TokenNull},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, tt.kind, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.input, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerInvalidKeyword(t *testing.T) {
	tests := []string{"tru", "truthy", "nul", "nan", "t"}
	for _, src := range tests {
		_, err := Tokenize([]byte(src))
		require.Error(t, err, "input: %s", src)
		assert.IsType(t, &LexError{}, err, "input: %s", src)
		assert.Contains(t, err.Error(), "invalid keyword", "input: %s", src)
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	tests := []string{"@", "#", "'single'", "=", "(1)"}
	for _, src := range tests {
		_, err := Tokenize([]byte(src))
		require.Error(t, err, "input: %s", src)
		assert.IsType(t, &LexError{}, err, "input: %s", src)
		assert.Contains(t, err.Error(), "unexpected character", "input: %s", src)
	}
}

func TestLexerEmpty(t *testing.T) {
	tokens := collectTokens(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
}

func TestLexerWhitespaceOnly(t *testing.T) {
	tokens := collectTokens(t, " \t\r\n  ")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
}

func TestLexerPosition(t *testing.T) {
	tokens := collectTokens(t, "1\n2 3")
	require.Len(t, tokens, 4) // 1, 2, 3, EOF
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 2, tokens[1].Pos.Line)
	assert.Equal(t, 1, tokens[1].Pos.Column)
	assert.Equal(t, 2, tokens[2].Pos.Line)
	assert.Equal(t, 3, tokens[2].Pos.Column)
}

func TestLexerStringPositionAtOpeningQuote(t *testing.T) {
	tokens := collectTokens(t, `  "abc"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 3, tokens[0].Pos.Column)
}

func TestLexerErrorPosition(t *testing.T) {
	_, err := Tokenize([]byte("[1,\n  @]"))
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Pos.Line)
	assert.Equal(t, 3, lexErr.Pos.Column)
}

func TestLexerFullDocument(t *testing.T) {
	tokens := collectTokens(t, `{"name": "Alice", "age": 30}`)
	expected := []TokenKind{
		TokenLBrace,
		TokenString, TokenColon, TokenString, TokenComma,
		TokenString, TokenColon, TokenNumber,
		TokenRBrace, TokenEOF,
	}
	require.Len(t, tokens, len(expected))
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Kind, "token %d: %s", i, tok.Literal)
	}
	assert.Equal(t, "name", tokens[1].Literal)
	assert.Equal(t, "Alice", tokens[3].Literal)
	assert.Equal(t, "age", tokens[5].Literal)
	assert.Equal(t, "30", tokens[7].Literal)
}
