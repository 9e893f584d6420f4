package jsonparser

import "fmt"

// ParseError is the base error type for all jsonparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unexpected character,
// unterminated string, bad escape, malformed number).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error. Message takes precedence
// when set (trailing commas, unexpected trailing input); otherwise the
// error formats as an expected/got mismatch.
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Message != "" {
		return e.ParseError.Error()
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// DepthError reports that a document exceeded the configured nesting limit.
type DepthError struct{ ParseError }
