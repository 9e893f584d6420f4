package jsonparser

import (
	"fmt"
	"strconv"
	"strings"
)

// Lexer scans JSON source text into a flat token sequence.
type Lexer struct {
	src  []byte
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize scans the whole input and returns the token sequence, always
// terminated by exactly one EOF token. The first invalid character, escape,
// number, or keyword aborts scanning with a *LexError; no partial sequence
// is returned.
func Tokenize(src []byte) ([]Token, error) {
	return NewLexer(src).Tokenize()
}

// Tokenize scans the lexer's input in one pass. See the package-level
// Tokenize.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.advance()

		case ch == '{':
			tokens = append(tokens, l.structural(TokenLBrace, "{"))
		case ch == '}':
			tokens = append(tokens, l.structural(TokenRBrace, "}"))
		case ch == '[':
			tokens = append(tokens, l.structural(TokenLBracket, "["))
		case ch == ']':
			tokens = append(tokens, l.structural(TokenRBracket, "]"))
		case ch == ':':
			tokens = append(tokens, l.structural(TokenColon, ":"))
		case ch == ',':
			tokens = append(tokens, l.structural(TokenComma, ","))

		case ch == '"':
			tok, err := l.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case ch == '-' || isDigit(ch):
			tok, err := l.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case ch == 't' || ch == 'f' || ch == 'n':
			tok, err := l.scanKeyword()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		default:
			return nil, &LexError{ParseError{
				Message: fmt.Sprintf("unexpected character %q", ch),
				Pos:     l.currentPos(),
			}}
		}
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Pos: l.currentPos()})
	return tokens, nil
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// structural consumes a single-character structural token.
func (l *Lexer) structural(kind TokenKind, lit string) Token {
	pos := l.currentPos()
	l.advance()
	return Token{Kind: kind, Literal: lit, Pos: pos}
}

func (l *Lexer) scanString() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening "

	var sb strings.Builder
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated string",
				Pos:     pos,
			}}
		}
		ch := l.advance()
		if ch == '"' {
			return Token{Kind: TokenString, Literal: sb.String(), Pos: pos}, nil
		}
		if ch == '\\' {
			if l.atEnd() {
				return Token{}, &LexError{ParseError{
					Message: "unterminated string",
					Pos:     pos,
				}}
			}
			escPos := l.currentPos()
			esc := l.advance()
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case '/':
				sb.WriteByte('/')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				r, err := l.scanUnicodeEscape(escPos)
				if err != nil {
					return Token{}, err
				}
				sb.WriteRune(r)
			default:
				return Token{}, &LexError{ParseError{
					Message: fmt.Sprintf("invalid escape sequence \\%c", esc),
					Pos:     escPos,
				}}
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

// scanUnicodeEscape decodes the four hex digits following \u into one code
// point. Surrogate halves are decoded independently, never recombined into
// a supplementary-plane code point.
func (l *Lexer) scanUnicodeEscape(pos Position) (rune, error) {
	var hex [4]byte
	for i := range hex {
		if l.atEnd() {
			return 0, &LexError{ParseError{
				Message: "invalid \\u escape: expected 4 hex digits",
				Pos:     pos,
			}}
		}
		hex[i] = l.advance()
	}
	n, err := strconv.ParseUint(string(hex[:]), 16, 32)
	if err != nil {
		return 0, &LexError{ParseError{
			Message: fmt.Sprintf("invalid \\u escape %q", string(hex[:])),
			Pos:     pos,
			Cause:   err,
		}}
	}
	return rune(n), nil
}

// scanNumber greedily consumes a number lexeme and validates it with
// strconv. The integer part is a single '0' or a digit run; a lexeme like
// "01" therefore stops after the '0' and leaves "1" to scan as a separate
// token, which the parser then rejects.
func (l *Lexer) scanNumber() (Token, error) {
	pos := l.currentPos()
	start := l.pos

	if !l.atEnd() && l.peek() == '-' {
		l.advance()
	}

	if !l.atEnd() && l.peek() == '0' {
		l.advance()
	} else {
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	isFloat := false
	if !l.atEnd() && l.peek() == '.' {
		isFloat = true
		l.advance()
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	if !l.atEnd() && (l.peek() == 'e' || l.peek() == 'E') {
		isFloat = true
		l.advance()
		if !l.atEnd() && (l.peek() == '+' || l.peek() == '-') {
			l.advance()
		}
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	lit := string(l.src[start:l.pos])

	var err error
	if isFloat {
		_, err = strconv.ParseFloat(lit, 64)
	} else {
		_, err = strconv.ParseInt(lit, 10, 64)
	}
	if err != nil {
		return Token{}, &LexError{ParseError{
			Message: fmt.Sprintf("invalid number %q", lit),
			Pos:     pos,
			Cause:   err,
		}}
	}

	return Token{Kind: TokenNumber, Literal: lit, Pos: pos}, nil
}

// scanKeyword consumes a maximal alphabetic run and matches it against the
// JSON keywords.
func (l *Lexer) scanKeyword() (Token, error) {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isAlpha(l.peek()) {
		l.advance()
	}

	lit := string(l.src[start:l.pos])
	switch lit {
	case "true":
		return Token{Kind: TokenTrue, Literal: lit, Pos: pos}, nil
	case "false":
		return Token{Kind: TokenFalse, Literal: lit, Pos: pos}, nil
	case "null":
		return Token{Kind: TokenNull, Literal: lit, Pos: pos}, nil
	default:
		return Token{}, &LexError{ParseError{
			Message: fmt.Sprintf("invalid keyword %q", lit),
			Pos:     pos,
		}}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
