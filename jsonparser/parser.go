package jsonparser

import "fmt"

// Parse parses a complete JSON document and returns its value tree.
// Any value is accepted at the root, including bare scalars. Returns a
// *LexError or *SyntaxError on malformed input; the first error aborts the
// parse with no partial tree.
func Parse(src []byte) (Value, error) {
	return ParseWithMaxDepth(src, 0)
}

// ParseString parses a JSON document held in a string.
func ParseString(src string) (Value, error) {
	return Parse([]byte(src))
}

// ParseWithMaxDepth parses like Parse but fails with a *DepthError once
// arrays and objects nest more than maxDepth levels deep. A maxDepth of
// zero or less disables the limit.
func ParseWithMaxDepth(src []byte, maxDepth int) (Value, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return Value{}, err
	}
	p := &parser{tokens: tokens, maxDepth: maxDepth}
	return p.parseDocument()
}

type parser struct {
	tokens   []Token // complete sequence, always EOF-terminated
	pos      int
	depth    int
	maxDepth int
}

// current returns the token under the cursor. The cursor never passes the
// final EOF token, so this is always in range.
func (p *parser) current() Token {
	return p.tokens[p.pos]
}

// advance returns the current token and moves the cursor forward, except
// past the final EOF token, which stays as a stable sentinel.
func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   kind.String(),
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
	return p.advance(), nil
}

func (p *parser) enter(pos Position) error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return &DepthError{ParseError{
			Message: fmt.Sprintf("nesting too deep (limit %d)", p.maxDepth),
			Pos:     pos,
		}}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseDocument() (Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		return Value{}, &SyntaxError{
			ParseError: ParseError{
				Message: "expected end of input",
				Pos:     tok.Pos,
			},
			Expected: TokenEOF.String(),
			Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
	return v, nil
}

func (p *parser) parseValue() (Value, error) {
	tok := p.current()
	switch tok.Kind {
	case TokenString, TokenNumber, TokenTrue, TokenFalse, TokenNull:
		p.advance()
		return ParseScalar(tok)

	case TokenLBrace:
		return p.parseObject()

	case TokenLBracket:
		return p.parseArray()

	default:
		return Value{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "value",
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
}

// parseObject parses '{' ( member (',' member)* )? '}' with
// member := string ':' value. Later duplicate keys overwrite earlier
// values; the key keeps its first-seen position.
func (p *parser) parseObject() (Value, error) {
	brace, err := p.expect(TokenLBrace)
	if err != nil {
		return Value{}, err
	}
	if err := p.enter(brace.Pos); err != nil {
		return Value{}, err
	}
	defer p.leave()

	obj := NewObject()

	// Empty object
	if p.current().Kind == TokenRBrace {
		p.advance()
		return Value{Kind: ValueObject, Obj: obj}, nil
	}

	for {
		keyTok, err := p.expect(TokenString)
		if err != nil {
			return Value{}, err
		}
		if _, err := p.expect(TokenColon); err != nil {
			return Value{}, err
		}
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		obj.Set(keyTok.Literal, val)

		if p.current().Kind != TokenComma {
			break
		}
		p.advance() // consume comma
		if tok := p.current(); tok.Kind == TokenRBrace {
			return Value{}, &SyntaxError{ParseError: ParseError{
				Message: "trailing comma in object",
				Pos:     tok.Pos,
			}}
		}
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return Value{}, err
	}
	return Value{Kind: ValueObject, Obj: obj}, nil
}

// parseArray parses '[' ( value (',' value)* )? ']'.
func (p *parser) parseArray() (Value, error) {
	bracket, err := p.expect(TokenLBracket)
	if err != nil {
		return Value{}, err
	}
	if err := p.enter(bracket.Pos); err != nil {
		return Value{}, err
	}
	defer p.leave()

	var arr []Value

	// Empty array
	if p.current().Kind == TokenRBracket {
		p.advance()
		return Value{Kind: ValueArray, Arr: arr}, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)

		if p.current().Kind != TokenComma {
			break
		}
		p.advance() // consume comma
		if tok := p.current(); tok.Kind == TokenRBracket {
			return Value{}, &SyntaxError{ParseError: ParseError{
				Message: "trailing comma in array",
				Pos:     tok.Pos,
			}}
		}
	}

	if _, err := p.expect(TokenRBracket); err != nil {
		return Value{}, err
	}
	return Value{Kind: ValueArray, Arr: arr}, nil
}
