package jsonparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenString   // "..." with escape processing
	TokenNumber   // -?[0-9]+ with optional fraction and exponent
	TokenTrue     // true
	TokenFalse    // false
	TokenNull     // null
	TokenLBrace   // {
	TokenRBrace   // }
	TokenLBracket // [
	TokenRBracket // ]
	TokenColon    // :
	TokenComma    // ,
)

var tokenNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenString:   "string",
	TokenNumber:   "number",
	TokenTrue:     "'true'",
	TokenFalse:    "'false'",
	TokenNull:     "'null'",
	TokenLBrace:   "'{'",
	TokenRBrace:   "'}'",
	TokenLBracket: "'['",
	TokenRBracket: "']'",
	TokenColon:    "':'",
	TokenComma:    "','",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, raw lexeme for numbers)
	Pos     Position
}
