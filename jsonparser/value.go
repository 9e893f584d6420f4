package jsonparser

import (
	"fmt"
	"strconv"
	"strings"
)

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// ValueKind discriminates the Value tagged union.
type ValueKind string

const (
	ValueNull   ValueKind = "null"
	ValueBool   ValueKind = "bool"
	ValueInt    ValueKind = "int"
	ValueFloat  ValueKind = "float"
	ValueString ValueKind = "string"
	ValueArray  ValueKind = "array"
	ValueObject ValueKind = "object"
)

// Value is a parsed JSON value. Kind determines which typed field is
// populated. Containers exclusively own their children; the grammar cannot
// produce cycles.
type Value struct {
	Kind  ValueKind
	Bool  bool    // populated when Kind == ValueBool
	Int   int64   // populated when Kind == ValueInt
	Float float64 // populated when Kind == ValueFloat
	Str   string  // populated when Kind == ValueString
	Arr   []Value // populated when Kind == ValueArray
	Obj   *Object // populated when Kind == ValueObject
}

// Object is an ordered mapping from string keys to values. Keys keep the
// position of their first occurrence; setting an existing key overwrites
// the value in place.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set inserts or overwrites a key. A key keeps its first-seen position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get looks up a key. Returns the value and true if present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the object's keys in insertion order. The returned slice is
// the object's own; callers must not modify it.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// ParseScalar converts a scalar token into a typed Value. Number tokens
// become ValueInt when the lexeme has no '.', 'e', or 'E', and ValueFloat
// otherwise; the decision is syntactic, not magnitude-based.
func ParseScalar(tok Token) (Value, error) {
	switch tok.Kind {
	case TokenString:
		return Value{Kind: ValueString, Str: tok.Literal}, nil

	case TokenNumber:
		if strings.ContainsAny(tok.Literal, ".eE") {
			f, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return Value{}, &LexError{ParseError{
					Message: fmt.Sprintf("invalid number %q", tok.Literal),
					Pos:     tok.Pos,
					Cause:   err,
				}}
			}
			return Value{Kind: ValueFloat, Float: f}, nil
		}
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return Value{}, &LexError{ParseError{
				Message: fmt.Sprintf("invalid number %q", tok.Literal),
				Pos:     tok.Pos,
				Cause:   err,
			}}
		}
		return Value{Kind: ValueInt, Int: n}, nil

	case TokenTrue:
		return Value{Kind: ValueBool, Bool: true}, nil

	case TokenFalse:
		return Value{Kind: ValueBool, Bool: false}, nil

	case TokenNull:
		return Value{Kind: ValueNull}, nil

	default:
		return Value{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "value",
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
}
