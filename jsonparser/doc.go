// Package jsonparser implements a strict JSON parser built from scratch,
// with no dependency on encoding/json.
//
// The pipeline has two stages in strict dependency order:
//
//   - Lexer: converts raw bytes into a flat token stream, recording the
//     1-based line and column where each token begins.
//   - Parser: consumes the token stream by recursive descent and builds a
//     Value tree, enforcing exact JSON structure (no trailing commas,
//     string keys only, balanced brackets, nothing after the root value).
//
// Usage:
//
//	v, err := jsonparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Kind)
//
// Every error carries the line and column where scanning or parsing
// stopped, so messages can be shown to end users as-is.
//
// Known limitations: each \uXXXX escape decodes to a single code point.
// UTF-16 surrogate pairs are not recombined, and a lone surrogate encodes
// as U+FFFD. Plain Parse applies no nesting limit; use ParseWithMaxDepth
// when the input is untrusted.
package jsonparser
