// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jtok implements a resumable JSON tokenizer that does not allocate.
//
// # Tokens
//
// The Parser type splits JSON text into a flat array of Token values supplied
// by the caller. Each token records its Kind, the byte offsets of its span in
// the input, and the number of immediate children it has. Containers precede
// their children in the array, so the array is a preorder walk of the value:
//
//	input:  {"a": [1, true]}
//	tokens: object[0:16] size=2
//	        string[2:3]
//	        array[6:15] size=2
//	        primitive[7:8]
//	        primitive[10:14]
//
// The tokenizer does not decode values. The span of a String token excludes
// its quotes and may include escape sequences; use Unquote to decode it.
//
// # Parsing
//
// Construct a parser and call its Parse method with the input and a slice of
// tokens. Parse fills the slice and reports the number of tokens used:
//
//	p := jtok.NewParser()
//	toks := make([]jtok.Token, 128)
//	n, err := p.Parse(input, toks)
//
// Parse reports ErrNoMemory if the slice is too small and ErrPartial if the
// input ends inside a value. In both cases the parser state is preserved and
// the parse may be resumed with a larger slice or more input:
//
//	if err == jtok.ErrNoMemory {
//	   more := make([]jtok.Token, 2*len(toks))
//	   copy(more, toks)
//	   n, err = p.Parse(input, more)
//	}
//
// ErrInvalid reports malformed input and is final.
//
// When no more input can follow, call Finish instead of Parse. Finish lets
// the end of input complete a top-level primitive, so that in strict mode a
// document such as "42" is accepted.
//
// By default the parser is permissive: bare words are accepted as primitives
// and the placement of commas and colons is not checked. Call SetStrict to
// enforce the JSON grammar. Call SetParentLinks to record the index of each
// token's enclosing container in its Parent field.
//
// # Convenience
//
// The Tokenize function parses a complete input and manages the token slice
// itself. The Stream type does the same for input read from an io.Reader.
// Errors from both are of concrete type *SyntaxError, which reports the line
// and column where the failure occurred.
package jtok
