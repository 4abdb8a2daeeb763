// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import "fmt"

// Kind is the type of a token in the flat token array.
type Kind byte

// Constants defining the valid Kind values.
const (
	Undefined Kind = iota // slot not yet written
	Object                // object { ... }
	Array                 // array [ ... ]
	String                // quoted string, span excludes the quotes
	Primitive             // number, true, false, null, or a bare value
)

var kindStr = [...]string{
	Undefined: "undefined",
	Object:    "object",
	Array:     "array",
	String:    "string",
	Primitive: "primitive",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Undefined]
	}
	return kindStr[v]
}

// isContainer reports whether k may have children.
func (k Kind) isContainer() bool { return k == Object || k == Array }

// A Token describes the span and structural role of one JSON value.
//
// The zero Token is an Undefined slot.
type Token struct {
	Kind  Kind
	Start int // the start offset, 0-based
	End   int // the end offset, 0-based (noninclusive); -1 while open
	Size  int // number of immediate children

	// Parent is the index of the enclosing container, or -1 at the top level
	// or when parent links are disabled.
	Parent int
}

// IsOpen reports whether t is a container whose closing delimiter has not
// yet been scanned.
func (t Token) IsOpen() bool { return t.Kind.isContainer() && t.End < 0 }

// Span returns the location span of t. The End of an open token is -1.
func (t Token) Span() Span { return Span{Pos: t.Start, End: t.End} }

// Text returns the undecoded text of t as a slice of input, which must be the
// buffer t was parsed from. String tokens do not include their quotes.
// Text returns nil for an open or undefined token.
func (t Token) Text(input []byte) []byte {
	if t.Kind == Undefined || t.End < 0 {
		return nil
	}
	return input[t.Start:t.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%v[%d:%d] size=%d parent=%d", t.Kind, t.Start, t.End, t.Size, t.Parent)
}

// A Parser records the state of a tokenization in progress. The state is
// owned by the caller and is updated in place by each call to Parse, so that
// a parse interrupted by ErrNoMemory or ErrPartial can be resumed.
//
// The zero Parser is not ready for use; call Init or use NewParser.
type Parser struct {
	Pos   int // offset of the next unconsumed input byte
	Next  int // index of the next free token slot
	Super int // index of the innermost open container, or -1

	strict  bool // enforce the JSON grammar and primitive shapes
	parents bool // record and follow parent links
	final   bool // the end of input completes a top-level primitive
}

// NewParser constructs a new Parser positioned at the start of its input.
func NewParser() *Parser {
	p := new(Parser)
	p.Init()
	return p
}

// Init resets p to the start of a new parse. It does not change the
// configuration of p.
func (p *Parser) Init() { p.Pos, p.Next, p.Super = 0, 0, -1 }

// SetStrict configures p to enforce (true) or relax (false) the JSON grammar.
// In strict mode, primitives must be numbers, true, false, or null, only
// strings may be object keys, and commas and colons must appear only where
// the grammar allows them.
func (p *Parser) SetStrict(ok bool) { p.strict = ok }

// SetParentLinks configures p to record (true) or omit (false) the Parent
// index of each token. When enabled, closing a container follows the parent
// link instead of searching backward through the token array.
func (p *Parser) SetParentLinks(ok bool) { p.parents = ok }

func (p *Parser) String() string {
	return fmt.Sprintf("Parser(pos=%d, next=%d, super=%d)", p.Pos, p.Next, p.Super)
}
