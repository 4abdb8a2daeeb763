// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

// Parse scans input from p.Pos and fills tokens from p.Next, returning the
// total number of tokens filled so far. The capacity of the parse is
// len(tokens); Parse never grows or reallocates the slice.
//
// Parse reports ErrNoMemory if tokens has no free slot for the next token,
// ErrPartial if input ends before the outermost open value is complete, and
// ErrInvalid if input is malformed. After ErrNoMemory or ErrPartial the parse
// may be resumed by calling Parse again with the same p, a token slice that
// retains the entries already filled (and may be longer), and the same input
// or an extension of it. After ErrInvalid the parse cannot proceed; p.Pos
// addresses the first byte of the construct that failed, and repeating the
// call reports the same error.
//
// When an error occurs while scanning a string or primitive, or when a token
// cannot be allocated, p.Pos is left on the first byte of that token, so a
// resumed call scans it again from the beginning.
//
// Parse panics if tokens is shorter than p.Next or input is shorter than
// p.Pos, since neither can hold the state of a resumed parse.
func (p *Parser) Parse(input []byte, tokens []Token) (int, error) {
	if p.Next > len(tokens) || p.Super >= p.Next {
		panic("jtok: token slice does not cover parser state")
	} else if p.Pos > len(input) {
		panic("jtok: input does not cover parser state")
	}

	// In strict mode, the grammar position is recovered from the last
	// significant byte before the scan position, so that a resumed parse
	// needs no state beyond the three indices.
	var prev byte
	if p.strict {
		prev = lastSignificant(input, p.Pos)
	}

	for ; p.Pos < len(input); p.Pos++ {
		c := input[p.Pos]
		var want expect
		if p.strict && !isSpace(c) {
			want = p.expecting(tokens, prev)
		}

		switch c {
		case '{', '[':
			if p.strict && want&wantValue == 0 {
				return p.Next, ErrInvalid
			}
			i, ok := p.alloc(tokens)
			if !ok {
				return p.Next, ErrNoMemory
			}
			kind := Object
			if c == '[' {
				kind = Array
			}
			tokens[i].Kind = kind
			tokens[i].Start = p.Pos
			p.attach(tokens, i)
			p.Super = i

		case '}', ']':
			if p.strict && want&wantClose == 0 {
				return p.Next, ErrInvalid
			}
			kind := Object
			if c == ']' {
				kind = Array
			}
			if err := p.close(tokens, kind); err != nil {
				return p.Next, err
			}

		case '"':
			if p.strict && want&(wantKey|wantValue) == 0 {
				return p.Next, ErrInvalid
			}
			if err := p.parseString(input, tokens); err != nil {
				return p.Next, err
			}

		case ' ', '\t', '\r', '\n':
			continue

		case ':':
			if p.strict && want&wantColon == 0 {
				return p.Next, ErrInvalid
			}

		case ',':
			if p.strict && want&wantComma == 0 {
				return p.Next, ErrInvalid
			}

		default:
			if p.strict && (want&wantValue == 0 || !isPrimitiveStart(c)) {
				return p.Next, ErrInvalid
			}
			if err := p.parsePrimitive(input, tokens); err != nil {
				return p.Next, err
			}
		}
		prev = input[p.Pos]
	}

	if p.Super >= 0 {
		return p.Next, ErrPartial
	}
	return p.Next, nil
}

// Finish is like Parse, but treats the end of input as the end of the
// document: a top-level primitive that runs to the end of input is complete,
// in strict mode too. Use Finish once no more input can follow. A primitive
// inside an open container is still reported as ErrPartial.
func (p *Parser) Finish(input []byte, tokens []Token) (int, error) {
	p.final = true
	defer func() { p.final = false }()
	return p.Parse(input, tokens)
}

// alloc claims the next free token slot and returns its index, or reports
// false if no slot is available.
func (p *Parser) alloc(tokens []Token) (int, bool) {
	if p.Next >= len(tokens) {
		return -1, false
	}
	i := p.Next
	p.Next++
	tokens[i] = Token{Start: -1, End: -1, Parent: -1}
	return i, true
}

// attach records token i as a child of the current superior, if any.
func (p *Parser) attach(tokens []Token, i int) {
	if p.Super < 0 {
		return
	}
	tokens[p.Super].Size++
	if p.parents {
		tokens[i].Parent = p.Super
	}
}

// close finalizes the innermost open container, which must have the given
// kind, and makes its enclosing container the superior.
func (p *Parser) close(tokens []Token, kind Kind) error {
	if p.Super < 0 {
		return ErrInvalid // nothing is open
	}
	tok := &tokens[p.Super]
	if tok.Kind != kind {
		return ErrInvalid
	} else if kind == Object && tok.Size%2 != 0 {
		return ErrInvalid // a key with no value
	}
	tok.End = p.Pos + 1

	if p.parents {
		p.Super = tok.Parent
		return nil
	}
	// Without parent links, the enclosing container is the nearest earlier
	// token that is still open; every other token before it is complete.
	for i := p.Super - 1; i >= 0; i-- {
		if tokens[i].IsOpen() {
			p.Super = i
			return nil
		}
	}
	p.Super = -1
	return nil
}

// parseString scans a string whose opening quote is at p.Pos. On success a
// String token is filled and p.Pos is left on the closing quote.
func (p *Parser) parseString(input []byte, tokens []Token) error {
	start := p.Pos
	for i := start + 1; i < len(input); i++ {
		switch c := input[i]; {
		case c == '"':
			t, ok := p.alloc(tokens)
			if !ok {
				return ErrNoMemory
			}
			tokens[t].Kind = String
			tokens[t].Start = start + 1
			tokens[t].End = i
			p.attach(tokens, t)
			p.Pos = i
			return nil

		case c == '\\':
			if i+1 >= len(input) {
				return ErrPartial
			}
			i++
			switch input[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				for n := 0; n < 4 && i+1 < len(input); n++ {
					i++
					if !isHexDigit(input[i]) {
						return ErrInvalid
					}
				}
			default:
				return ErrInvalid
			}

		case c < ' ' && p.strict:
			return ErrInvalid // unescaped control
		}
	}
	return ErrPartial
}

// parsePrimitive scans a bare value starting at p.Pos. On success a
// Primitive token is filled and p.Pos is left on its last byte.
func (p *Parser) parsePrimitive(input []byte, tokens []Token) error {
	start, end := p.Pos, p.Pos
	for ; end < len(input); end++ {
		c := input[end]
		if isPrimitiveEnd(c) {
			break
		} else if c < ' ' || c >= 0x7f {
			return ErrInvalid
		}
	}

	// The end of input only terminates a top-level primitive, and in strict
	// mode only when the input is final. Otherwise more input could extend
	// the value.
	if end == len(input) && (p.Super >= 0 || (p.strict && !p.final)) {
		return ErrPartial
	}
	if p.strict && !validPrimitive(input[start:end]) {
		return ErrInvalid
	}

	t, ok := p.alloc(tokens)
	if !ok {
		return ErrNoMemory
	}
	tokens[t].Kind = Primitive
	tokens[t].Start = start
	tokens[t].End = end
	p.attach(tokens, t)
	p.Pos = end - 1
	return nil
}

// expect is a set of syntactic elements permitted at a position.
type expect byte

const (
	wantValue expect = 1 << iota // any value
	wantKey                      // an object key (string)
	wantColon                    // ":" after a key
	wantComma                    // "," after a member or element
	wantClose                    // "}" or "]" for the superior
)

// expecting reports which elements the JSON grammar permits next, given the
// current superior and the last significant byte scanned before p.Pos.
func (p *Parser) expecting(tokens []Token, prev byte) expect {
	if p.Super < 0 {
		return wantValue // successive top-level values are permitted
	}
	sup := tokens[p.Super]
	switch prev {
	case '{', '[':
		if sup.Kind == Object {
			return wantKey | wantClose
		}
		return wantValue | wantClose
	case ',':
		if sup.Kind == Object {
			return wantKey
		}
		return wantValue
	case ':':
		return wantValue
	}

	// The previous byte ended a value. In an object with an odd number of
	// children, that value was a key.
	if sup.Kind == Object && sup.Size%2 != 0 {
		return wantColon
	}
	return wantComma | wantClose
}

// lastSignificant returns the last non-whitespace byte of input before pos,
// or 0 if there is none.
func lastSignificant(input []byte, pos int) byte {
	for i := pos - 1; i >= 0; i-- {
		if !isSpace(input[i]) {
			return input[i]
		}
	}
	return 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\r' || c == '\n' || c == '\t'
}

func isPrimitiveEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', ':', ']', '}':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
