// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a flat array of JSON tokens.
//
// The tokens produced by a jtok.Parser describe a tree only implicitly: each
// container token is followed by its children in document order, and its
// Size reports how many immediate children it has. The functions in this
// package use those sizes to skip over subtrees without building a tree.
package cursor

import (
	"errors"
	"fmt"
	"iter"

	"github.com/creachadair/jtok"
)

// Skip returns the index of the first token after the subtree rooted at
// toks[i]. If toks[i] has no children, Skip returns i+1.
// Skip panics if the subtree extends past the end of toks.
func Skip(toks []jtok.Token, i int) int {
	pending := toks[i].Size
	j := i + 1
	for pending > 0 {
		pending += toks[j].Size - 1
		j++
	}
	return j
}

// Children returns a sequence of the indices of the immediate children of
// toks[i], in document order. For an object, keys and values alternate.
func Children(toks []jtok.Token, i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		j := i + 1
		for n := 0; n < toks[i].Size; n++ {
			if !yield(j) {
				return
			}
			j = Skip(toks, j)
		}
	}
}

// Path traverses a sequential path into toks starting from the first token,
// where path elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its index.
func Path(input []byte, toks []jtok.Token, path ...any) (int, error) {
	c := New(input, toks).Down(path...)
	if err := c.Err(); err != nil {
		return -1, err
	}
	return c.Index(), nil
}

// A Cursor is a pointer that navigates into the tokens of a JSON value.
type Cursor struct {
	input []byte
	toks  []jtok.Token
	stk   []int
	err   error
}

// New constructs a new Cursor to traverse toks, which were parsed from input.
// The origin of the cursor is the first token.
func New(input []byte, toks []jtok.Token) *Cursor {
	return &Cursor{input: input, toks: toks}
}

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Index reports the index of the token under the cursor, or -1 if there are
// no tokens.
func (c *Cursor) Index() int {
	if c.AtOrigin() {
		if len(c.toks) == 0 {
			return -1
		}
		return 0
	}
	return c.stk[len(c.stk)-1]
}

// Token reports the token under the cursor. If there are no tokens, it
// returns an Undefined token.
func (c *Cursor) Token() jtok.Token {
	if i := c.Index(); i >= 0 {
		return c.toks[i]
	}
	return jtok.Token{}
}

// Text reports the undecoded text of the token under the cursor.
func (c *Cursor) Text() []byte { return c.Token().Text(c.input) }

// Path reports the complete sequence of token indices from the origin to the
// current location in c.
func (c *Cursor) Path() []int {
	if len(c.toks) == 0 {
		return nil
	}
	return append([]int{0}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the tokens starting from the
// current token, where path elements are strings (denoting object keys),
// integers (denoting offsets into arrays or objects), or functions (see
// below). If the path cannot be completely consumed, traversal stops and an
// error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding token must be an object,
// and the string selects the value of the first member with that key. Keys
// are compared after decoding escape sequences.
//
// If a path element is an integer, the corresponding token must be an array
// or object, and the integer selects an element of the array or the value of
// a member of the object. Negative indices count backward from the end (-1 is
// last, -2 second last). An error is reported if the index is out of bounds.
//
// If a path element is a function, the function is executed and the index it
// returns becomes the next token in the sequence. The function must have a
// signature
//
//	func(toks []jtok.Token, i int) (int, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Index()
	if cur < 0 && len(path) != 0 {
		return c.setErrorf("no tokens")
	}
	for _, elt := range path {
		tok := c.toks[cur]
		switch t := elt.(type) {
		case string:
			if tok.Kind != jtok.Object {
				return c.setErrorf("cannot traverse %v with %q", tok.Kind, t)
			}
			v := c.findKey(cur, t)
			if v < 0 {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(v)

		case int:
			var n int
			switch tok.Kind {
			case jtok.Array:
				n = tok.Size
			case jtok.Object:
				n = tok.Size / 2
			default:
				return c.setErrorf("cannot traverse %v with %v", tok.Kind, t)
			}
			i, ok := fixArrayBound(n, t)
			if !ok {
				return c.setErrorf("%v index %d out of bounds (n=%d)", tok.Kind, t, n)
			}
			if tok.Kind == jtok.Object {
				i = 2*i + 1 // the value of the ith member
			}
			cur = c.push(c.nth(cur, i))

		case func([]jtok.Token, int) (int, error):
			next, err := t(c.toks, cur)
			if err != nil {
				c.err = err
				return c
			} else if next < 0 || next >= len(c.toks) {
				return c.setErrorf("token index %d out of range", next)
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

// findKey returns the index of the value of the first member of the object
// at obj whose key is key, or -1.
func (c *Cursor) findKey(obj int, key string) int {
	var isKey bool
	for j := range Children(c.toks, obj) {
		isKey = !isKey
		if isKey && jtok.KeyEqual(c.input, c.toks[j], key) {
			return Skip(c.toks, j)
		}
	}
	return -1
}

// nth returns the index of the nth immediate child of the token at i.
func (c *Cursor) nth(i, n int) int {
	for j := range Children(c.toks, i) {
		if n == 0 {
			return j
		}
		n--
	}
	panic("child index out of range")
}

func (c *Cursor) push(i int) int { c.stk = append(c.stk, i); return i }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// ErrNotFound is reported by Lookup when a key is absent.
var ErrNotFound = errors.New("key not found")

// Lookup returns the index of the value of the member with the given key in
// the object at toks[obj]. It reports ErrNotFound if there is no such key.
func Lookup(input []byte, toks []jtok.Token, obj int, key string) (int, error) {
	if toks[obj].Kind != jtok.Object {
		return -1, fmt.Errorf("token %d is %v, not an object", obj, toks[obj].Kind)
	}
	c := &Cursor{input: input, toks: toks}
	if v := c.findKey(obj, key); v >= 0 {
		return v, nil
	}
	return -1, ErrNotFound
}
