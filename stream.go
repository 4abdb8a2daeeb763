// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"fmt"
	"io"
	"slices"
)

// Options control the behavior of Tokenize and Stream. A nil *Options is
// ready for use and provides default values.
type Options struct {
	// Strict enables strict mode in the parser (see Parser.SetStrict).
	Strict bool

	// ParentLinks enables parent links in the parser (see
	// Parser.SetParentLinks).
	ParentLinks bool

	// Tokens is the initial capacity of the token slice. The slice is
	// doubled each time the parser runs out of slots. If Tokens <= 0, a
	// default capacity is used.
	Tokens int
}

const defaultTokens = 64

func (o *Options) newParser() *Parser {
	p := NewParser()
	if o != nil {
		p.SetStrict(o.Strict)
		p.SetParentLinks(o.ParentLinks)
	}
	return p
}

func (o *Options) tokens() []Token {
	if o == nil || o.Tokens <= 0 {
		return make([]Token, defaultTokens)
	}
	return make([]Token, o.Tokens)
}

// growTokens returns a copy of toks with double the capacity.
func growTokens(toks []Token) []Token {
	next := make([]Token, max(2*len(toks), 1))
	copy(next, toks)
	return next
}

// Tokenize parses the complete JSON text in input and returns its tokens.
// Unlike Parser.Parse, Tokenize allocates the token slice itself, growing
// it as needed, and treats the end of input as final (see Parser.Finish). In case of error, the tokens completed so far are returned
// along with an error of concrete type *SyntaxError.
func Tokenize(input []byte, opts *Options) ([]Token, error) {
	p := opts.newParser()
	toks := opts.tokens()
	for {
		n, err := p.Finish(input, toks)
		if err == nil {
			return toks[:n], nil
		} else if err == ErrNoMemory {
			toks = growTokens(toks)
			continue
		}
		return toks[:n], NewSyntaxError(input, p.Pos, err)
	}
}

// Stream tokenizes JSON text read from an io.Reader. The input is read in
// chunks into a single buffer, and the parse resumes after each read so that
// no byte is scanned more than once apart from a token split across reads.
type Stream struct {
	r     io.Reader
	p     *Parser
	buf   []byte
	toks  []Token
	rsize int
	eof   bool
}

const defaultReadSize = 4096

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader, opts *Options) *Stream {
	return &Stream{
		r:     r,
		p:     opts.newParser(),
		toks:  opts.tokens(),
		rsize: defaultReadSize,
	}
}

// SetReadSize sets the maximum number of bytes s requests from its reader
// on each read. If n <= 0, a default size is used.
func (s *Stream) SetReadSize(n int) {
	if n <= 0 {
		n = defaultReadSize
	}
	s.rsize = n
}

// Input returns the input buffered so far. Token offsets reported by Parse
// refer to this buffer. The caller must not modify its contents.
func (s *Stream) Input() []byte { return s.buf }

// Parse reads the input to the end and returns its tokens. In case of a
// syntax error, the tokens completed so far are returned along with an error
// of concrete type *SyntaxError. If the input ends inside a value, the error
// wraps both ErrPartial and io.ErrUnexpectedEOF.
func (s *Stream) Parse() ([]Token, error) {
	for {
		parse := s.p.Parse
		if s.eof {
			parse = s.p.Finish
		}
		n, err := parse(s.buf, s.toks)
		switch {
		case err == ErrNoMemory:
			s.toks = growTokens(s.toks)
			continue
		case err == ErrInvalid:
			return s.toks[:n], NewSyntaxError(s.buf, s.p.Pos, err)
		case s.eof && err == ErrPartial:
			return s.toks[:n], NewSyntaxError(s.buf, s.p.Pos,
				fmt.Errorf("%w: %w", ErrPartial, io.ErrUnexpectedEOF))
		case s.eof:
			return s.toks[:n], nil
		case err == nil:
			s.unreadTrailing()
		}

		if err := s.read(); err == io.EOF {
			s.eof = true
		} else if err != nil {
			return s.toks[:s.p.Next], err
		}
	}
}

// unreadTrailing rewinds the parser over a top-level primitive that ends at
// the end of the buffer, since the next read may extend it.
func (s *Stream) unreadTrailing() {
	if s.p.Next == 0 || s.p.Super >= 0 {
		return
	}
	last := s.toks[s.p.Next-1]
	if last.Kind == Primitive && last.End == len(s.buf) {
		s.p.Next--
		s.p.Pos = last.Start
		s.toks[s.p.Next] = Token{}
	}
}

func (s *Stream) read() error {
	s.buf = slices.Grow(s.buf, s.rsize)
	n, err := s.r.Read(s.buf[len(s.buf) : len(s.buf)+s.rsize])
	s.buf = s.buf[:len(s.buf)+n]
	return err
}
