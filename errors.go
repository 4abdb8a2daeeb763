// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"fmt"
)

// Errors reported by Parse. The parser returns these values directly, so
// they may be compared with == as well as errors.Is.
var (
	// ErrNoMemory means the token slice has no room for the next token.
	// Resume with a larger slice holding the tokens already filled.
	ErrNoMemory = errors.New("not enough tokens")

	// ErrInvalid means the input is malformed. The parse cannot be resumed.
	ErrInvalid = errors.New("invalid input")

	// ErrPartial means the input ended before the value was complete.
	// Resume with an extension of the same input.
	ErrPartial = errors.New("incomplete input")
)

// SyntaxError describes a parse error together with the location in the
// input where it occurred.
type SyntaxError struct {
	Offset   int     // byte offset of the failing construct
	Location LineCol // line and column of Offset

	err error
}

// NewSyntaxError constructs a *SyntaxError for an error at the given offset
// of input.
func NewSyntaxError(input []byte, offset int, err error) *SyntaxError {
	return &SyntaxError{Offset: offset, Location: Locate(input, offset), err: err}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v (offset %d)", s.Location, s.err, s.Offset)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
