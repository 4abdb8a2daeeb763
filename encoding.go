// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"

	"github.com/creachadair/jtok/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.AppendQuote(nil, mem.S(src))) }

// Unquote decodes the String token t parsed from input, replacing escape
// sequences with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence, or if t is not a
// complete String token.
func Unquote(input []byte, t Token) ([]byte, error) {
	if t.Kind != String || t.End < 0 {
		return nil, errors.New("not a string token")
	}
	return escape.Unquote(mem.B(t.Text(input)))
}

// KeyEqual reports whether the String token t parsed from input decodes to
// key. It does not allocate.
func KeyEqual(input []byte, t Token, key string) bool {
	return t.Kind == String && t.End >= 0 && escape.Equal(mem.B(t.Text(input)), key)
}
