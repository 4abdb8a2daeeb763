// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune. Unquote reports an
// error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))

		r, n, err := decodeEscape(src.SliceFrom(i))
		if err != nil {
			return nil, err
		}
		dec = utf8.AppendRune(dec, r)
		src = src.SliceFrom(i + n)
	}
	return dec, nil
}

// Equal reports whether the escaped string src decodes to plain, without
// allocating. As for Unquote, src must not include its quotation marks.
// An incomplete escape sequence never compares equal.
func Equal(src mem.RO, plain string) bool {
	if mem.IndexByte(src, '\\') < 0 {
		return src.EqualString(plain)
	}
	for src.Len() != 0 {
		if c := src.At(0); c != '\\' {
			if plain == "" || plain[0] != c {
				return false
			}
			src, plain = src.SliceFrom(1), plain[1:]
			continue
		}
		r, n, err := decodeEscape(src)
		if err != nil {
			return false
		}
		pr, pn := utf8.DecodeRuneInString(plain)
		if pn == 0 || pr != r {
			return false
		}
		src, plain = src.SliceFrom(n), plain[pn:]
	}
	return plain == ""
}

// decodeEscape decodes the escape sequence at the front of src, which must
// begin with a backslash, and returns the rune it denotes and the number of
// bytes it occupies.
func decodeEscape(src mem.RO) (rune, int, error) {
	if src.Len() < 2 {
		return 0, 0, errors.New("incomplete escape sequence")
	}
	switch c := src.At(1); c {
	case '"', '\\', '/':
		return rune(c), 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 't':
		return '\t', 2, nil
	case 'u':
		if src.Len() < 6 {
			return 0, 0, errors.New("incomplete Unicode escape")
		}
		v, ok := parseHex4(src.Slice(2, 6))
		if !ok {
			return utf8.RuneError, 6, nil
		} else if !utf16.IsSurrogate(v) {
			return v, 6, nil
		}

		// A surrogate must be the first half of a pair; otherwise it does not
		// denote a rune.
		if src.Len() >= 12 && src.At(6) == '\\' && src.At(7) == 'u' {
			lo, ok := parseHex4(src.Slice(8, 12))
			if r := utf16.DecodeRune(v, lo); ok && r != utf8.RuneError {
				return r, 12, nil
			}
		}
		return utf8.RuneError, 6, nil
	default:
		// Replace the backslash and the rune following it.
		_, n := mem.DecodeRune(src.SliceFrom(1))
		return utf8.RuneError, 1 + max(n, 1), nil
	}
}

func parseHex4(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
