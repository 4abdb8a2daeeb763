// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

// isPrimitiveStart reports whether c may begin a primitive in strict mode.
func isPrimitiveStart(c byte) bool {
	return c == '-' || isDigit(c) || c == 't' || c == 'f' || c == 'n'
}

// validPrimitive reports whether text is a JSON constant or number.
// Precondition: len(text) > 0.
func validPrimitive(text []byte) bool {
	switch text[0] {
	case 't':
		return string(text) == "true"
	case 'f':
		return string(text) == "false"
	case 'n':
		return string(text) == "null"
	}
	return validNumber(text)
}

// validNumber reports whether text is a number in the JSON grammar:
// an optional minus sign, an integer part without redundant leading zeroes,
// an optional fraction, and an optional signed exponent.
func validNumber(text []byte) bool {
	rest := text
	if len(rest) != 0 && rest[0] == '-' {
		rest = rest[1:]
	}

	// An integer part is required.
	n := countDigits(rest)
	if n == 0 || hasExtraLeadingZeroes(rest[:n]) {
		return false
	}
	rest = rest[n:]

	// If a decimal point follows, a fraction with at least one digit is
	// required.
	if len(rest) != 0 && rest[0] == '.' {
		n := countDigits(rest[1:])
		if n == 0 {
			return false
		}
		rest = rest[1+n:]
	}

	// If an exponent follows, it may have a sign but must have digits.
	if len(rest) != 0 && (rest[0] == 'e' || rest[0] == 'E') {
		rest = rest[1:]
		if len(rest) != 0 && (rest[0] == '+' || rest[0] == '-') {
			rest = rest[1:]
		}
		n := countDigits(rest)
		if n == 0 {
			return false
		}
		rest = rest[n:]
	}
	return len(rest) == 0
}

// hasExtraLeadingZeroes reports whether the digits of an integer part have
// redundant leading zeroes, which JSON disallows.
//
// OK: 0, 10, 105. Bad: 00, 01, 007.
func hasExtraLeadingZeroes(digits []byte) bool {
	return len(digits) > 1 && digits[0] == '0'
}

func countDigits(text []byte) int {
	for i, c := range text {
		if !isDigit(c) {
			return i
		}
	}
	return len(text)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
