// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jwcc tokenizes JSON With Commas and Comments (JWCC) as defined by
// https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// JWCC input is first rewritten to standard JSON by replacing comments and
// trailing commas with spaces. The rewrite preserves the length of the input,
// so the offsets of the resulting tokens refer equally to the original text.
package jwcc

import (
	"errors"
	"io"

	"github.com/creachadair/jtok"
	"github.com/tailscale/hujson"
)

// Standardize returns a copy of src with comments and trailing commas
// replaced by spaces. The input must contain a single complete value.
//
// If src is malformed, the error wraps jtok.ErrInvalid, or jtok.ErrPartial if
// src ends before the value is complete.
func Standardize(src []byte) ([]byte, error) {
	std, err := hujson.Standardize(append([]byte(nil), src...))
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.Join(jtok.ErrPartial, err)
		}
		return nil, errors.Join(jtok.ErrInvalid, err)
	}
	return std, nil
}

// Parse standardizes src and parses it with p into toks, as
// jtok.Parser.Parse. The offsets of the tokens refer to src.
//
// Because the whole of src is standardized on each call, a parse interrupted
// by jtok.ErrNoMemory may be resumed, but src cannot be extended.
func Parse(p *jtok.Parser, src []byte, toks []jtok.Token) (int, error) {
	std, err := Standardize(src)
	if err != nil {
		return p.Next, err
	}
	return p.Parse(std, toks)
}

// Tokenize standardizes src and returns its tokens, as jtok.Tokenize.
// The offsets of the tokens refer to src.
func Tokenize(src []byte, opts *jtok.Options) ([]jtok.Token, error) {
	std, err := Standardize(src)
	if err != nil {
		return nil, err
	}
	return jtok.Tokenize(std, opts)
}
