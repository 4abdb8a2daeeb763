package jtok

import (
	"bytes"
	"fmt"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// Locate returns the line and column of the given byte offset in input.
// Offsets past the end of input are clamped to the end.
func Locate(input []byte, offset int) LineCol {
	offset = max(0, min(offset, len(input)))
	head := input[:offset]
	line := bytes.Count(head, []byte{'\n'})
	col := offset - (bytes.LastIndexByte(head, '\n') + 1)
	return LineCol{Line: line + 1, Column: col}
}

// Locate returns the complete location of t in input, which must be the
// buffer t was parsed from. An open token extends to the end of input.
func (t Token) Locate(input []byte) Location {
	end := t.End
	if end < 0 {
		end = len(input)
	}
	return Location{
		Span:  Span{Pos: t.Start, End: end},
		First: Locate(input, t.Start),
		Last:  Locate(input, end),
	}
}
