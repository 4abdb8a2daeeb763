// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/creachadair/jtok"
)

// benchInput generates a document of n records with mixed value types.
func benchInput(n int) []byte {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i := range n {
		if i > 0 {
			buf.WriteString(",\n")
		}
		fmt.Fprintf(&buf, `  {"id": %d, "name": "item \"%d\"", "score": %d.%02de-3, "tags": ["a", "b", null], "ok": %v}`,
			i, i, i*7, i%100, i%2 == 0)
	}
	buf.WriteString("\n]\n")
	return buf.Bytes()
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	for _, strict := range []bool{false, true} {
		b.Run(fmt.Sprintf("Parser/strict=%v", strict), func(b *testing.B) {
			toks := make([]jtok.Token, 32000)
			p := jtok.NewParser()
			p.SetStrict(strict)
			for b.Loop() {
				p.Init()
				if _, err := p.Parse(input, toks); err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		})
	}

	b.Run("Stream", func(b *testing.B) {
		for b.Loop() {
			if _, err := jtok.NewStream(bytes.NewReader(input), nil).Parse(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
