// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunText(t *testing.T) {
	code, out, _ := runWith(t, `{"test":1}`)
	require.Equal(t, 0, code)
	assert.Equal(t, "0\tobject\t0\t10\t2\t-1\t\n"+
		"1\tstring\t2\t6\t0\t-1\t\"test\"\n"+
		"2\tprimitive\t8\t9\t0\t-1\t1\n", out)
}

func TestRunStrictScalar(t *testing.T) {
	for _, input := range []string{"42", "-0.5e3", "true", "null"} {
		code, out, logs := runWith(t, input, "-strict")
		require.Equal(t, 0, code, "input %q: %s", input, logs)
		assert.Equal(t, "0\tprimitive\t0\t"+fmt.Sprint(len(input))+"\t0\t-1\t"+input+"\n", out)
	}

	code, out, _ := runWith(t, "/* x */ 7", "-strict", "-jwcc")
	require.Equal(t, 0, code)
	assert.Equal(t, "0\tprimitive\t8\t9\t0\t-1\t7\n", out)
}

func TestRunParents(t *testing.T) {
	code, out, _ := runWith(t, `[[true]]`, "-parents")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1\tarray\t1\t7\t1\t0\t", lines[1])
	assert.Equal(t, "2\tprimitive\t2\t6\t0\t1\ttrue", lines[2])
}

func TestRunJSON(t *testing.T) {
	code, out, _ := runWith(t, `["a\tb", null]`, "-format", "json")
	require.Equal(t, 0, code)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "<stdin>", doc.File)
	require.Len(t, doc.Tokens, 3)
	assert.Equal(t, "string", doc.Tokens[1].Kind)
	assert.Equal(t, "a\tb", doc.Tokens[1].Text)
	assert.Equal(t, "null", doc.Tokens[2].Text)
}

func TestRunYAML(t *testing.T) {
	code, out, _ := runWith(t, `{"k": [1, 2]}`, "-format", "yaml", "-strict")
	require.Equal(t, 0, code)

	var doc document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Tokens, 5)
	assert.Equal(t, "array", doc.Tokens[2].Kind)
	assert.Equal(t, 2, doc.Tokens[2].Size)
}

func TestRunJWCC(t *testing.T) {
	code, out, _ := runWith(t, "[1, // one\n 2,]", "-jwcc", "-strict")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestRunErrors(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		code, out, logs := runWith(t, `{"a":}`)
		assert.Equal(t, 1, code)
		assert.Empty(t, out)
		assert.Contains(t, logs, "Tokenize failed")
		assert.Contains(t, logs, "invalid input")
	})
	t.Run("Truncated", func(t *testing.T) {
		code, _, logs := runWith(t, `[1, 2`)
		assert.Equal(t, 1, code)
		assert.Contains(t, logs, "incomplete input")
	})
	t.Run("BadFormat", func(t *testing.T) {
		code, _, logs := runWith(t, `1`, "-format", "xml")
		assert.Equal(t, 2, code)
		assert.Contains(t, logs, `unknown output format "xml"`)
	})
	t.Run("MissingFile", func(t *testing.T) {
		code, _, logs := runWith(t, "", filepath.Join(t.TempDir(), "nonesuch.json"))
		assert.Equal(t, 1, code)
		assert.Contains(t, logs, "Failed to open input")
	})
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`[1, 2, 3]`), 0600))
	require.NoError(t, os.WriteFile(bad, []byte(`[1, 2, 3}`), 0600))

	code, out, _ := runWith(t, "", good)
	assert.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)

	code, _, logs := runWith(t, "", good, bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "bad.json")
}
