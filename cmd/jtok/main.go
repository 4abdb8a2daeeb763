// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jtok prints the flat token array of JSON input.
//
// Usage:
//
//	jtok [flags] [file ...]
//
// With no files, jtok reads standard input.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/jwcc"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type settings struct {
	opts     jtok.Options
	jwcc     bool
	format   string
	logLevel string
	pretty   bool
	files    []string
}

func parseFlags(args []string, stderr io.Writer) (*settings, error) {
	fs := flag.NewFlagSet("jtok", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jtok [flags] [file ...]\n\nPrint the tokens of JSON input.\n\n")
		fs.PrintDefaults()
	}

	var s settings
	fs.BoolVar(&s.opts.Strict, "strict", false, "Enforce the JSON grammar and primitive shapes")
	fs.BoolVar(&s.opts.ParentLinks, "parents", false, "Record the parent index of each token")
	fs.IntVar(&s.opts.Tokens, "tokens", 64, "Initial token capacity")
	fs.BoolVar(&s.jwcc, "jwcc", false, "Accept comments and trailing commas (JWCC)")
	fs.StringVar(&s.format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&s.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&s.pretty, "pretty", false, "Enable pretty logging output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch s.format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q", s.format)
	}
	s.files = fs.Args()
	return &s, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	setupLogging(s.logLevel, s.pretty, stderr)

	status := 0
	if len(s.files) == 0 {
		if err := s.process("<stdin>", stdin, stdout); err != nil {
			status = 1
		}
		return status
	}
	for _, path := range s.files {
		f, err := os.Open(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to open input")
			status = 1
			continue
		}
		err = s.process(path, f, stdout)
		f.Close()
		if err != nil {
			status = 1
		}
	}
	return status
}

// process tokenizes the contents of r and writes the tokens to w.
func (s *settings) process(name string, r io.Reader, w io.Writer) error {
	input, toks, err := s.tokenize(r)
	if err != nil {
		ev := log.Error().Err(err).Str("file", name)
		var serr *jtok.SyntaxError
		if errors.As(err, &serr) {
			ev = ev.Int("offset", serr.Offset).Stringer("loc", serr.Location)
		}
		ev.Msg("Tokenize failed")
		return err
	}
	log.Debug().Str("file", name).Int("bytes", len(input)).Int("tokens", len(toks)).Msg("Tokenized input")

	if err := s.write(w, name, input, toks); err != nil {
		log.Error().Err(err).Str("file", name).Msg("Failed to write output")
		return err
	}
	return nil
}

func (s *settings) tokenize(r io.Reader) ([]byte, []jtok.Token, error) {
	if s.jwcc {
		input, err := io.ReadAll(r)
		if err != nil {
			return nil, nil, err
		}
		toks, err := jwcc.Tokenize(input, &s.opts)
		return input, toks, err
	}
	st := jtok.NewStream(r, &s.opts)
	toks, err := st.Parse()
	return st.Input(), toks, err
}

// A record is the output form of a single token.
type record struct {
	Index  int    `json:"index" yaml:"index"`
	Kind   string `json:"kind" yaml:"kind"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Size   int    `json:"size" yaml:"size"`
	Parent int    `json:"parent" yaml:"parent"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
}

type document struct {
	File   string   `json:"file" yaml:"file"`
	Tokens []record `json:"tokens" yaml:"tokens"`
}

func newRecords(input []byte, toks []jtok.Token) []record {
	recs := make([]record, len(toks))
	for i, tok := range toks {
		recs[i] = record{
			Index:  i,
			Kind:   tok.Kind.String(),
			Start:  tok.Start,
			End:    tok.End,
			Size:   tok.Size,
			Parent: tok.Parent,
		}
		switch tok.Kind {
		case jtok.String:
			if dec, err := jtok.Unquote(input, tok); err == nil {
				recs[i].Text = string(dec)
			} else {
				recs[i].Text = string(tok.Text(input))
			}
		case jtok.Primitive:
			recs[i].Text = string(tok.Text(input))
		}
	}
	return recs
}

func (s *settings) write(w io.Writer, name string, input []byte, toks []jtok.Token) error {
	doc := document{File: name, Tokens: newRecords(input, toks)}
	switch s.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		_, err = w.Write(out)
		return err

	default:
		for _, rec := range doc.Tokens {
			text := rec.Text
			if rec.Kind == "string" {
				text = jtok.Quote(text)
			}
			if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
				rec.Index, rec.Kind, rec.Start, rec.End, rec.Size, rec.Parent, text); err != nil {
				return err
			}
		}
		return nil
	}
}

func setupLogging(level string, pretty bool, w io.Writer) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}
}
