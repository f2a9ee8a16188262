// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package msd implements MSD support for the Go language.
//
// MSD is the textual key/value format used by rhythm game simfiles
// (.sm, .ssc, .dwi and friends). A document is a sequence of
// parameters, each written as
//
//	#KEY:VALUE;
//
// with any number of further ':'-separated components. Parsing is
// tolerant by design: missing semicolons are recovered at the next
// line-leading '#', stray text between parameters is reported without
// aborting, and "//" comments are stripped anywhere outside escapes.
//
// Source code and other details for the project are available at
// GitHub:
//
//	https://github.com/smdbs01/go-msd
//
// This file contains:
// - Options API (Options, WithEscapes, WithIgnoreStrayText, Legacy)
// - Type and constant re-exports from internal/libmsd
// - Parse API (Parse, Parser, Scanner)

package msd

import (
	"bytes"
	"io"

	"github.com/smdbs01/go-msd/internal/libmsd"
)

//-----------------------------------------------------------------------------
// Options
//-----------------------------------------------------------------------------

// Option allows configuring MSD parsing and serialization operations.
type Option = libmsd.Option

// Option configuration functions
var (
	// WithEscapes enables or disables backslash escape sequences.
	//
	// When enabled, a backslash makes the following character literal
	// text while parsing, and serialization backslash-escapes the
	// special substrings "//", ":" and ";". When disabled, backslashes
	// are ordinary text and components containing special substrings
	// cannot be serialized.
	// When called without arguments, defaults to true.
	//
	// The default is true. Most simfile formats use escapes; see
	// [Legacy] for the ones that predate them.
	WithEscapes = libmsd.WithEscapes

	// WithIgnoreStrayText discards non-whitespace text found between
	// parameters instead of reporting it as a *StrayTextError.
	//
	// Stray text never becomes part of any parameter either way; the
	// option only controls whether it is surfaced as an error.
	// When called without arguments, defaults to true.
	//
	// The default is false.
	WithIgnoreStrayText = libmsd.WithIgnoreStrayText
)

// Options combines multiple options into a single Option.
// This is useful for creating option presets.
//
// Example:
//
//	opts := msd.Options(msd.Legacy, msd.WithIgnoreStrayText())
//	params, err := msd.Parse(data, opts)
func Options(opts ...Option) Option {
	return libmsd.CombineOptions(opts...)
}

// Legacy configures parsing and serialization for formats that predate
// backslash escapes, such as DWI simfiles and older SM releases. With
// this preset a backslash is literal text.
var Legacy = Options(WithEscapes(false))

//-----------------------------------------------------------------------------
// Type and constant re-exports
//-----------------------------------------------------------------------------

type (
	// Parameter is one MSD record: an ordered list of string
	// components, the first of which is the key.
	// See internal/libmsd.Parameter.
	Parameter = libmsd.Parameter

	// Token is one lexical unit of MSD text.
	// See internal/libmsd.Token.
	Token = libmsd.Token

	// TokenType identifies the kind of a Token.
	// See internal/libmsd.TokenType.
	TokenType = libmsd.TokenType

	// StrayTextError reports non-whitespace text between parameters.
	// See internal/libmsd.StrayTextError.
	StrayTextError = libmsd.StrayTextError

	// ReaderError reports a failure of the underlying byte source.
	// See internal/libmsd.ReaderError.
	ReaderError = libmsd.ReaderError

	// SerializeError reports a component that cannot be written
	// without escapes.
	// See internal/libmsd.SerializeError.
	SerializeError = libmsd.SerializeError
)

// Re-export TokenType constants
const (
	NoToken             = libmsd.NoToken
	TextToken           = libmsd.TextToken
	StartParameterToken = libmsd.StartParameterToken
	NextComponentToken  = libmsd.NextComponentToken
	EndParameterToken   = libmsd.EndParameterToken
	EscapeToken         = libmsd.EscapeToken
	CommentToken        = libmsd.CommentToken
)

// MustEscape lists the substrings that cannot appear verbatim inside a
// serialized component.
var MustEscape = libmsd.MustEscape

//-----------------------------------------------------------------------------
// Parse API
//-----------------------------------------------------------------------------

// Streaming API types
type (
	// Parser reads MSD parameters from an input stream, one at a time.
	Parser = libmsd.Parser

	// Scanner reads raw MSD tokens from an input stream, one at a
	// time. Most callers want the Parser; the token stream is for
	// tooling that inspects document structure.
	Scanner = libmsd.Scanner
)

// NewParser returns a new Parser that reads from r with the given
// options.
//
// The parser reads from r lazily, no further than needed to produce
// the next parameter. Call Parse repeatedly until it returns io.EOF:
//
//	var param msd.Parameter
//	for {
//		err := parser.Parse(&param)
//		if err == io.EOF {
//			break
//		}
//		...
//	}
//
// A *StrayTextError from Parse is not fatal; parsing may continue.
func NewParser(r io.Reader, opts ...Option) (*Parser, error) {
	if r == nil {
		panic("msd: reader must not be nil")
	}
	o, err := libmsd.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return libmsd.NewParser(r, o), nil
}

// NewScanner returns a new Scanner that reads from r with the given
// options.
//
// Call Scan repeatedly until it returns io.EOF. Concatenating the text
// of every token reproduces the input exactly.
func NewScanner(r io.Reader, opts ...Option) (*Scanner, error) {
	if r == nil {
		panic("msd: reader must not be nil")
	}
	o, err := libmsd.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return libmsd.NewScanner(r, o.Escapes), nil
}

// Parse parses a complete MSD document and returns its parameters.
//
// The first error encountered aborts parsing. Stray text between
// parameters is an error here unless WithIgnoreStrayText is given; use
// a Parser directly to continue past stray text while still observing
// it.
func Parse(in []byte, opts ...Option) ([]Parameter, error) {
	p, err := NewParser(bytes.NewReader(in), opts...)
	if err != nil {
		return nil, err
	}
	var params []Parameter
	for {
		var param Parameter
		if err := p.Parse(&param); err != nil {
			if err == io.EOF {
				return params, nil
			}
			return nil, err
		}
		params = append(params, param)
	}
}
