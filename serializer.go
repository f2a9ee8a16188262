// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the Serializer API for writing MSD documents.
//
// Primary functions:
// - Serialize: Encode parameters to MSD text
// - NewSerializer: Create a streaming serializer to io.Writer

package msd

import (
	"bytes"
	"io"

	"github.com/smdbs01/go-msd/internal/libmsd"
)

// Serialize encodes parameters to MSD text with the given options.
//
// Each parameter is written as "#KEY:VALUE;" on its own line. The
// output parses back to the same parameters, with one exception: a
// component holding a newline directly followed by '#' splits on
// reparse, since a line-leading '#' always opens a parameter.
func Serialize(params []Parameter, opts ...Option) (out []byte, err error) {
	var buf bytes.Buffer
	s, err := NewSerializer(&buf, opts...)
	if err != nil {
		return nil, err
	}
	for i := range params {
		if err := s.Serialize(&params[i]); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// A Serializer writes MSD parameters to an output stream with
// configurable options.
type Serializer struct {
	w    io.Writer
	opts *libmsd.Options
}

// NewSerializer returns a new Serializer that writes to w with the
// given options.
//
// Writes go directly to w; there is nothing to flush or close.
func NewSerializer(w io.Writer, opts ...Option) (*Serializer, error) {
	if w == nil {
		panic("msd: writer must not be nil")
	}
	o, err := libmsd.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Serializer{w: w, opts: o}, nil
}

// Serialize writes the MSD encoding of param to the stream, followed
// by a newline.
//
// With escapes disabled, a component containing "//", ":" or ";" has
// no MSD representation and yields a *SerializeError; the record may
// by then be partially written.
func (s *Serializer) Serialize(param *Parameter) error {
	if err := param.Serialize(s.w, s.opts.Escapes); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "\n")
	return err
}
