// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The scanner turns a byte stream into MSD tokens.
//
// Scanning is table-driven: a fixed, priority-ordered set of patterns is
// tried against the start of the buffered input and the first match
// wins. The same character can scan differently inside and outside a
// parameter, and the text and escape patterns apply in only one escape
// mode, so every table entry carries both classifications and an
// escape-mode affinity.

package libmsd

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// readChunkSize is how many bytes are requested from the source at once.
const readChunkSize = 4096

type escapeAffinity int8

const (
	anyEscapeMode escapeAffinity = iota
	escapesOnly
	noEscapesOnly
)

// scanPattern is one row of the pattern table: a matcher plus the token
// types it produces outside and inside a parameter.
type scanPattern struct {
	match   func([]byte) int // match length at the buffer start, 0 if none
	outside TokenType
	inside  TokenType
	mode    escapeAffinity
	pound   bool // the '#' row, subject to missing-terminator recovery
}

func (p *scanPattern) applies(escapes bool) bool {
	switch p.mode {
	case escapesOnly:
		return escapes
	case noEscapesOnly:
		return !escapes
	}
	return true
}

// scanPatterns is tried in order; ordering is significant. Text runs
// come first so that delimiters only ever match at the start of the
// buffer, and the comment pattern must precede the lone-slash fallback.
// The table is built once, never mutated, and shared by all scanners.
var scanPatterns = []scanPattern{
	{match: textRun(`\/:;#`), outside: TextToken, inside: TextToken, mode: escapesOnly},
	{match: textRun(`/:;#`), outside: TextToken, inside: TextToken, mode: noEscapesOnly},
	{match: literalByte('#'), outside: StartParameterToken, inside: TextToken, mode: anyEscapeMode, pound: true},
	{match: literalByte(':'), outside: TextToken, inside: NextComponentToken, mode: anyEscapeMode},
	{match: literalByte(';'), outside: TextToken, inside: EndParameterToken, mode: anyEscapeMode},
	{match: matchEscape, outside: TextToken, inside: EscapeToken, mode: escapesOnly},
	{match: matchComment, outside: CommentToken, inside: CommentToken, mode: anyEscapeMode},
	{match: literalByte('/'), outside: TextToken, inside: TextToken, mode: anyEscapeMode},
}

// textRun matches the longest prefix containing none of the stop bytes.
// Newlines are ordinary text.
func textRun(stop string) func([]byte) int {
	return func(buf []byte) int {
		if n := bytes.IndexAny(buf, stop); n >= 0 {
			return n
		}
		return len(buf)
	}
}

func literalByte(c byte) func([]byte) int {
	return func(buf []byte) int {
		if len(buf) > 0 && buf[0] == c {
			return 1
		}
		return 0
	}
}

// matchEscape matches a backslash and the single character after it,
// newlines included.
func matchEscape(buf []byte) int {
	if len(buf) < 2 || buf[0] != '\\' {
		return 0
	}
	_, size := utf8.DecodeRune(buf[1:])
	return 1 + size
}

// matchComment matches "//" and the rest of the line. The line
// terminator itself is not part of the comment.
func matchComment(buf []byte) int {
	if len(buf) < 2 || buf[0] != '/' || buf[1] != '/' {
		return 0
	}
	if n := bytes.IndexAny(buf[2:], "\r\n"); n >= 0 {
		return 2 + n
	}
	return len(buf)
}

// A Scanner reads MSD tokens from an io.Reader.
//
// The scanner keeps its own inside-parameter flag so that '#', ':' and
// ';' classify correctly before the parser has seen them; the parser
// derives the authoritative record boundaries from the same tokens
// independently.
type Scanner struct {
	source  io.Reader
	escapes bool

	buf   []byte // buffered input not yet matched
	chunk []byte // read scratch space

	inside   bool   // inside-parameter lexing context
	done     bool   // source exhausted
	lastText string // most recent Text token, drives '#' recovery

	offset int   // bytes read from the source so far
	err    error // sticky read error
}

// NewScanner returns a Scanner reading from r. When escapes is true,
// backslash escaping is active and "\:" scans as an Escape token; when
// false, backslashes are ordinary text.
func NewScanner(r io.Reader, escapes bool) *Scanner {
	return &Scanner{
		source:  r,
		escapes: escapes,
		chunk:   make([]byte, readChunkSize),
	}
}

// Scan reads the next token from the source into token. It returns
// io.EOF once the source and the internal buffer are both exhausted.
// A failure of the underlying reader is returned as a *ReaderError and
// is sticky: every later call returns the same error.
func (s *Scanner) Scan(token *Token) error {
	if s.err != nil {
		return s.err
	}
	for {
		// Only match once the buffer holds a line terminator or the
		// rest of the stream, so escapes and comments are never split
		// across two reads.
		if s.decidable() && s.scanToken(token) {
			return nil
		}
		if s.done {
			if len(s.buf) == 0 {
				return io.EOF
			}
			// A lone trailing backslash with escapes on matches no
			// pattern. Flush it as text so the stream still ends.
			s.emit(token, TextToken, 1)
			return nil
		}
		if err := s.fill(); err != nil {
			s.err = err
			return err
		}
	}
}

func (s *Scanner) decidable() bool {
	return bytes.ContainsAny(s.buf, "\r\n") || (s.done && len(s.buf) > 0)
}

func (s *Scanner) fill() error {
	n, err := s.source.Read(s.chunk)
	if n > 0 {
		s.buf = append(s.buf, s.chunk[:n]...)
		s.offset += n
	}
	if err == io.EOF {
		s.done = true
		return nil
	}
	if err != nil {
		return &ReaderError{Offset: s.offset, Err: err}
	}
	return nil
}

// scanToken tries the pattern table against the buffer start and emits
// the first match. It reports whether a token was produced.
func (s *Scanner) scanToken(token *Token) bool {
	for i := range scanPatterns {
		p := &scanPatterns[i]
		if !p.applies(s.escapes) {
			continue
		}
		n := p.match(s.buf)
		if n == 0 {
			continue
		}
		kind := p.outside
		if s.inside {
			kind = p.inside
		}
		// Missing-terminator recovery: a '#' at the start of a line is
		// a new parameter even when the previous one never saw its ';'.
		// The trigger is the '#' row, classified Text, directly after a
		// Text token ending in a newline. A literal '#' elsewhere in a
		// value is left alone.
		if p.pound && kind == TextToken && endsWithNewline(s.lastText) {
			kind = StartParameterToken
		}
		s.emit(token, kind, n)
		return true
	}
	return false
}

// emit consumes n buffered bytes as a token of the given type and
// updates the lexing context.
func (s *Scanner) emit(token *Token, kind TokenType, n int) {
	text := string(s.buf[:n])
	s.buf = s.buf[n:]
	switch kind {
	case StartParameterToken:
		s.inside = true
	case EndParameterToken:
		s.inside = false
	case TextToken:
		s.lastText = text
	}
	token.Type = kind
	token.Text = text
}

func endsWithNewline(s string) bool {
	return len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r')
}
