// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The parser assembles scanned tokens into parameters.

package libmsd

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Parser reads MSD parameters from an io.Reader.
//
// Parsing is pull-based: each Parse call consumes just enough of the
// source to produce one parameter. A Parser must not be used from more
// than one goroutine at a time.
type Parser struct {
	scanner         *Scanner
	ignoreStrayText bool

	components []string
	inside     bool
	lastKey    string
	emitted    bool

	token Token
}

// NewParser returns a Parser reading from r with the given options.
func NewParser(r io.Reader, o *Options) *Parser {
	if o == nil {
		o = &Options{Escapes: true}
	}
	return &Parser{
		scanner:         NewScanner(r, o.Escapes),
		ignoreStrayText: o.IgnoreStrayText,
	}
}

// Parse advances to the next parameter and stores it in param. It
// returns io.EOF once the source is exhausted. Input still accumulating
// when the source ends is finalized into one last parameter, so a
// document missing its final ';' parses completely.
//
// Non-whitespace text outside any parameter is returned as a
// *StrayTextError unless the parser was configured to ignore it. The
// error is non-fatal: the stray text has been consumed and the next
// Parse call continues from after it. Reader failures are fatal and
// returned unchanged on every call.
func (p *Parser) Parse(param *Parameter) error {
	for {
		err := p.scanner.Scan(&p.token)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch p.token.Type {
		case TextToken, EscapeToken:
			text := p.token.Text
			if p.token.Type == EscapeToken {
				text = text[1:] // drop the backslash
			}
			if p.inside {
				p.components[len(p.components)-1] += text
			} else if !p.ignoreStrayText {
				if err := p.strayText(text); err != nil {
					return err
				}
			}
		case StartParameterToken:
			if p.inside {
				*param = p.finalize()
				p.begin()
				return nil
			}
			p.begin()
		case EndParameterToken:
			if p.inside {
				*param = p.finalize()
				return nil
			}
		case NextComponentToken:
			if p.inside {
				p.components = append(p.components, "")
			}
		case CommentToken:
			// discarded in any state
		}
	}
	// Missing ';' at the end of the input: the accumulated components
	// form the final parameter.
	if p.inside {
		*param = p.finalize()
		return nil
	}
	return io.EOF
}

// begin opens a new parameter with one empty component.
func (p *Parser) begin() {
	p.inside = true
	p.components = []string{""}
}

// finalize moves the accumulated components out into a finished
// parameter and resets the in-progress state.
func (p *Parser) finalize() Parameter {
	param := Parameter{Components: p.components}
	p.components = nil
	p.inside = false
	p.lastKey = param.Key()
	p.emitted = true
	return param
}

// strayText checks text found outside any parameter. An empty string, a
// byte-order mark, and runs of whitespace or line terminators are fine;
// anything else is an error naming the first non-whitespace character
// and where it was found.
func (p *Parser) strayText(text string) error {
	if text == "\uFEFF" {
		return nil
	}
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return nil
	}
	ch, _ := utf8.DecodeRuneInString(trimmed)
	if !p.emitted {
		return &StrayTextError{Char: ch, AtStart: true}
	}
	return &StrayTextError{Char: ch, LastKey: p.lastKey}
}
