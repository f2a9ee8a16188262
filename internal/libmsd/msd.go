// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Core libmsd types.
// Defines TokenType and Token, the units the scanner hands to the parser.

package libmsd

import "fmt"

// TokenType identifies the lexical class of a scanned token.
type TokenType int

// Token types.
const (
	// An empty token.
	NoToken TokenType = iota

	TextToken           // A run of literal text.
	StartParameterToken // A '#' opening a parameter.
	NextComponentToken  // A ':' separating two components.
	EndParameterToken   // A ';' closing a parameter.
	EscapeToken         // A backslash followed by one escaped character.
	CommentToken        // A '//' comment running to end of line.
)

var tokenTypeStrings = []string{
	NoToken:             "NO-TOKEN",
	TextToken:           "TEXT",
	StartParameterToken: "START-PARAMETER",
	NextComponentToken:  "NEXT-COMPONENT",
	EndParameterToken:   "END-PARAMETER",
	EscapeToken:         "ESCAPE",
	CommentToken:        "COMMENT",
}

// String returns the name of the token type.
func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenTypeStrings) {
		return fmt.Sprintf("<unknown token %d>", int(tt))
	}
	return tokenTypeStrings[tt]
}

// Token holds one scanned token.
//
// Text is the raw matched input: concatenating the Text of every token
// scanned from a source reproduces the source byte for byte. Semantic
// adjustments (dropping an escape's backslash, discarding comments) are
// the parser's job.
type Token struct {
	// The token type.
	Type TokenType

	// The matched text, verbatim.
	Text string
}
