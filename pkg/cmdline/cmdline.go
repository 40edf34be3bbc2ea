// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cmdline.go - Quote-aware tokenization of interactive command input.

package cmdline

import "strings"

// =============================================================================
// TOKEN
// =============================================================================

// Token is one lexical unit cut from an input line. It is a read-only
// view: the text is a substring of the line it was produced from and is
// never mutated.
type Token struct {
	text     string
	hasSpace bool
	isError  bool
}

// newToken builds a regular token. A token contains a space only when it
// was single-quoted, since unquoted scanning stops at spaces.
func newToken(text string) Token {
	return Token{
		text:     text,
		hasSpace: strings.IndexByte(text, ' ') >= 0,
	}
}

// errorToken builds a token representing malformed quoting.
func errorToken(text string) Token {
	return Token{text: text, isError: true}
}

// Text returns the token content with quoting already stripped.
func (t Token) Text() string { return t.text }

// HasSpace reports whether the content contains an embedded space, which
// means the token must be re-quoted when rendered back to text.
func (t Token) HasSpace() bool { return t.hasSpace }

// IsError reports whether the token was produced from malformed quoting.
func (t Token) IsError() bool { return t.isError }

// Empty reports whether the token has no content.
func (t Token) Empty() bool { return t.text == "" }

// String renders the token back to its canonical text form. Error tokens
// render with a "Bad_command: " marker, tokens with embedded spaces are
// wrapped in single quotes, everything else renders as-is.
func (t Token) String() string {
	switch {
	case t.isError:
		return "Bad_command: " + t.text
	case t.hasSpace:
		return "'" + t.text + "'"
	default:
		return t.text
	}
}

// Render returns the canonical text form of an arbitrary value, applying
// the same quoting rule used by Token.String.
func Render(value string) string {
	return newToken(value).String()
}

// =============================================================================
// LINE
// =============================================================================

// Line is one raw line of command input. Tokenization is pure and
// deterministic, so a Line can be re-scanned any number of times.
type Line struct {
	raw string
}

// NewLine wraps a raw input string.
func NewLine(raw string) Line { return Line{raw: raw} }

// String returns the raw line text.
func (l Line) String() string { return l.raw }

// Parts returns a fresh iterator over the tokens of the line.
func (l Line) Parts() *Iter { return &Iter{line: l.raw} }

// Tokens scans the whole line and returns its tokens in order.
func (l Line) Tokens() []Token {
	var out []Token
	for it := l.Parts(); ; {
		tok, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// =============================================================================
// ITERATOR
// =============================================================================

// Iter walks a line left to right, producing one token per call to Next.
type Iter struct {
	line string
	pos  int
}

// Next returns the next token and true, or a zero token and false once
// the line is exhausted.
//
// Scanning rules:
//   - Exactly at end of line: one empty token is emitted. This signals
//     that one more token is expected after trailing whitespace, and
//     makes a wholly empty line yield exactly one empty token.
//   - A single-quoted region ends at the next quote. The closing quote
//     must be followed by a space or end of line; anything else emits an
//     error token covering the opening quote through the character
//     before the closing quote, and scanning resumes right after the
//     closing quote.
//   - An unterminated quote consumes the rest of the line as a normal
//     token.
//   - An unquoted token ends at the next space. A quote character inside
//     it makes it an error token.
func (it *Iter) Next() (Token, bool) {
	pos := it.pos
	n := len(it.line)

	if pos > n {
		return Token{}, false
	}

	// A space was present after the last token (or the line is empty).
	// Emit a single empty token to signal it.
	if pos == n {
		it.pos = n + 1
		return newToken(""), true
	}

	if it.line[pos] == '\'' {
		// Quoted token
		q := strings.IndexByte(it.line[pos+1:], '\'')
		if q < 0 {
			// No closing quote. The rest of the line is the token.
			it.pos = n + 1
			return newToken(it.line[pos+1:]), true
		}
		q += pos + 1

		if q+1 != n {
			if it.line[q+1] != ' ' {
				// Closing quote not followed by a space. Emit an error
				// token and resume right after the closing quote.
				it.pos = q + 1
				return errorToken(it.line[pos:q]), true
			}
			it.pos = q + 2
		} else {
			// Closing quote is the last character of the line.
			it.pos = n + 1
		}
		return newToken(it.line[pos+1 : q]), true
	}

	// Unquoted token
	if q := strings.IndexByte(it.line[pos:], ' '); q >= 0 {
		q += pos
		it.pos = q + 1
		if strings.IndexByte(it.line[pos:q], '\'') >= 0 {
			return errorToken(it.line[pos:q]), true
		}
		return newToken(it.line[pos:q]), true
	}

	it.pos = n + 1
	if strings.IndexByte(it.line[pos:], '\'') >= 0 {
		return errorToken(it.line[pos:]), true
	}
	return newToken(it.line[pos:]), true
}
