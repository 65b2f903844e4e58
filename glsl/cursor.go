// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// cursor is an immutable position in the source. Rules take a cursor and
// return a new one on success; on failure the caller still holds the
// original, so alternatives can be retried from the same place.
type cursor struct {
	src string
	off int
}

func newCursor(src string) cursor {
	return cursor{src: src}
}

func (c cursor) rest() string {
	return c.src[c.off:]
}

func (c cursor) atEnd() bool {
	return c.off >= len(c.src)
}

func (c cursor) peek() rune {
	if c.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r
}

func (c cursor) advance(n int) cursor {
	c.off += n
	if c.off > len(c.src) {
		c.off = len(c.src)
	}
	return c
}

// skipSpace skips whitespace and comments.
func (c cursor) skipSpace() cursor {
	for !c.atEnd() {
		rest := c.rest()
		switch {
		case rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r' ||
			rest[0] == '\f' || rest[0] == '\v':
			c.off++
		case strings.HasPrefix(rest, "//"):
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				c.off += i + 1
			} else {
				c.off = len(c.src)
			}
		case strings.HasPrefix(rest, "/*"):
			if i := strings.Index(rest[2:], "*/"); i >= 0 {
				c.off += i + 4
			} else {
				c.off = len(c.src)
			}
		default:
			return c
		}
	}
	return c
}

// lineIndex resolves byte offsets to positions. A lookup at or after the
// previous one resumes from it, so resolving increasing offsets over a
// source is linear overall.
type lineIndex struct {
	src  string
	off  int
	line int
	col  int // runes since the start of the line
}

func newLineIndex(src string) *lineIndex {
	return &lineIndex{src: src, line: 1}
}

func (x *lineIndex) position(off int) Position {
	if off > len(x.src) {
		off = len(x.src)
	}
	if off < x.off {
		x.off, x.line, x.col = 0, 1, 0
	}
	for {
		i := strings.IndexByte(x.src[x.off:off], '\n')
		if i < 0 {
			break
		}
		x.off += i + 1
		x.line++
		x.col = 0
	}
	x.col += utf8.RuneCountInString(x.src[x.off:off])
	x.off = off
	return Position{Line: x.line, Column: x.col + 1, Offset: off}
}

func (x *lineIndex) span(start, end cursor) Span {
	return Span{Start: x.position(start.off), End: x.position(end.off)}
}

// fail builds a ParseError at the first non-space position of c. A syntax
// failure at the end of input is reported as ErrIncompleteInput.
//
// Only the byte offset is recorded. Line and column are filled in by
// resolve when the error leaves the package.
func (c cursor) fail(kind ErrorKind, rule, format string, args ...any) *ParseError {
	at := c.skipSpace()
	if kind == ErrSyntax && at.atEnd() {
		kind = ErrIncompleteInput
	}
	pos := Position{Offset: at.off}
	return &ParseError{
		Kind:    kind,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Span:    Span{Start: pos, End: pos},
		Source:  c.src,
	}
}

// describe renders the upcoming input for error messages.
func (c cursor) describe() string {
	at := c.skipSpace()
	if at.atEnd() {
		return "end of input"
	}
	if p, _ := scanPunct(at); p != "" {
		return fmt.Sprintf("%q", p)
	}
	if w, _ := scanWord(at); w != "" {
		return fmt.Sprintf("%q", w)
	}
	return fmt.Sprintf("%q", at.peek())
}
