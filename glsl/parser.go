// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"io"
)

// Parser reads consecutive declarations from one source. Positions in
// errors are relative to the whole source.
type Parser struct {
	cur   cursor
	lines *lineIndex
}

// NewParser creates a new parser for the given source.
func NewParser(source string) *Parser {
	return &Parser{
		cur:   newCursor(source).skipSpace(),
		lines: newLineIndex(source),
	}
}

// Next parses the next declaration. It returns io.EOF once only whitespace
// and comments remain. After an error the parser does not advance.
func (p *Parser) Next() (Declaration, error) {
	if p.cur.atEnd() {
		return nil, io.EOF
	}
	decl, next, err := declaration(p.cur)
	if err != nil {
		return nil, err.resolve(p.lines)
	}
	p.cur = next.skipSpace()
	return decl, nil
}

// Skip advances past n bytes that the caller consumed itself, such as a
// function body, and any whitespace after them.
func (p *Parser) Skip(n int) {
	p.cur = p.cur.advance(n).skipSpace()
}

// Remaining returns the unconsumed part of the source.
func (p *Parser) Remaining() string {
	return p.cur.rest()
}

// Offset returns the byte offset of the next declaration.
func (p *Parser) Offset() int {
	return p.cur.off
}

// Position returns the line/column of the next declaration.
func (p *Parser) Position() Position {
	return p.lines.position(p.cur.off)
}

// ParseAll parses every declaration in the source, stopping at the first
// error.
func (p *Parser) ParseAll() ([]Declaration, error) {
	var decls []Declaration
	for {
		decl, err := p.Next()
		if err == io.EOF {
			return decls, nil
		}
		if err != nil {
			return decls, fmt.Errorf("declaration %d: %w", len(decls)+1, err)
		}
		decls = append(decls, decl)
	}
}
