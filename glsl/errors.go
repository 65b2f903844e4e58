// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes front-end failures.
type ErrorKind uint8

const (
	// ErrLexicalMismatch indicates no lexeme alternative matched at a position.
	ErrLexicalMismatch ErrorKind = iota

	// ErrSyntax indicates a required sub-construct (comma, parenthesis,
	// terminator, identifier) is absent.
	ErrSyntax

	// ErrIncompleteInput indicates the input ended mid-construct.
	ErrIncompleteInput
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrLexicalMismatch:
		return "LexicalMismatch"
	case ErrSyntax:
		return "SyntaxError"
	case ErrIncompleteInput:
		return "IncompleteInput"
	default:
		return "Unknown"
	}
}

// ParseError reports the grammar rule that failed and where it was attempted.
type ParseError struct {
	Kind    ErrorKind
	Rule    string // grammar rule, e.g. "declaration" or "param_declaration"
	Message string
	Span    Span
	Source  string // original source code (for context display)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Span.Start.Line == 0 {
		return fmt.Sprintf("%s in %s: %s", e.Kind, e.Rule, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s in %s: %s",
		e.Span.Start.Line, e.Span.Start.Column, e.Kind, e.Rule, e.Message)
}

// Offset returns the byte offset at which the failing rule was attempted.
func (e *ParseError) Offset() int {
	return e.Span.Start.Offset
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *ParseError) FormatWithContext() string {
	if e.Source == "" || e.Span.Start.Line == 0 {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	lineNum := e.Span.Start.Line
	if lineNum < 1 || lineNum > len(lines) {
		return e.Error()
	}

	line := lines[lineNum-1]
	col := e.Span.Start.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error[%s]: %s\n", e.Kind, e.Message)
	fmt.Fprintf(&sb, "  --> line %d:%d (%s)\n", lineNum, col, e.Rule)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

// resolve fills in line and column from the recorded byte offset.
func (e *ParseError) resolve(x *lineIndex) *ParseError {
	if e.Span.Start.Line == 0 {
		e.Span.Start = x.position(e.Span.Start.Offset)
		e.Span.End = e.Span.Start
	}
	return e
}

// IsSyntax returns true if the error is ErrSyntax.
func (e *ParseError) IsSyntax() bool {
	return e.Kind == ErrSyntax
}

// IsLexical returns true if the error is ErrLexicalMismatch.
func (e *ParseError) IsLexical() bool {
	return e.Kind == ErrLexicalMismatch
}

// IsIncomplete returns true if the error is ErrIncompleteInput.
func (e *ParseError) IsIncomplete() bool {
	return e.Kind == ErrIncompleteInput
}

// furthest picks the failure that got deepest into the input. On a tie the
// later alternative wins.
func furthest(a, b *ParseError) *ParseError {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Offset() > b.Offset():
		return a
	default:
		return b
	}
}
