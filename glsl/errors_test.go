// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"strings"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "with position",
			err: &ParseError{
				Kind:    ErrSyntax,
				Rule:    "declaration",
				Message: "expected \";\"",
				Span:    Span{Start: Position{Line: 5, Column: 10}},
			},
			expected: "5:10: SyntaxError in declaration: expected \";\"",
		},
		{
			name: "without position",
			err: &ParseError{
				Kind:    ErrLexicalMismatch,
				Rule:    "token",
				Message: "unexpected character",
			},
			expected: "LexicalMismatch in token: unexpected character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseError_FormatWithContext(t *testing.T) {
	source := "uniform mat4 u_mvp;\nattribute vec3 a_pos\nvarying vec2 v_uv;"
	_, err := NewParser(source).ParseAll()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}

	formatted := perr.FormatWithContext()
	if !strings.Contains(formatted, "error[SyntaxError]") {
		t.Errorf("formatted error should contain kind:\n%s", formatted)
	}
	if !strings.Contains(formatted, "line 3:1") {
		t.Errorf("formatted error should contain line:column:\n%s", formatted)
	}
	if !strings.Contains(formatted, "varying vec2 v_uv;") {
		t.Errorf("formatted error should contain source line:\n%s", formatted)
	}
	if !strings.Contains(formatted, "^") {
		t.Error("formatted error should contain caret pointer")
	}
}

func TestParseError_FormatWithContext_NoSource(t *testing.T) {
	err := &ParseError{
		Kind:    ErrSyntax,
		Rule:    "declaration",
		Message: "error without source",
		Span:    Span{Start: Position{Line: 1, Column: 1}},
	}
	if got := err.FormatWithContext(); got != err.Error() {
		t.Errorf("FormatWithContext() = %q, want %q", got, err.Error())
	}
}

func TestParseError_KindPredicates(t *testing.T) {
	tests := []struct {
		kind       ErrorKind
		syntax     bool
		lexical    bool
		incomplete bool
	}{
		{ErrSyntax, true, false, false},
		{ErrLexicalMismatch, false, true, false},
		{ErrIncompleteInput, false, false, true},
	}
	for _, tt := range tests {
		e := &ParseError{Kind: tt.kind}
		if e.IsSyntax() != tt.syntax || e.IsLexical() != tt.lexical || e.IsIncomplete() != tt.incomplete {
			t.Errorf("%s: predicates = %v/%v/%v", tt.kind, e.IsSyntax(), e.IsLexical(), e.IsIncomplete())
		}
	}
}

func TestErrorKindString(t *testing.T) {
	if got := ErrorKind(42).String(); got != "Unknown" {
		t.Errorf("ErrorKind(42).String() = %q", got)
	}
}

func TestFurthest(t *testing.T) {
	near := &ParseError{Span: Span{Start: Position{Offset: 2}}}
	far := &ParseError{Span: Span{Start: Position{Offset: 7}}}
	tie := &ParseError{Span: Span{Start: Position{Offset: 7}}}

	if furthest(nil, near) != near || furthest(near, nil) != near {
		t.Error("furthest should ignore nil")
	}
	if furthest(far, near) != far || furthest(near, far) != far {
		t.Error("furthest should prefer the larger offset")
	}
	if furthest(far, tie) != tie {
		t.Error("furthest should prefer the later error on a tie")
	}
}

func TestIncompleteAtEndOfInput(t *testing.T) {
	_, _, err := ParseDeclaration("uniform vec3 a // trailing comment")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !perr.IsIncomplete() {
		t.Errorf("kind = %s, want IncompleteInput", perr.Kind)
	}
}
