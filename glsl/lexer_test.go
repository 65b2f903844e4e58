// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"strings"
	"testing"
)

func TestNextTokenClassification(t *testing.T) {
	tests := []struct {
		input  string
		want   Token
		remain string
	}{
		{"+ x", Token{Kind: TokenOperator, Operator: "+", Lexeme: "+"}, "x"},
		{";", Token{Kind: TokenOperator, Operator: ";", Lexeme: ";"}, ""},
		{"  1.0 ", Token{Kind: TokenConstant, Constant: FloatConstant(1.0), Lexeme: "1.0"}, ""},
		{"42;", Token{Kind: TokenConstant, Constant: IntConstant(42), Lexeme: "42"}, ";"},
		{"0x1F", Token{Kind: TokenConstant, Constant: IntConstant(31), Lexeme: "0x1F"}, ""},
		{"true", Token{Kind: TokenConstant, Constant: BoolConstant(true), Lexeme: "true"}, ""},
		{"false)", Token{Kind: TokenConstant, Constant: BoolConstant(false), Lexeme: "false"}, ")"},
		{"vec3 a", Token{Kind: TokenBasicType, Type: Vec3, Lexeme: "vec3"}, "a"},
		{"samplerCube", Token{Kind: TokenBasicType, Type: SamplerCube, Lexeme: "samplerCube"}, ""},
		{"sampler3D", Token{Kind: TokenBasicType, Type: SamplerCube, Lexeme: "sampler3D"}, ""},
		{"vec3x", Token{Kind: TokenIdentifier, Ident: "vec3x", Lexeme: "vec3x"}, ""},
		{"trueish", Token{Kind: TokenIdentifier, Ident: "trueish", Lexeme: "trueish"}, ""},
		{"_a1 = 2", Token{Kind: TokenIdentifier, Ident: "_a1", Lexeme: "_a1"}, "= 2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, rest, err := NextToken(tt.input)
			if err != nil {
				t.Fatalf("NextToken(%q) error: %v", tt.input, err)
			}
			tok.Span = Span{}
			if tok != tt.want {
				t.Errorf("NextToken(%q) = %v, want %v", tt.input, tok, tt.want)
			}
			if rest != tt.remain {
				t.Errorf("NextToken(%q) remainder = %q, want %q", tt.input, rest, tt.remain)
			}
		})
	}
}

func TestNextTokenFloatBeforeInteger(t *testing.T) {
	tok, rest, err := NextToken("1.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != TokenConstant || tok.Constant != FloatConstant(1.0) {
		t.Errorf("got %v, want Constant(Float32(1))", tok)
	}
	if rest != "" {
		t.Errorf("remainder = %q, want empty", rest)
	}
}

func TestNextTokenFloatForms(t *testing.T) {
	tests := []struct {
		input string
		want  float32
	}{
		{"2.", 2},
		{"0.5", 0.5},
		{"1e3", 1000},
		{"1.5E-1", 0.15},
	}
	for _, tt := range tests {
		tok, _, err := NextToken(tt.input)
		if err != nil {
			t.Errorf("NextToken(%q) error: %v", tt.input, err)
			continue
		}
		if tok.Constant != FloatConstant(tt.want) {
			t.Errorf("NextToken(%q) = %v, want Float32(%v)", tt.input, tok, tt.want)
		}
	}
}

func TestNextTokenLeadingDotIsOperator(t *testing.T) {
	tok, rest, err := NextToken(".5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != TokenOperator || tok.Operator != "." {
		t.Errorf("got %v, want Operator(\".\")", tok)
	}
	if rest != "5" {
		t.Errorf("remainder = %q, want %q", rest, "5")
	}
}

func TestNextTokenErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"@", ErrLexicalMismatch},
		{"#version", ErrLexicalMismatch},
		{"12abc", ErrLexicalMismatch},
		{"99999999999", ErrLexicalMismatch},
		{"", ErrIncompleteInput},
		{"   // only a comment", ErrIncompleteInput},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, rest, err := NextToken(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("NextToken(%q) error = %v, want *ParseError", tt.input, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", perr.Kind, tt.kind)
			}
			if rest != tt.input {
				t.Errorf("failed NextToken consumed input: remainder %q", rest)
			}
		})
	}
}

func TestIdentifierRoundTrip(t *testing.T) {
	names := []string{"a", "_", "_x", "abc123", "Obj", "u_modelViewMatrix", "A_B_C_9", "in", "vec3"}
	for _, n := range names {
		got, rest, err := ParseIdentifier(n)
		if err != nil {
			t.Errorf("ParseIdentifier(%q) error: %v", n, err)
			continue
		}
		if got != n || rest != "" {
			t.Errorf("ParseIdentifier(%q) = %q, %q; want %q, \"\"", n, got, rest, n)
		}
		if !IsIdentifier(n) {
			t.Errorf("IsIdentifier(%q) = false", n)
		}
	}
}

func TestIdentifierRejectsLeadingDigit(t *testing.T) {
	if _, _, err := ParseIdentifier("1abc"); err == nil {
		t.Error("expected error for identifier starting with a digit")
	}
	if IsIdentifier("9") {
		t.Error("IsIdentifier(\"9\") = true")
	}
	if IsIdentifier("a-b") {
		t.Error("IsIdentifier(\"a-b\") = true")
	}
}

func TestNumericLiteralErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		input string
		want  string
	}{
		{"token integer", nextTokenErr, "99999999999", `integer literal "99999999999" out of range`},
		{"token float", nextTokenErr, "1e99", `float literal "1e99" out of range`},
		{"token suffix", nextTokenErr, "12abc", `invalid suffix on integer literal "12"`},
		{"initializer integer", declarationErr, "float x = 99999999999;", `integer literal "99999999999" out of range`},
		{"initializer float", declarationErr, "float x = 2.0 * 1e99;", `float literal "1e99" out of range`},
		{"array size", declarationErr, "float x[4294967296];", `integer literal "4294967296" out of range`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if !perr.IsLexical() || perr.Rule != "constant" {
				t.Errorf("error = %s in %s, want LexicalMismatch in constant", perr.Kind, perr.Rule)
			}
			if !strings.Contains(perr.Message, tt.want) {
				t.Errorf("message = %q, want %q", perr.Message, tt.want)
			}
		})
	}
}

func nextTokenErr(s string) error {
	_, _, err := NextToken(s)
	return err
}

func declarationErr(s string) error {
	_, _, err := ParseDeclaration(s)
	return err
}

func TestLexerTokenize(t *testing.T) {
	source := `/* header */
uniform mat4 u_mvp; // transform
attribute vec3 a_pos;`

	tokens, err := NewLexer(source).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}

	want := []TokenKind{
		TokenIdentifier, TokenBasicType, TokenIdentifier, TokenOperator,
		TokenIdentifier, TokenBasicType, TokenIdentifier, TokenOperator,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.Kind != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], tok.Kind)
		}
	}

	if tokens[0].Lexeme != "uniform" || tokens[0].Span.Start.Line != 2 || tokens[0].Span.Start.Column != 1 {
		t.Errorf("token 0 = %q at %d:%d, want \"uniform\" at 2:1",
			tokens[0].Lexeme, tokens[0].Span.Start.Line, tokens[0].Span.Start.Column)
	}
	if tokens[5].Span.Start.Line != 3 || tokens[5].Span.Start.Column != 11 {
		t.Errorf("token 5 at %d:%d, want 3:11", tokens[5].Span.Start.Line, tokens[5].Span.Start.Column)
	}
}

func TestLexerTokenizeError(t *testing.T) {
	_, err := NewLexer("float x = 1;\nfloat y = $;").Tokenize()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Span.Start.Line != 2 || perr.Span.Start.Column != 11 {
		t.Errorf("error at %d:%d, want 2:11", perr.Span.Start.Line, perr.Span.Start.Column)
	}
}
