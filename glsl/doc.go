// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl provides a syntactic front end for a GLSL ES 1.0 style
// shader dialect.
//
// # Components
//
//   - Lexical classifier: NextToken and Lexer classify operators,
//     constants, basic type keywords and identifiers
//   - Type grammar: precision and storage qualifiers, type specifiers
//   - Prototype grammar: parameter declarations and function prototypes
//   - Declarator lists: "T a, b[2], c = expr;" sharing one type
//   - Declarations: prototype, declarator list or precision statement,
//     terminated by ";"
//   - Expressions: array sizes and initializers
//
// # Usage
//
// Parse declarations one at a time; each call returns the unconsumed
// remainder:
//
//	decl, rest, err := glsl.ParseDeclaration("uniform mat4 u_mvp; attribute vec3 a_pos;")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// rest == "attribute vec3 a_pos;"
//
// Or loop over a source with a Parser:
//
//	p := glsl.NewParser(source)
//	decls, err := p.ParseAll()
//
// # Backtracking
//
// Every rule either succeeds, returning its node and a new position, or
// fails and leaves the position untouched. Alternatives are tried in a
// fixed order and the first success wins. When all alternatives fail the
// error that reached furthest into the input is reported, not simply the
// error of the last alternative tried. Only when two failures stop at the
// same offset does the later alternative win. For "float x(;" the
// prototype's complaint at ";" is reported rather than the precision
// statement's complaint at "float".
//
// Failures carry a byte offset while alternatives are being tried; line
// and column are filled in once, when an error is returned to the caller.
//
// Type names that are not keywords are kept as TypeName values and are
// not resolved. Preprocessor directives are not handled.
package glsl
