// Package uniglsl provides a Pure Go front end for a GLSL-like shader dialect.
//
// uniglsl parses the top-level declarations of a shader (uniforms, attributes,
// varyings, precision statements and function prototypes) into a typed AST
// and reflects them into GPU binding metadata:
//   - glsl: lexical classifier, declaration grammar and AST
//   - binding: vertex layouts and bind group entries via gputypes
//
// Example usage:
//
//	source := `
//	uniform mat4 u_mvp;
//	attribute vec3 a_pos;
//	void main() { gl_Position = u_mvp * vec4(a_pos, 1.0); }
//	`
//	decls, err := uniglsl.Scan(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stage, err := binding.Reflect(binding.StageVertex, decls)
//
// Parse is the strict form: every top-level item must be a declaration.
// Scan additionally skips preprocessor lines and function bodies.
package uniglsl

import (
	"fmt"

	"github.com/gogpu/uniglsl/glsl"
)

// Parse parses source consisting only of declarations.
func Parse(source string) ([]glsl.Declaration, error) {
	decls, err := glsl.NewParser(source).ParseAll()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return decls, nil
}

// Tokenize classifies every lexeme of source.
func Tokenize(source string) ([]glsl.Token, error) {
	tokens, err := glsl.NewLexer(source).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenization error: %w", err)
	}
	return tokens, nil
}
