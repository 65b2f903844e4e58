package uniglsl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/uniglsl/glsl"
)

// ErrUnterminatedBody is returned when a function definition has no
// matching closing brace.
var ErrUnterminatedBody = errors.New("unterminated function body")

// ScanOptions configures how a whole shader file is scanned.
type ScanOptions struct {
	// SkipDirectives blanks out preprocessor lines (#version, #define, ...)
	// before parsing. Line and column numbers are preserved.
	SkipDirectives bool

	// SkipBodies records the prototype of each function definition and skips
	// its body. When false, a definition is a syntax error.
	SkipBodies bool
}

// DefaultScanOptions returns options suitable for real shader files.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		SkipDirectives: true,
		SkipBodies:     true,
	}
}

// Scan returns the top-level declarations of a shader file using
// DefaultScanOptions.
func Scan(source string) ([]glsl.Declaration, error) {
	return ScanWithOptions(source, DefaultScanOptions())
}

// ScanWithOptions returns the top-level declarations of a shader file.
//
// Everything that is not a directive or a function body goes through the
// declaration grammar unchanged, so the result only contains what the
// grammar produced.
func ScanWithOptions(source string, opts ScanOptions) ([]glsl.Declaration, error) {
	if opts.SkipDirectives {
		source = blankDirectives(source)
	}

	log := Logger()
	p := glsl.NewParser(source)
	var decls []glsl.Declaration
	for {
		decl, err := p.Next()
		if err == io.EOF {
			log.Debug("uniglsl: scan complete", "declarations", len(decls))
			return decls, nil
		}
		if err != nil {
			if !opts.SkipBodies {
				return decls, fmt.Errorf("declaration %d: %w", len(decls)+1, err)
			}
			proto, n, ok, bodyErr := functionDefinition(p.Remaining())
			if bodyErr != nil {
				pos := p.Position()
				return decls, fmt.Errorf("%d:%d: function %s: %w", pos.Line, pos.Column, proto.Name, bodyErr)
			}
			if !ok {
				return decls, fmt.Errorf("declaration %d: %w", len(decls)+1, err)
			}
			log.Debug("uniglsl: skipped function body", "function", proto.Name, "bytes", n)
			p.Skip(n)
			decl = proto
		}
		decls = append(decls, decl)
	}
}

// functionDefinition matches a prototype followed by a brace-delimited body
// and returns the prototype with the length of the whole definition.
func functionDefinition(src string) (*glsl.FunctionPrototype, int, bool, error) {
	proto, rest, err := glsl.ParseFunctionPrototype(src)
	if err != nil || !strings.HasPrefix(rest, "{") {
		return nil, 0, false, nil
	}
	n := matchBraces(rest)
	if n < 0 {
		return proto, 0, false, ErrUnterminatedBody
	}
	return proto, len(src) - len(rest) + n, true, nil
}

// matchBraces returns the length of the balanced {...} block at the start of
// s, or -1 if it is not closed. Braces inside comments are ignored.
func matchBraces(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "//"):
			j := strings.IndexByte(s[i:], '\n')
			if j < 0 {
				return -1
			}
			i += j
		case strings.HasPrefix(s[i:], "/*"):
			j := strings.Index(s[i+2:], "*/")
			if j < 0 {
				return -1
			}
			i += j + 3
		case s[i] == '{':
			depth++
		case s[i] == '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// blankDirectives replaces every preprocessor line with spaces. A trailing
// backslash continues the directive onto the next line.
func blankDirectives(source string) string {
	if !strings.Contains(source, "#") {
		return source
	}
	b := []byte(source)
	inDirective := false
	lineStart := 0
	for lineStart < len(b) {
		lineEnd := lineStart
		for lineEnd < len(b) && b[lineEnd] != '\n' {
			lineEnd++
		}
		line := strings.TrimLeft(string(b[lineStart:lineEnd]), " \t")
		if inDirective || strings.HasPrefix(line, "#") {
			inDirective = strings.HasSuffix(strings.TrimRight(line, " \t\r"), "\\")
			for i := lineStart; i < lineEnd; i++ {
				if b[i] != '\r' {
					b[i] = ' '
				}
			}
		}
		lineStart = lineEnd + 1
	}
	return string(b)
}
