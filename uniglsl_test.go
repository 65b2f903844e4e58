package uniglsl

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/uniglsl/glsl"
)

// TestParseDeclarations tests the strict facade on a declaration-only source.
func TestParseDeclarations(t *testing.T) {
	decls, err := Parse("uniform mat4 u_mvp;\nattribute vec3 a_pos;\nvec4 f(void);")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(decls))
	}
}

func TestParseWrapsParseError(t *testing.T) {
	_, err := Parse("uniform vec3 ;")
	if err == nil || !strings.HasPrefix(err.Error(), "parse error: ") {
		t.Fatalf("expected wrapped parse error, got %v", err)
	}
	var perr *glsl.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *glsl.ParseError in chain, got %T", err)
	}
	if !perr.IsSyntax() {
		t.Errorf("kind = %s, want SyntaxError", perr.Kind)
	}
}

func TestTokenize(t *testing.T) {
	toks, err := Tokenize("vec3 v = 1.0;")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	kinds := []glsl.TokenKind{
		glsl.TokenBasicType, glsl.TokenIdentifier, glsl.TokenOperator, glsl.TokenConstant, glsl.TokenOperator,
	}
	if len(toks) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d", len(kinds), len(toks))
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %s, want %s", i, toks[i].Kind, k)
		}
	}

	if _, err := Tokenize("float @"); err == nil {
		t.Error("expected tokenization error")
	}
}

func TestLoggerDefaultsToSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := Scan("float a;\nvoid main() {}\n"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "skipped function body") || !strings.Contains(out, "function=main") {
		t.Errorf("expected debug output about main, got:\n%s", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
