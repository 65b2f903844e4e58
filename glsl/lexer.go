// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// operators is the single-character operator set of the classifier.
const operators = ".+-/*%<>[](){}^|&~=!:;,?"

// punctuators lists every operator spelling the expression grammar knows,
// longest first so that scanning is greedy.
var punctuators = []string{
	"<<=", ">>=",
	"++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "^^",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	".", "+", "-", "/", "*", "%", "<", ">", "[", "]", "(", ")", "{", "}",
	"^", "|", "&", "~", "=", "!", ":", ";", ",", "?",
}

// NextToken classifies the next lexeme of input and returns it with the
// unconsumed remainder. Whitespace around the token is skipped.
//
// Alternatives are tried in a fixed priority: operator, constant, basic
// type keyword, identifier.
func NextToken(input string) (Token, string, error) {
	lines := newLineIndex(input)
	tok, next, err := nextToken(newCursor(input), lines)
	if err != nil {
		return Token{}, input, err.resolve(lines)
	}
	return tok, next.rest(), nil
}

func nextToken(c cursor, lines *lineIndex) (Token, cursor, *ParseError) {
	start := c.skipSpace()
	if start.atEnd() {
		return Token{}, c, start.fail(ErrIncompleteInput, "token", "expected token, found end of input")
	}

	tok := Token{}
	var end cursor
	if op, next, ok := lexOperator(start); ok {
		tok.Kind, tok.Operator, end = TokenOperator, op, next
	} else if k, next, err := lexConstant(start); err == nil {
		tok.Kind, tok.Constant, end = TokenConstant, k, next
	} else if startsNumber(start) {
		// A numeric lexeme was recognized but is malformed or out of
		// range; nothing else can start with a digit.
		return Token{}, c, err
	} else if t, next, ok := lexBasicType(start); ok {
		tok.Kind, tok.Type, end = TokenBasicType, t, next
	} else if id, next, ok := lexIdentifier(start); ok {
		tok.Kind, tok.Ident, end = TokenIdentifier, id, next
	} else {
		return Token{}, c, start.fail(ErrLexicalMismatch, "token", "unexpected character %q", start.peek())
	}

	tok.Lexeme = start.src[start.off:end.off]
	tok.Span = lines.span(start, end)
	return tok, end.skipSpace(), nil
}

func lexOperator(c cursor) (string, cursor, bool) {
	if c.atEnd() || strings.IndexByte(operators, c.src[c.off]) < 0 {
		return "", c, false
	}
	return c.src[c.off : c.off+1], c.advance(1), true
}

// lexConstant tries a float literal first so that "1.0" is never read as
// the integer 1 followed by ".0".
func lexConstant(c cursor) (Constant, cursor, *ParseError) {
	if n := scanFloat(c.rest()); n > 0 {
		text := c.src[c.off : c.off+n]
		end := c.advance(n)
		if isIdentPart(end.peek()) {
			return Constant{}, c, end.fail(ErrLexicalMismatch, "constant", "invalid suffix on float literal %q", text)
		}
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Constant{}, c, c.fail(ErrLexicalMismatch, "constant", "float literal %q out of range", text)
		}
		return FloatConstant(float32(f)), end, nil
	}

	if n, base := scanInteger(c.rest()); n > 0 {
		text := c.src[c.off : c.off+n]
		end := c.advance(n)
		if isIdentPart(end.peek()) {
			return Constant{}, c, end.fail(ErrLexicalMismatch, "constant", "invalid suffix on integer literal %q", text)
		}
		digits := text
		if base == 16 {
			digits = text[2:]
		}
		u, err := strconv.ParseUint(digits, base, 32)
		if err != nil {
			return Constant{}, c, c.fail(ErrLexicalMismatch, "constant", "integer literal %q out of range", text)
		}
		return IntConstant(uint32(u)), end, nil
	}

	word, end := scanWord(c)
	switch word {
	case "true":
		return BoolConstant(true), end, nil
	case "false":
		return BoolConstant(false), end, nil
	}
	return Constant{}, c, c.fail(ErrLexicalMismatch, "constant", "expected constant, found %s", c.describe())
}

// startsNumber reports whether a numeric lexeme begins at c. Once one
// does, any failure of lexConstant is the final word on it.
func startsNumber(c cursor) bool {
	return isDigit(c.peek()) || scanFloat(c.rest()) > 0
}

// scanFloat returns the length of the float literal at the start of s, or 0.
// A float needs a decimal point or an exponent; plain digit runs are
// integers.
func scanFloat(s string) int {
	i := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	intDigits := i
	isFloat := false

	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(rune(s[j])) {
			j++
		}
		if intDigits == 0 && j == i+1 {
			return 0
		}
		i = j
		isFloat = true
	} else if intDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
			isFloat = true
		}
	}

	if !isFloat {
		return 0
	}
	return i
}

// scanInteger returns the length and base of the integer literal at the
// start of s.
func scanInteger(s string) (int, int) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && isHexDigit(rune(s[2])) {
		i := 2
		for i < len(s) && isHexDigit(rune(s[i])) {
			i++
		}
		return i, 16
	}
	i := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	return i, 10
}

func lexBasicType(c cursor) (BasicType, cursor, bool) {
	word, end := scanWord(c)
	if t, ok := basicTypes[word]; ok {
		return t, end, true
	}
	return 0, c, false
}

// lexIdentifier reads an alphanumeric/underscore run that does not start
// with a digit.
func lexIdentifier(c cursor) (string, cursor, bool) {
	word, end := scanWord(c)
	if word == "" || isDigit(c.peek()) {
		return "", c, false
	}
	return word, end, true
}

// scanWord reads the longest run of identifier characters at c.
func scanWord(c cursor) (string, cursor) {
	end := c
	for !end.atEnd() {
		r, size := utf8.DecodeRuneInString(end.rest())
		if !isIdentPart(r) {
			break
		}
		end.off += size
	}
	return c.src[c.off:end.off], end
}

// scanPunct reads the longest punctuator at c.
func scanPunct(c cursor) (string, cursor) {
	rest := c.rest()
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p) {
			return p, c.advance(len(p))
		}
	}
	return "", c
}

// Lexer tokenizes a whole source with the classifier.
type Lexer struct {
	source string
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	estTokens := len(source) / 4
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source: source,
		tokens: make([]Token, 0, estTokens),
	}
}

// Tokenize returns all tokens from the source.
func (l *Lexer) Tokenize() ([]Token, error) {
	lines := newLineIndex(l.source)
	c := newCursor(l.source).skipSpace()
	for !c.atEnd() {
		tok, next, err := nextToken(c, lines)
		if err != nil {
			return nil, err.resolve(lines)
		}
		l.tokens = append(l.tokens, tok)
		c = next
	}
	return l.tokens, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentPart(r rune) bool {
	return r == '_' || isDigit(r) || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsIdentifier reports whether s is a lexically valid identifier.
func IsIdentifier(s string) bool {
	id, end, ok := lexIdentifier(newCursor(s))
	return ok && id == s && end.atEnd()
}
