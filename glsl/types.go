// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// matchKeyword consumes kw if it is the whole next word.
func matchKeyword(c cursor, kw string) (cursor, bool) {
	w, end := scanWord(c.skipSpace())
	if w != kw {
		return c, false
	}
	return end.skipSpace(), true
}

// identifier reads a name in declarator, parameter or function position.
// Reserved words are rejected here rather than in the classifier, which
// keeps identifier lexing total over [A-Za-z_][A-Za-z0-9_]*.
func identifier(c cursor, rule string) (string, cursor, *ParseError) {
	at := c.skipSpace()
	name, end, ok := lexIdentifier(at)
	if !ok {
		return "", c, at.fail(ErrSyntax, rule, "expected identifier, found %s", at.describe())
	}
	if IsReserved(name) {
		return "", c, at.fail(ErrSyntax, rule, "expected identifier, found reserved word %q", name)
	}
	return name, end.skipSpace(), nil
}

var precisionKeywords = []struct {
	word string
	p    PrecisionQualifier
}{
	{"highp", PrecisionHigh},
	{"mediump", PrecisionMedium},
	{"lowp", PrecisionLow},
}

func precisionQualifier(c cursor) (PrecisionQualifier, cursor, *ParseError) {
	for _, k := range precisionKeywords {
		if next, ok := matchKeyword(c, k.word); ok {
			return k.p, next, nil
		}
	}
	return PrecisionNone, c, c.fail(ErrSyntax, "precision_qualifier", "expected highp, mediump or lowp, found %s", c.describe())
}

// typeQualifier tries "invariant varying" before "varying" so the
// two-keyword form is never shadowed.
func typeQualifier(c cursor) (TypeQualifier, cursor, *ParseError) {
	if next, ok := matchKeyword(c, "const"); ok {
		return QualifierConst, next, nil
	}
	if next, ok := matchKeyword(c, "attribute"); ok {
		return QualifierAttribute, next, nil
	}
	if next, ok := matchKeyword(c, "invariant"); ok {
		if next, ok := matchKeyword(next, "varying"); ok {
			return QualifierInvariantVarying, next, nil
		}
	}
	if next, ok := matchKeyword(c, "varying"); ok {
		return QualifierVarying, next, nil
	}
	if next, ok := matchKeyword(c, "uniform"); ok {
		return QualifierUniform, next, nil
	}
	return QualifierNone, c, c.fail(ErrSyntax, "type_qualifier", "expected type qualifier, found %s", c.describe())
}

// typeSpecifier parses an optional precision and then a basic type keyword,
// falling back to an identifier taken as an unresolved type name.
func typeSpecifier(c cursor) (TypeSpecifier, cursor, *ParseError) {
	spec := TypeSpecifier{}
	next := c
	if p, after, err := precisionQualifier(c); err == nil {
		spec.Precision, next = p, after
	}

	at := next.skipSpace()
	if t, end, ok := lexBasicType(at); ok {
		spec.Type = Keyword{Type: t}
		return spec, end.skipSpace(), nil
	}

	name, end, err := identifier(at, "type_specifier")
	if err != nil {
		err.Message = "expected type, found " + at.describe()
		return TypeSpecifier{}, c, err
	}
	spec.Type = TypeName{Name: name}
	return spec, end, nil
}

func fullTypeSpecifier(c cursor) (FullyTypeSpecifier, cursor, *ParseError) {
	fts := FullyTypeSpecifier{}
	next := c
	if q, after, err := typeQualifier(c); err == nil {
		fts.Qualifier, next = q, after
	}
	spec, end, err := typeSpecifier(next)
	if err != nil {
		return FullyTypeSpecifier{}, c, err
	}
	fts.Spec = spec
	return fts, end, nil
}

// ParseTypeSpecifier parses "[precision] type".
func ParseTypeSpecifier(input string) (TypeSpecifier, string, error) {
	return run(input, typeSpecifier)
}

// ParseFullTypeSpecifier parses "[qualifier] [precision] type".
func ParseFullTypeSpecifier(input string) (FullyTypeSpecifier, string, error) {
	return run(input, fullTypeSpecifier)
}

// ParseTypeQualifier parses a storage qualifier.
func ParseTypeQualifier(input string) (TypeQualifier, string, error) {
	return run(input, typeQualifier)
}

// ParsePrecisionQualifier parses highp, mediump or lowp.
func ParsePrecisionQualifier(input string) (PrecisionQualifier, string, error) {
	return run(input, precisionQualifier)
}

// ParseIdentifier parses one identifier. Unlike names in declarations,
// reserved words are accepted here.
func ParseIdentifier(input string) (string, string, error) {
	c := newCursor(input)
	at := c.skipSpace()
	name, end, ok := lexIdentifier(at)
	if !ok {
		err := at.fail(ErrLexicalMismatch, "identifier", "expected identifier, found %s", at.describe())
		return "", input, err.resolve(newLineIndex(input))
	}
	return name, end.skipSpace().rest(), nil
}

// run adapts an internal rule to the exported (value, remainder, error)
// shape. A nil *ParseError must not leak into the error interface.
func run[T any](input string, rule func(cursor) (T, cursor, *ParseError)) (T, string, error) {
	v, next, err := rule(newCursor(input))
	if err != nil {
		var zero T
		return zero, input, err.resolve(newLineIndex(input))
	}
	return v, next.rest(), nil
}
