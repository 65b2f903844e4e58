// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// singleDeclaration tries, in order:
//
//	invariant IDENT
//	full_type IDENT = initializer
//	full_type [IDENT] [ [size] ]
//
// The last form allows an anonymous declarator, as in struct members.
func singleDeclaration(c cursor) (SingleDeclaration, cursor, *ParseError) {
	var failure *ParseError

	if next, ok := matchKeyword(c, "invariant"); ok {
		name, end, err := identifier(next, "single_declaration")
		if err == nil {
			return SingleDeclaration{Type: InvariantType(), Name: name}, end, nil
		}
		failure = err
	}

	fts, afterType, err := fullTypeSpecifier(c)
	if err != nil {
		err.Rule = "single_declaration"
		return SingleDeclaration{}, c, furthest(failure, err)
	}
	typ := NormalType(fts)

	if name, afterName, err := identifier(afterType, "single_declaration"); err == nil {
		if afterEq, ok := matchPunct(afterName, "="); ok {
			value, end, err := assignmentExpression(afterEq)
			if err != nil {
				return SingleDeclaration{}, c, furthest(failure, err)
			}
			return SingleDeclaration{Type: typ, Name: name, Initializer: value}, end, nil
		}
	}

	sd := SingleDeclaration{Type: typ}
	next := afterType
	if name, after, err := identifier(next, "single_declaration"); err == nil {
		sd.Name, next = name, after
	}
	if size, after, err := arraySpecifier(next); err == nil {
		sd.ArraySize, next = size, after
	} else if err.Offset() > next.skipSpace().off {
		return SingleDeclaration{}, c, furthest(failure, err)
	}
	return sd, next, nil
}

// declarationContinuation parses one ", IDENT ..." declarator that reuses
// the head's type. It never parses a type of its own.
func declarationContinuation(c cursor, typ VariantTypeSpecifier) (SingleDeclaration, cursor, *ParseError) {
	next, ok := matchPunct(c, ",")
	if !ok {
		return SingleDeclaration{}, c, c.fail(ErrSyntax, "declaration_list", "expected ',', found %s", c.describe())
	}
	name, next, err := identifier(next, "declaration_list")
	if err != nil {
		return SingleDeclaration{}, c, err
	}
	sd := SingleDeclaration{Type: typ, Name: name}

	if size, end, err := arraySpecifier(next); err == nil {
		sd.ArraySize = size
		return sd, end, nil
	} else if err.Offset() > next.skipSpace().off {
		return SingleDeclaration{}, c, err
	}

	if afterEq, ok := matchPunct(next, "="); ok {
		value, end, err := assignmentExpression(afterEq)
		if err != nil {
			return SingleDeclaration{}, c, err
		}
		sd.Initializer = value
		return sd, end, nil
	}

	return sd, next, nil
}

// declarationList parses a head declarator followed by any number of
// comma-separated continuations sharing the head's type.
func declarationList(c cursor) (*DeclarationList, cursor, *ParseError) {
	head, next, err := singleDeclaration(c)
	if err != nil {
		return nil, c, err
	}
	list := &DeclarationList{Declarations: []SingleDeclaration{head}}
	for {
		sd, after, err := declarationContinuation(next, head.Type)
		if err != nil {
			// A comma that was consumed but not followed by a valid
			// declarator is an error; anything else ends the list.
			if err.Offset() > next.skipSpace().off {
				return nil, c, err
			}
			return list, next, nil
		}
		list.Declarations = append(list.Declarations, sd)
		next = after
	}
}

// precisionStatement parses "precision qualifier basic_type".
func precisionStatement(c cursor) (*PrecisionDeclaration, cursor, *ParseError) {
	next, ok := matchKeyword(c, "precision")
	if !ok {
		return nil, c, c.fail(ErrSyntax, "precision_statement", "expected 'precision', found %s", c.describe())
	}
	p, next, err := precisionQualifier(next)
	if err != nil {
		err.Rule = "precision_statement"
		return nil, c, err
	}
	at := next.skipSpace()
	t, end, ok := lexBasicType(at)
	if !ok {
		return nil, c, at.fail(ErrSyntax, "precision_statement", "expected basic type, found %s", at.describe())
	}
	return &PrecisionDeclaration{Precision: p, Type: t}, end.skipSpace(), nil
}

// declaration is the top-level ordered choice among a prototype, a
// declarator list and a precision statement, followed by ";".
func declaration(c cursor) (Declaration, cursor, *ParseError) {
	var failure *ParseError

	if proto, next, err := functionPrototype(c); err == nil {
		end, err := expectPunct(next, "declaration", ";")
		if err == nil {
			return proto, end, nil
		}
		failure = furthest(failure, err)
	} else {
		failure = furthest(failure, err)
	}

	if list, next, err := declarationList(c); err == nil {
		if head := list.Declarations[0]; !head.Type.Invariant && head.Name == "" && head.ArraySize == nil {
			failure = furthest(failure, next.fail(ErrSyntax, "declaration", "expected declarator name, found %s", next.describe()))
		} else if end, err := expectPunct(next, "declaration", ";"); err == nil {
			return list, end, nil
		} else {
			failure = furthest(failure, err)
		}
	} else {
		failure = furthest(failure, err)
	}

	if prec, next, err := precisionStatement(c); err == nil {
		end, err := expectPunct(next, "declaration", ";")
		if err == nil {
			return prec, end, nil
		}
		failure = furthest(failure, err)
	} else {
		failure = furthest(failure, err)
	}

	return nil, c, failure
}

// ParseSingleDeclaration parses one declarator with its type.
func ParseSingleDeclaration(input string) (SingleDeclaration, string, error) {
	return run(input, singleDeclaration)
}

// ParseDeclarationList parses a declarator list without the terminating ";".
func ParseDeclarationList(input string) (*DeclarationList, string, error) {
	return run(input, declarationList)
}

// ParseDeclaration parses one top-level declaration including its ";" and
// returns the unconsumed remainder, so callers can loop over a whole file.
// On failure no partial declaration is returned.
func ParseDeclaration(input string) (Declaration, string, error) {
	return run(input, declaration)
}
