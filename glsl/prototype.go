// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// paramQualifier tries inout before in so that "in" never matches the
// start of "inout". Keywords match whole words only.
func paramQualifier(c cursor) (ParamQualifier, cursor, *ParseError) {
	if next, ok := matchKeyword(c, "inout"); ok {
		return ParamInOut, next, nil
	}
	if next, ok := matchKeyword(c, "in"); ok {
		return ParamIn, next, nil
	}
	if next, ok := matchKeyword(c, "out"); ok {
		return ParamOut, next, nil
	}
	return ParamNone, c, c.fail(ErrSyntax, "param_qualifier", "expected in, out or inout, found %s", c.describe())
}

// arraySpecifier parses "[ expr ]".
func arraySpecifier(c cursor) (Expression, cursor, *ParseError) {
	next, ok := matchPunct(c, "[")
	if !ok {
		return nil, c, c.fail(ErrSyntax, "array_specifier", "expected '[', found %s", c.describe())
	}
	size, next, err := conditionalExpression(next)
	if err != nil {
		return nil, c, err
	}
	next, err = expectPunct(next, "array_specifier", "]")
	if err != nil {
		return nil, c, err
	}
	return size, next, nil
}

// paramDeclaration parses one parameter. Name and array size are
// independently optional so that abstract declarations like "vec3" or
// "float[4]" are accepted in prototypes.
func paramDeclaration(c cursor) (ParamDeclaration, cursor, *ParseError) {
	pd := ParamDeclaration{}
	next := c
	if q, after, err := typeQualifier(next); err == nil {
		pd.TypeQualifier, next = q, after
	}
	if q, after, err := paramQualifier(next); err == nil {
		pd.ParamQualifier, next = q, after
	}

	spec, next, err := typeSpecifier(next)
	if err != nil {
		err.Rule = "param_declaration"
		return ParamDeclaration{}, c, err
	}
	pd.Spec = spec

	if name, after, err := identifier(next, "param_declaration"); err == nil {
		pd.Name, next = name, after
	}
	if size, after, err := arraySpecifier(next); err == nil {
		pd.ArraySize, next = size, after
	} else if err.Offset() > next.skipSpace().off {
		// "[" was present but the size or "]" was malformed.
		return ParamDeclaration{}, c, err
	}
	return pd, next, nil
}

// functionPrototype parses "type name ( params )". An empty list and the
// single keyword "void" both mean no parameters.
func functionPrototype(c cursor) (*FunctionPrototype, cursor, *ParseError) {
	ret, next, err := fullTypeSpecifier(c)
	if err != nil {
		err.Rule = "function_prototype"
		return nil, c, err
	}
	name, next, err := identifier(next, "function_prototype")
	if err != nil {
		return nil, c, err
	}
	next, err = expectPunct(next, "function_prototype", "(")
	if err != nil {
		return nil, c, err
	}

	proto := &FunctionPrototype{ReturnType: ret, Name: name, Params: []ParamDeclaration{}}
	if end, ok := matchPunct(next, ")"); ok {
		return proto, end, nil
	}
	if after, ok := matchKeyword(next, "void"); ok {
		if end, ok := matchPunct(after, ")"); ok {
			return proto, end, nil
		}
	}

	for {
		param, after, err := paramDeclaration(next)
		if err != nil {
			return nil, c, err
		}
		proto.Params = append(proto.Params, param)
		if after, ok := matchPunct(after, ","); ok {
			next = after
			continue
		}
		end, err := expectPunct(after, "function_prototype", ")")
		if err != nil {
			return nil, c, err
		}
		return proto, end, nil
	}
}

// ParseParamQualifier parses in, out or inout.
func ParseParamQualifier(input string) (ParamQualifier, string, error) {
	return run(input, paramQualifier)
}

// ParseParamDeclaration parses one function parameter.
func ParseParamDeclaration(input string) (ParamDeclaration, string, error) {
	return run(input, paramDeclaration)
}

// ParseFunctionPrototype parses a function signature without the
// terminating ";".
func ParseFunctionPrototype(input string) (*FunctionPrototype, string, error) {
	return run(input, functionPrototype)
}
