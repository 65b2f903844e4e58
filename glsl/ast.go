// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// PrecisionQualifier constrains the numeric precision of a type.
// The zero value means no precision was written.
type PrecisionQualifier uint8

const (
	PrecisionNone PrecisionQualifier = iota
	PrecisionHigh
	PrecisionMedium
	PrecisionLow
)

func (p PrecisionQualifier) String() string {
	switch p {
	case PrecisionHigh:
		return "highp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionLow:
		return "lowp"
	default:
		return ""
	}
}

// TypeQualifier is a storage qualifier. The zero value means none.
type TypeQualifier uint8

const (
	QualifierNone TypeQualifier = iota
	QualifierConst
	QualifierAttribute
	QualifierVarying
	QualifierInvariantVarying // only from "invariant varying"
	QualifierUniform
)

func (q TypeQualifier) String() string {
	switch q {
	case QualifierConst:
		return "const"
	case QualifierAttribute:
		return "attribute"
	case QualifierVarying:
		return "varying"
	case QualifierInvariantVarying:
		return "invariant varying"
	case QualifierUniform:
		return "uniform"
	default:
		return ""
	}
}

// ParamQualifier is the direction of a function parameter. The zero value
// means none.
type ParamQualifier uint8

const (
	ParamNone ParamQualifier = iota
	ParamIn
	ParamOut
	ParamInOut
)

func (q ParamQualifier) String() string {
	switch q {
	case ParamIn:
		return "in"
	case ParamOut:
		return "out"
	case ParamInOut:
		return "inout"
	default:
		return ""
	}
}

// ActualType is the type named by a TypeSpecifier: a Keyword or a TypeName.
type ActualType interface {
	actualType()
	String() string
}

// Keyword is a basic type written with its keyword.
type Keyword struct {
	Type BasicType
}

func (Keyword) actualType()      {}
func (k Keyword) String() string { return k.Type.String() }

// TypeName is an identifier in type position. It is not resolved here:
// struct and user types are lexically plain identifiers.
type TypeName struct {
	Name string
}

func (TypeName) actualType()      {}
func (t TypeName) String() string { return t.Name }

// TypeSpecifier is an optional precision plus the actual type.
type TypeSpecifier struct {
	Precision PrecisionQualifier
	Type      ActualType
}

// BasicType returns the keyword type, if the specifier names one.
func (t TypeSpecifier) BasicType() (BasicType, bool) {
	if k, ok := t.Type.(Keyword); ok {
		return k.Type, true
	}
	return 0, false
}

// String renders the specifier in source form, e.g. "highp vec3".
func (t TypeSpecifier) String() string {
	name := "?"
	if t.Type != nil {
		name = t.Type.String()
	}
	if t.Precision == PrecisionNone {
		return name
	}
	return t.Precision.String() + " " + name
}

// FullyTypeSpecifier is an optional storage qualifier plus a TypeSpecifier.
type FullyTypeSpecifier struct {
	Qualifier TypeQualifier
	Spec      TypeSpecifier
}

func (t FullyTypeSpecifier) String() string {
	if t.Qualifier == QualifierNone {
		return t.Spec.String()
	}
	return t.Qualifier.String() + " " + t.Spec.String()
}

// ParamDeclaration is one parameter of a function prototype. Name and
// ArraySize are independently optional.
type ParamDeclaration struct {
	TypeQualifier  TypeQualifier
	ParamQualifier ParamQualifier
	Spec           TypeSpecifier
	Name           string
	ArraySize      Expression
}

// FunctionPrototype is a function signature without a body.
type FunctionPrototype struct {
	ReturnType FullyTypeSpecifier
	Name       string
	Params     []ParamDeclaration
}

// VariantTypeSpecifier is the type of a declarator: a full type, or the
// bare invariant re-declaration form.
type VariantTypeSpecifier struct {
	Invariant bool
	Type      FullyTypeSpecifier // zero when Invariant
}

// NormalType wraps a full type specifier.
func NormalType(t FullyTypeSpecifier) VariantTypeSpecifier {
	return VariantTypeSpecifier{Type: t}
}

// InvariantType is the type of "invariant name".
func InvariantType() VariantTypeSpecifier {
	return VariantTypeSpecifier{Invariant: true}
}

// SingleDeclaration is one declarator. At most one of ArraySize and
// Initializer is set.
type SingleDeclaration struct {
	Type        VariantTypeSpecifier
	Name        string
	ArraySize   Expression
	Initializer Expression
}

// Declaration is a top-level declaration: *FunctionPrototype,
// *DeclarationList or *PrecisionDeclaration.
type Declaration interface {
	declNode()
}

func (*FunctionPrototype) declNode() {}

// DeclarationList is a comma-separated list of declarators sharing the type
// of the first one.
type DeclarationList struct {
	Declarations []SingleDeclaration
}

func (*DeclarationList) declNode() {}

// PrecisionDeclaration is a default precision statement:
// "precision mediump float".
type PrecisionDeclaration struct {
	Precision PrecisionQualifier
	Type      BasicType
}

func (*PrecisionDeclaration) declNode() {}
