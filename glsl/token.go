// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strconv"
)

// TokenKind represents the lexical class of a token.
type TokenKind uint8

const (
	TokenOperator TokenKind = iota
	TokenConstant
	TokenBasicType
	TokenIdentifier
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenOperator:
		return "Operator"
	case TokenConstant:
		return "Constant"
	case TokenBasicType:
		return "BasicType"
	case TokenIdentifier:
		return "Identifier"
	default:
		return "Unknown"
	}
}

// Token is one classified lexeme. Only the field matching Kind is meaningful.
type Token struct {
	Kind     TokenKind
	Operator string
	Constant Constant
	Type     BasicType
	Ident    string

	// Lexeme is the exact source slice that produced the token.
	Lexeme string
	Span   Span
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenOperator:
		return fmt.Sprintf("Operator(%q)", t.Operator)
	case TokenConstant:
		return fmt.Sprintf("Constant(%s)", t.Constant)
	case TokenBasicType:
		return fmt.Sprintf("BasicType(%s)", t.Type)
	case TokenIdentifier:
		return fmt.Sprintf("Identifier(%q)", t.Ident)
	default:
		return "Token(?)"
	}
}

// ConstantKind discriminates the Constant union.
type ConstantKind uint8

const (
	ConstBool ConstantKind = iota
	ConstInteger
	ConstFloat
)

// Constant is a literal value: a bool, an unsigned 32-bit integer or a
// 32-bit float.
type Constant struct {
	Kind  ConstantKind
	Bool  bool
	Int   uint32
	Float float32
}

// BoolConstant returns a boolean constant.
func BoolConstant(b bool) Constant { return Constant{Kind: ConstBool, Bool: b} }

// IntConstant returns an integer constant.
func IntConstant(u uint32) Constant { return Constant{Kind: ConstInteger, Int: u} }

// FloatConstant returns a float constant.
func FloatConstant(f float32) Constant { return Constant{Kind: ConstFloat, Float: f} }

func (c Constant) String() string {
	switch c.Kind {
	case ConstBool:
		return "Bool(" + strconv.FormatBool(c.Bool) + ")"
	case ConstInteger:
		return "Integer(" + strconv.FormatUint(uint64(c.Int), 10) + ")"
	case ConstFloat:
		return "Float32(" + strconv.FormatFloat(float64(c.Float), 'g', -1, 32) + ")"
	default:
		return "Constant(?)"
	}
}

// BasicType is a keyword type of the dialect.
type BasicType uint8

const (
	Void BasicType = iota
	Bool
	Int
	Float
	Vec2
	Vec3
	Vec4
	Bvec2
	Bvec3
	Bvec4
	Ivec2
	Ivec3
	Ivec4
	Mat2
	Mat3
	Mat4
	Sampler2D
	SamplerCube
)

var basicTypeNames = [...]string{
	Void:        "void",
	Bool:        "bool",
	Int:         "int",
	Float:       "float",
	Vec2:        "vec2",
	Vec3:        "vec3",
	Vec4:        "vec4",
	Bvec2:       "bvec2",
	Bvec3:       "bvec3",
	Bvec4:       "bvec4",
	Ivec2:       "ivec2",
	Ivec3:       "ivec3",
	Ivec4:       "ivec4",
	Mat2:        "mat2",
	Mat3:        "mat3",
	Mat4:        "mat4",
	Sampler2D:   "sampler2D",
	SamplerCube: "samplerCube",
}

// basicTypes maps keywords to basic types. sampler3D is accepted as an
// alias of samplerCube for sources written against older engine shaders.
var basicTypes = map[string]BasicType{
	"void":        Void,
	"bool":        Bool,
	"int":         Int,
	"float":       Float,
	"vec2":        Vec2,
	"vec3":        Vec3,
	"vec4":        Vec4,
	"bvec2":       Bvec2,
	"bvec3":       Bvec3,
	"bvec4":       Bvec4,
	"ivec2":       Ivec2,
	"ivec3":       Ivec3,
	"ivec4":       Ivec4,
	"mat2":        Mat2,
	"mat3":        Mat3,
	"mat4":        Mat4,
	"sampler2D":   Sampler2D,
	"samplerCube": SamplerCube,
	"sampler3D":   SamplerCube,
}

// String returns the keyword spelling of the type.
func (t BasicType) String() string {
	if int(t) < len(basicTypeNames) {
		return basicTypeNames[t]
	}
	return "BasicType(" + strconv.Itoa(int(t)) + ")"
}

// LookupBasicType returns the basic type spelled by keyword.
func LookupBasicType(keyword string) (BasicType, bool) {
	t, ok := basicTypes[keyword]
	return t, ok
}

// Span represents a source code location span.
type Span struct {
	Start Position
	End   Position
}

// Position represents a position in source code. Line and Column are
// 1-based; Offset is the byte offset from the start of the source.
type Position struct {
	Line   int
	Column int
	Offset int
}
