// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// reservedWords contains words that can never name a variable, parameter,
// function or user type. Besides the dialect's own keywords this covers the
// GLSL type keywords and future reserved words, so that shaders written for
// newer GLSL versions fail early instead of parsing as type names.
var reservedWords = map[string]struct{}{
	// Basic types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},

	// Vector types
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"dvec2": {}, "dvec3": {}, "dvec4": {},

	// Matrix types
	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},

	// Sampler types
	"sampler1D": {}, "sampler2D": {}, "sampler3D": {}, "samplerCube": {},
	"sampler1DShadow": {}, "sampler2DShadow": {}, "samplerCubeShadow": {},
	"sampler2DArray": {}, "sampler2DArrayShadow": {},
	"isampler2D": {}, "isampler3D": {}, "isamplerCube": {},
	"usampler2D": {}, "usampler3D": {}, "usamplerCube": {},

	// Storage and parameter qualifiers
	"attribute": {}, "const": {}, "uniform": {}, "varying": {},
	"buffer": {}, "shared": {}, "layout": {}, "centroid": {}, "flat": {}, "smooth": {},
	"in": {}, "out": {}, "inout": {},
	"invariant": {}, "precise": {},

	// Control flow
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {}, "switch": {}, "case": {}, "default": {},
	"if": {}, "else": {}, "discard": {}, "return": {},

	// Other keywords
	"struct": {}, "true": {}, "false": {},

	// Precision qualifiers
	"lowp": {}, "mediump": {}, "highp": {}, "precision": {},

	// Reserved for future use
	"asm": {}, "class": {}, "union": {}, "enum": {}, "typedef": {}, "template": {}, "this": {},
	"goto":   {},
	"inline": {}, "noinline": {}, "volatile": {}, "public": {}, "static": {}, "extern": {}, "external": {}, "interface": {},
	"long": {}, "short": {}, "half": {}, "fixed": {}, "unsigned": {}, "superp": {},
	"input": {}, "output": {},
	"hvec2": {}, "hvec3": {}, "hvec4": {}, "fvec2": {}, "fvec3": {}, "fvec4": {},
	"sampler3DRect": {}, "sampler2DRect": {}, "sampler2DRectShadow": {},
	"sizeof": {}, "cast": {},
	"namespace": {}, "using": {},
}

// IsReserved reports whether name is a reserved word.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}
