// Package binding reflects parsed shader declarations into GPU binding
// metadata: vertex attribute layouts and bind group layout entries.
//
// Attributes are assigned shader locations in declaration order and packed
// tightly into a single interleaved vertex buffer. Uniforms are assigned
// bindings in first-seen order across the vertex and fragment stages.
// A sampler uniform occupies two bindings, a texture followed by its sampler.
package binding

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/uniglsl/glsl"
)

// Stage identifies the shader stage a declaration list belongs to.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// ShaderStage returns the gputypes visibility bit of the stage.
func (s Stage) ShaderStage() gputypes.ShaderStage {
	if s == StageFragment {
		return gputypes.ShaderStageFragment
	}
	return gputypes.ShaderStageVertex
}

// Attribute is a per-vertex input.
type Attribute struct {
	Name     string
	Type     glsl.BasicType
	Location uint32
	Format   gputypes.VertexFormat
	Offset   uint64

	// Columns is the number of consecutive locations the attribute
	// occupies: 1 for scalars and vectors, N for matN.
	Columns uint32
}

// Uniform is a global bound through a bind group.
type Uniform struct {
	Name      string
	Type      glsl.TypeSpecifier
	ArraySize glsl.Expression
	Binding   uint32

	// Size is the std140 size in bytes, 0 when unknown (user types and
	// non-constant array sizes).
	Size uint64

	Visibility gputypes.ShaderStage
}

// IsSampler reports whether the uniform is a texture sampler.
func (u Uniform) IsSampler() bool {
	bt, ok := u.Type.BasicType()
	return ok && (bt == glsl.Sampler2D || bt == glsl.SamplerCube)
}

// Entries returns the bind group layout entries of the uniform. Samplers
// yield a texture entry and a sampler entry on the following binding.
func (u Uniform) Entries() []gputypes.BindGroupLayoutEntry {
	if !u.IsSampler() {
		return []gputypes.BindGroupLayoutEntry{{
			Binding:    u.Binding,
			Visibility: u.Visibility,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: u.Size,
			},
		}}
	}

	dim := gputypes.TextureViewDimension2D
	if bt, _ := u.Type.BasicType(); bt == glsl.SamplerCube {
		dim = gputypes.TextureViewDimensionCube
	}
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    u.Binding,
			Visibility: u.Visibility,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: dim,
			},
		},
		{
			Binding:    u.Binding + 1,
			Visibility: u.Visibility,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// slots is the number of bindings the uniform occupies.
func (u Uniform) slots() uint32 {
	if u.IsSampler() {
		return 2
	}
	return 1
}

// Varying is an interpolated value passed from the vertex to the fragment
// stage.
type Varying struct {
	Name      string
	Type      glsl.TypeSpecifier
	ArraySize glsl.Expression
	Invariant bool
}

// StageInfo is the reflected interface of one shader stage.
type StageInfo struct {
	Stage      Stage
	Attributes []Attribute
	Uniforms   []Uniform
	Varyings   []Varying
	Functions  []*glsl.FunctionPrototype

	// Stride is the packed size of one vertex.
	Stride uint64
}

// VertexBufferLayout returns the interleaved layout of the stage's
// attributes. Matrix attributes expand to one vertex attribute per column.
func (s *StageInfo) VertexBufferLayout() gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 0, len(s.Attributes))
	for _, a := range s.Attributes {
		colSize := formatSize(a.Format)
		for col := uint32(0); col < a.Columns; col++ {
			attrs = append(attrs, gputypes.VertexAttribute{
				Format:         a.Format,
				Offset:         a.Offset + uint64(col)*colSize,
				ShaderLocation: a.Location + col,
			})
		}
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: s.Stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// BindGroupLayoutEntries returns the entries of every uniform in binding
// order.
func (s *StageInfo) BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return uniformEntries(s.Uniforms)
}

func uniformEntries(uniforms []Uniform) []gputypes.BindGroupLayoutEntry {
	entries := make([]gputypes.BindGroupLayoutEntry, 0, len(uniforms))
	for _, u := range uniforms {
		entries = append(entries, u.Entries()...)
	}
	return entries
}
