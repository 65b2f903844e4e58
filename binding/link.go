package binding

import (
	"reflect"

	"github.com/gogpu/gputypes"
)

// Program is the linked interface of a vertex and a fragment stage.
type Program struct {
	Vertex   *StageInfo
	Fragment *StageInfo

	// Attributes are the vertex stage inputs.
	Attributes []Attribute

	// Uniforms are merged across stages in first-seen order and rebound
	// sequentially. Visibility is the union of the stages declaring them.
	Uniforms []Uniform

	// Varyings are the fragment stage inputs, each matched to a vertex
	// stage output.
	Varyings []Varying

	Layout gputypes.VertexBufferLayout
}

// Link checks that every fragment varying is written by the vertex stage
// with the same type and merges the uniforms of both stages.
func Link(vs, fs *StageInfo) (*Program, error) {
	if vs.Stage != StageVertex {
		return nil, &LinkError{Kind: ErrWrongStage, Name: vs.Stage.String(), Message: "first stage must be a vertex shader"}
	}
	if fs.Stage != StageFragment {
		return nil, &LinkError{Kind: ErrWrongStage, Name: fs.Stage.String(), Message: "second stage must be a fragment shader"}
	}

	varyings, err := linkVaryings(vs.Varyings, fs.Varyings)
	if err != nil {
		return nil, err
	}
	uniforms, err := mergeUniforms(vs.Uniforms, fs.Uniforms)
	if err != nil {
		return nil, err
	}

	return &Program{
		Vertex:     vs,
		Fragment:   fs,
		Attributes: vs.Attributes,
		Uniforms:   uniforms,
		Varyings:   varyings,
		Layout:     vs.VertexBufferLayout(),
	}, nil
}

func linkVaryings(outputs, inputs []Varying) ([]Varying, error) {
	byName := make(map[string]Varying, len(outputs))
	for _, v := range outputs {
		byName[v.Name] = v
	}

	linked := make([]Varying, 0, len(inputs))
	for _, in := range inputs {
		out, ok := byName[in.Name]
		if !ok {
			return nil, &LinkError{Kind: ErrMissingVarying, Name: in.Name, Message: "read by the fragment shader but not declared in the vertex shader"}
		}
		// Precision may differ between stages; the type may not.
		if !sameType(in, out) {
			return nil, &LinkError{Kind: ErrTypeMismatch, Name: in.Name, Message: "declared with different types in the vertex and fragment shaders"}
		}
		in.Invariant = in.Invariant || out.Invariant
		linked = append(linked, in)
	}
	return linked, nil
}

func sameType(a, b Varying) bool {
	if a.Type.Type != b.Type.Type {
		return false
	}
	if (a.ArraySize == nil) != (b.ArraySize == nil) {
		return false
	}
	if a.ArraySize == nil {
		return true
	}
	na, okA := ArrayLength(a.ArraySize)
	nb, okB := ArrayLength(b.ArraySize)
	if okA && okB {
		return na == nb
	}
	return reflect.DeepEqual(a.ArraySize, b.ArraySize)
}

func mergeUniforms(stages ...[]Uniform) ([]Uniform, error) {
	var merged []Uniform
	index := make(map[string]int)
	for _, uniforms := range stages {
		for _, u := range uniforms {
			if i, ok := index[u.Name]; ok {
				if merged[i].Type.Type != u.Type.Type || merged[i].Size != u.Size {
					return nil, &LinkError{Kind: ErrRedeclared, Name: u.Name, Message: "uniform declared with different types in the vertex and fragment shaders"}
				}
				merged[i].Visibility |= u.Visibility
				continue
			}
			index[u.Name] = len(merged)
			merged = append(merged, u)
		}
	}

	var next uint32
	for i := range merged {
		merged[i].Binding = next
		next += merged[i].slots()
	}
	return merged, nil
}

// BindGroupLayoutEntries returns the entries of every uniform in binding
// order.
func (p *Program) BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return uniformEntries(p.Uniforms)
}

// Attribute returns the attribute with the given name.
func (p *Program) Attribute(name string) (Attribute, bool) {
	for _, a := range p.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Uniform returns the uniform with the given name.
func (p *Program) Uniform(name string) (Uniform, bool) {
	for _, u := range p.Uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return Uniform{}, false
}
