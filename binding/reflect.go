package binding

import (
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/uniglsl/glsl"
)

// vertexInput describes how a basic type is fed from a vertex buffer.
type vertexInput struct {
	format  gputypes.VertexFormat
	columns uint32
}

var vertexInputs = map[glsl.BasicType]vertexInput{
	glsl.Float: {gputypes.VertexFormatFloat32, 1},
	glsl.Vec2:  {gputypes.VertexFormatFloat32x2, 1},
	glsl.Vec3:  {gputypes.VertexFormatFloat32x3, 1},
	glsl.Vec4:  {gputypes.VertexFormatFloat32x4, 1},
	glsl.Int:   {gputypes.VertexFormatSint32, 1},
	glsl.Ivec2: {gputypes.VertexFormatSint32x2, 1},
	glsl.Ivec3: {gputypes.VertexFormatSint32x3, 1},
	glsl.Ivec4: {gputypes.VertexFormatSint32x4, 1},
	glsl.Mat2:  {gputypes.VertexFormatFloat32x2, 2},
	glsl.Mat3:  {gputypes.VertexFormatFloat32x3, 3},
	glsl.Mat4:  {gputypes.VertexFormatFloat32x4, 4},
}

func formatSize(f gputypes.VertexFormat) uint64 {
	switch f {
	case gputypes.VertexFormatFloat32, gputypes.VertexFormatSint32:
		return 4
	case gputypes.VertexFormatFloat32x2, gputypes.VertexFormatSint32x2:
		return 8
	case gputypes.VertexFormatFloat32x3, gputypes.VertexFormatSint32x3:
		return 12
	case gputypes.VertexFormatFloat32x4, gputypes.VertexFormatSint32x4:
		return 16
	default:
		return 0
	}
}

// Reflect collects the attributes, uniforms and varyings of one stage.
// Const and unqualified globals, precision statements and anonymous
// declarations do not bind and are ignored.
func Reflect(stage Stage, decls []glsl.Declaration) (*StageInfo, error) {
	r := &reflector{
		info: &StageInfo{Stage: stage},
		seen: make(map[string]bool),
	}
	for _, decl := range decls {
		switch d := decl.(type) {
		case *glsl.FunctionPrototype:
			r.info.Functions = append(r.info.Functions, d)
		case *glsl.DeclarationList:
			for _, sd := range d.Declarations {
				if err := r.declare(sd); err != nil {
					return nil, err
				}
			}
		}
	}
	return r.info, nil
}

type reflector struct {
	info         *StageInfo
	seen         map[string]bool
	nextLocation uint32
	nextBinding  uint32
}

func (r *reflector) fail(kind ErrorKind, name, msg string) error {
	return &ReflectError{Kind: kind, Stage: r.info.Stage, Name: name, Message: msg}
}

func (r *reflector) declare(sd glsl.SingleDeclaration) error {
	if sd.Name == "" {
		return nil
	}
	if sd.Type.Invariant {
		return r.markInvariant(sd.Name)
	}

	fts := sd.Type.Type
	switch fts.Qualifier {
	case glsl.QualifierAttribute, glsl.QualifierUniform, glsl.QualifierVarying, glsl.QualifierInvariantVarying:
	default:
		return nil
	}
	if r.seen[sd.Name] {
		return r.fail(ErrRedeclared, sd.Name, "declared more than once")
	}
	r.seen[sd.Name] = true

	switch fts.Qualifier {
	case glsl.QualifierAttribute:
		return r.attribute(sd)
	case glsl.QualifierUniform:
		return r.uniform(sd)
	default:
		return r.varying(sd)
	}
}

func (r *reflector) attribute(sd glsl.SingleDeclaration) error {
	if r.info.Stage != StageVertex {
		return r.fail(ErrWrongStage, sd.Name, "attributes are only allowed in vertex shaders")
	}
	if sd.ArraySize != nil {
		return r.fail(ErrUnsupportedType, sd.Name, "attribute arrays are not allowed")
	}
	bt, ok := sd.Type.Type.Spec.BasicType()
	in, known := vertexInputs[bt]
	if !ok || !known {
		return r.fail(ErrUnsupportedType, sd.Name, "attribute type must be float, int, a vector or a matrix")
	}

	r.info.Attributes = append(r.info.Attributes, Attribute{
		Name:     sd.Name,
		Type:     bt,
		Location: r.nextLocation,
		Format:   in.format,
		Offset:   r.info.Stride,
		Columns:  in.columns,
	})
	r.nextLocation += in.columns
	r.info.Stride += formatSize(in.format) * uint64(in.columns)
	return nil
}

func (r *reflector) uniform(sd glsl.SingleDeclaration) error {
	u := Uniform{
		Name:       sd.Name,
		Type:       sd.Type.Type.Spec,
		ArraySize:  sd.ArraySize,
		Binding:    r.nextBinding,
		Visibility: r.info.Stage.ShaderStage(),
	}
	if u.IsSampler() && sd.ArraySize != nil {
		return r.fail(ErrUnsupportedType, sd.Name, "sampler arrays are not supported")
	}
	if bt, ok := u.Type.BasicType(); ok && bt == glsl.Void {
		return r.fail(ErrUnsupportedType, sd.Name, "uniform of type void")
	}
	u.Size = std140Size(u.Type, sd.ArraySize)

	r.info.Uniforms = append(r.info.Uniforms, u)
	r.nextBinding += u.slots()
	return nil
}

func (r *reflector) varying(sd glsl.SingleDeclaration) error {
	bt, ok := sd.Type.Type.Spec.BasicType()
	if !ok || !isFloatType(bt) {
		return r.fail(ErrUnsupportedType, sd.Name, "varying type must be float, a float vector or a matrix")
	}
	r.info.Varyings = append(r.info.Varyings, Varying{
		Name:      sd.Name,
		Type:      sd.Type.Type.Spec,
		ArraySize: sd.ArraySize,
		Invariant: sd.Type.Type.Qualifier == glsl.QualifierInvariantVarying,
	})
	return nil
}

// markInvariant handles "invariant name;", which redeclares an earlier
// varying or a built-in output.
func (r *reflector) markInvariant(name string) error {
	for i := range r.info.Varyings {
		if r.info.Varyings[i].Name == name {
			r.info.Varyings[i].Invariant = true
			return nil
		}
	}
	if strings.HasPrefix(name, "gl_") {
		return nil
	}
	return r.fail(ErrMissingVarying, name, "invariant applied to an undeclared varying")
}

func isFloatType(bt glsl.BasicType) bool {
	switch bt {
	case glsl.Float, glsl.Vec2, glsl.Vec3, glsl.Vec4, glsl.Mat2, glsl.Mat3, glsl.Mat4:
		return true
	}
	return false
}

// std140Size returns the buffer size of a uniform under std140 layout, or
// 0 if it cannot be computed.
func std140Size(spec glsl.TypeSpecifier, arraySize glsl.Expression) uint64 {
	bt, ok := spec.BasicType()
	if !ok {
		return 0
	}

	var size, columns uint64
	switch bt {
	case glsl.Bool, glsl.Int, glsl.Float:
		size = 4
	case glsl.Vec2, glsl.Bvec2, glsl.Ivec2:
		size = 8
	case glsl.Vec3, glsl.Bvec3, glsl.Ivec3:
		size = 12
	case glsl.Vec4, glsl.Bvec4, glsl.Ivec4:
		size = 16
	case glsl.Mat2:
		columns = 2
	case glsl.Mat3:
		columns = 3
	case glsl.Mat4:
		columns = 4
	default:
		return 0
	}
	if columns > 0 {
		size = columns * 16
	}

	if arraySize == nil {
		return size
	}
	n, ok := ArrayLength(arraySize)
	if !ok {
		return 0
	}
	return uint64(n) * roundUp(size, 16)
}

// ArrayLength returns the element count of an array size expression that is
// an integer literal.
func ArrayLength(e glsl.Expression) (uint32, bool) {
	c, ok := e.(*glsl.ConstantExpr)
	if !ok || c.Value.Kind != glsl.ConstInteger {
		return 0, false
	}
	return c.Value.Int, true
}

func roundUp(n, align uint64) uint64 {
	return (n + align - 1) / align * align
}
