package binding

import "fmt"

// ErrorKind categorizes reflection and link failures.
type ErrorKind uint8

const (
	// ErrUnsupportedType indicates a type that cannot be bound to its
	// storage class (e.g. a bool attribute).
	ErrUnsupportedType ErrorKind = iota

	// ErrWrongStage indicates a storage class the stage does not accept,
	// such as an attribute in a fragment shader.
	ErrWrongStage

	// ErrRedeclared indicates a global declared twice in one stage, or a
	// uniform declared with different types in two stages.
	ErrRedeclared

	// ErrMissingVarying indicates a fragment varying the vertex stage does
	// not write.
	ErrMissingVarying

	// ErrTypeMismatch indicates a varying declared with different types in
	// the two stages.
	ErrTypeMismatch
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedType:
		return "UnsupportedType"
	case ErrWrongStage:
		return "WrongStage"
	case ErrRedeclared:
		return "Redeclared"
	case ErrMissingVarying:
		return "MissingVarying"
	case ErrTypeMismatch:
		return "TypeMismatch"
	default:
		return "Unknown"
	}
}

// ReflectError reports a declaration of one stage that cannot be bound.
type ReflectError struct {
	Kind    ErrorKind
	Stage   Stage
	Name    string
	Message string
}

// Error implements the error interface.
func (e *ReflectError) Error() string {
	return fmt.Sprintf("%s shader: %s %q: %s", e.Stage, e.Kind, e.Name, e.Message)
}

// LinkError reports an interface mismatch between the vertex and fragment
// stages.
type LinkError struct {
	Kind    ErrorKind
	Name    string
	Message string
}

// Error implements the error interface.
func (e *LinkError) Error() string {
	return fmt.Sprintf("link %s %q: %s", e.Kind, e.Name, e.Message)
}
