package plan

import (
	"codec-generator/internal/analyze"
	"codec-generator/internal/common"
)

// Direction is the conversion direction of a generated function.
type Direction int

const (
	// Decode builds a class instance from provider raw data.
	Decode Direction = iota
	// Encode builds provider raw data from a class instance.
	Encode
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	default:
		return common.UnknownStr
	}
}

// Marker returns the direction marker used in generated function names.
func (d Direction) Marker() string {
	if d == Encode {
		return "To"
	}

	return "From"
}

// ShapeKind enumerates the classified structure of a field type.
type ShapeKind int

const (
	ShapeScalar ShapeKind = iota
	ShapeCollection
	ShapeAsync
	ShapeNested
)

// String returns a human-readable shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeScalar:
		return "scalar"
	case ShapeCollection:
		return "collection"
	case ShapeAsync:
		return "async"
	case ShapeNested:
		return "nested"
	default:
		return common.UnknownStr
	}
}

// ContainerKind distinguishes collection containers.
type ContainerKind int

const (
	ContainerSequence ContainerKind = iota // []T
	ContainerSet                           // map[T]struct{}
)

// Shape is the classified structure of a field type. Type text is
// qualified relative to the package generated code is written into.
type Shape struct {
	Kind ShapeKind
	// Type is the Go type text without the leading pointer, e.g. "string",
	// "[]OrderItem", "map[string]struct{}" or "Customer". For ShapeAsync it
	// is the text of the delivered type.
	Type string
	// Pointer is set when the field is declared as *Type.
	Pointer bool
	// Container is the collection kind for ShapeCollection.
	Container ContainerKind
	// Elem is the element shape for ShapeCollection.
	Elem *Shape
	// Inner is the delivered shape for ShapeAsync.
	Inner *Shape
	// Class is the nested class name for ShapeNested and Qual the package
	// selector prefix needed to reach its companions ("" or "pkg.").
	Class string
	Qual  string
}

// GoType returns the full Go type text of a value with this shape.
func (s *Shape) GoType() string {
	switch {
	case s.Kind == ShapeAsync:
		return "*rawconv.Future[" + s.Inner.GoType() + "]"
	case s.Pointer:
		return "*" + s.Type
	default:
		return s.Type
	}
}

// Deref returns a copy of the shape without the pointer flag.
func (s *Shape) Deref() *Shape {
	out := *s
	out.Pointer = false

	return &out
}

// FieldConfig is the normalized per-field configuration.
type FieldConfig struct {
	Ignore   bool
	Key      string
	Nullable bool
	// Default is Go expression text used when the raw value is absent.
	Default *string
	// DecodeOverride and EncodeOverride are override templates.
	DecodeOverride *string
	EncodeOverride *string
}

// Override returns the override template for the direction, or nil.
func (c FieldConfig) Override(dir Direction) *string {
	if dir == Encode {
		return c.EncodeOverride
	}

	return c.DecodeOverride
}

// Context is the read-only input shared by all fields of one generated
// function.
type Context struct {
	Class    string
	Provider string
	// ProviderType and Repository are the Go type texts of the handles.
	ProviderType string
	Repository   string
	Direction    Direction
	Naming       NamingPolicy
}

// FuncName returns the name of the function being generated.
func (c Context) FuncName() string {
	return c.Naming.FuncName(c.Class, c.Direction, c.Provider)
}

// Introspector serves the ordered field list of a class.
type Introspector interface {
	ClassFields(id analyze.TypeID) ([]analyze.FieldInfo, error)
}

// Capabilities answers whether a type has companion conversion functions
// for a provider.
type Capabilities interface {
	HasCompanion(id analyze.TypeID, provider string) bool
}
