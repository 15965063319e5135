package analyze

import (
	"strings"
)

// TypePath builds a readable path string for a member of a class.
// Examples:
//   - "Order" for a class
//   - "Order.Items" for a field
//   - "Order.Items[]" for the elements of a collection field
//   - "Order.Score<>" for the value delivered by an async field
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Elem appends a collection element indicator "[]" to the path.
func (p *TypePath) Elem() *TypePath {
	return p.suffix("[]")
}

// Await appends an async indicator "<>" to the path.
func (p *TypePath) Await() *TypePath {
	return p.suffix("<>")
}

func (p *TypePath) suffix(s string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{s}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s
	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeString returns a short human-readable representation of a TypeInfo
// for use in diagnostics. Named types are rendered without package path.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		if t.IsNamed() {
			return t.ID.Name
		}

	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name
		}
		return "struct{...}"

	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)

	case TypeKindSet:
		return "set[" + TypeString(t.ElemType) + "]"

	case TypeKindMap:
		return "map[" + TypeString(t.KeyType) + "]" + TypeString(t.ElemType)

	case TypeKindFuture:
		return "Future[" + TypeString(t.ElemType) + "]"

	case TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}
		return TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.String()
		}
	}

	if t.GoType != nil {
		return t.GoType.String()
	}

	return t.Kind.String()
}
