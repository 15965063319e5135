package plan

import (
	"go/types"

	"codec-generator/internal/analyze"
	"codec-generator/internal/common"
	"codec-generator/internal/diagnostic"
)

// Classify returns the shape of a field type for the given provider. Type
// text is rendered through q. Only one level of asynchronous wrapping is
// supported: either around the whole value or around each collection
// element, never both.
func Classify(t *analyze.TypeInfo, caps Capabilities, provider string, q *analyze.Qualifier) (*Shape, error) {
	c := classifier{caps: caps, provider: provider, q: q}
	return c.classify(t)
}

type classifier struct {
	caps     Capabilities
	provider string
	q        *analyze.Qualifier
}

func (c classifier) classify(t *analyze.TypeInfo) (*Shape, error) {
	if t == nil {
		return nil, diagnostic.Unsupported("missing type information")
	}

	if t.Kind != analyze.TypeKindFuture {
		return c.value(t)
	}

	inner, err := c.value(t.ElemType)
	if err != nil {
		return nil, err
	}

	if inner.Kind == ShapeCollection && inner.Elem.Kind == ShapeAsync {
		return nil, diagnostic.Unsupported(
			"%s wraps a collection of asynchronous values; wrap either the collection or its elements",
			analyze.TypeString(t))
	}

	return &Shape{Kind: ShapeAsync, Type: inner.GoType(), Inner: inner}, nil
}

// value classifies a type that is not itself asynchronous at the top level.
func (c classifier) value(t *analyze.TypeInfo) (*Shape, error) {
	if t == nil {
		return nil, diagnostic.Unsupported("missing type information")
	}

	switch t.Kind {
	case analyze.TypeKindFuture:
		return nil, diagnostic.Unsupported("%s nests asynchronous wrappers", analyze.TypeString(t))

	case analyze.TypeKindPointer:
		if t.ElemType == nil || t.ElemType.Kind == analyze.TypeKindPointer || t.ElemType.Kind == analyze.TypeKindFuture {
			return nil, diagnostic.Unsupported("%s: only a single pointer level is supported", analyze.TypeString(t))
		}

		s, err := c.value(t.ElemType)
		if err != nil {
			return nil, err
		}

		s.Pointer = true

		return s, nil

	case analyze.TypeKindSlice:
		elem, err := c.classify(t.ElemType)
		if err != nil {
			return nil, err
		}

		return &Shape{Kind: ShapeCollection, Container: ContainerSequence, Type: "[]" + elem.GoType(), Elem: elem}, nil

	case analyze.TypeKindSet:
		if t.ElemType != nil && t.ElemType.Kind == analyze.TypeKindFuture {
			return nil, diagnostic.Unsupported("%s: set elements cannot be asynchronous", analyze.TypeString(t))
		}

		elem, err := c.value(t.ElemType)
		if err != nil {
			return nil, err
		}

		return &Shape{Kind: ShapeCollection, Container: ContainerSet, Type: "map[" + elem.GoType() + "]struct{}", Elem: elem}, nil

	case analyze.TypeKindStruct:
		if t.IsNamed() && c.caps != nil && c.caps.HasCompanion(t.ID, c.provider) {
			return &Shape{Kind: ShapeNested, Type: c.typeText(t), Class: t.ID.Name, Qual: c.qual(t)}, nil
		}
	}

	return &Shape{Kind: ShapeScalar, Type: c.typeText(t)}, nil
}

func (c classifier) typeText(t *analyze.TypeInfo) string {
	if t.GoType != nil {
		return c.q.TypeString(t.GoType)
	}

	if t.IsNamed() && t.ID.PkgPath != "" {
		return c.q.Ref(t.ID.PkgPath, common.PkgAlias(t.ID.PkgPath), t.ID.Name)
	}

	return analyze.TypeString(t)
}

// qual returns the package selector prefix for references to t's package.
func (c classifier) qual(t *analyze.TypeInfo) string {
	pkgName := common.PkgAlias(t.ID.PkgPath)
	if named, ok := t.GoType.(*types.Named); ok && named.Obj().Pkg() != nil {
		pkgName = named.Obj().Pkg().Name()
	}

	return c.q.Ref(t.ID.PkgPath, pkgName, "")
}
