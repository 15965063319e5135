package analyze

import (
	"go/token"
	"go/types"
	"reflect"

	"codec-generator/internal/common"
)

// RuntimePkgPath is the import path of the runtime library whose Future type
// marks asynchronously delivered fields.
const RuntimePkgPath = "codec-generator/rawconv"

// FutureTypeName is the name of the asynchronous wrapper type in RuntimePkgPath.
const FutureTypeName = "Future"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "codec-generator/store"
	Name    string // e.g., "Customer"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindAlias              // named type wrapping a non-struct type
	TypeKindExternal           // external/opaque type (e.g., time.Time)
	TypeKindSet                // map[T]struct{}
	TypeKindMap                // any other map
	TypeKindFuture             // *rawconv.Future[T]
	TypeKindInterface          // interface types, including any
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindSet:
		return "set"
	case TypeKindMap:
		return "map"
	case TypeKindFuture:
		return "future"
	case TypeKindInterface:
		return "interface"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For aliases, the underlying type
	ElemType   *TypeInfo   // For pointers, slices, arrays, sets, maps and futures, the element type
	KeyType    *TypeInfo   // For maps, the key type
	Fields     []FieldInfo // For structs, the fields in declaration order
	Getters    []FieldInfo // For named structs, exported zero-argument single-result methods
	GoType     types.Type  // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Getter returns the getter method with the given name, if any.
func (t *TypeInfo) Getter(name string) (FieldInfo, bool) {
	for _, g := range t.Getters {
		if g.Name == name {
			return g, true
		}
	}

	return FieldInfo{}, false
}

// FieldInfo describes a struct field or a computed getter.
type FieldInfo struct {
	Name     string            // Go field or method name
	Exported bool              // Whether the field is exported
	Static   bool              // Class-level member; never set for Go struct fields
	Getter   bool              // Computed, read-only member backed by a method
	Type     *TypeInfo         // Field type (result type for getters)
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct (-1 for getters)
	Pos      token.Position    // Declaration position
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// HasFunc reports whether the package declares a package-level function name.
func (g *TypeGraph) HasFunc(pkgPath, name string) bool {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return false
	}

	_, ok = pkg.Funcs[name]

	return ok
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string              // Import path
	Name  string              // Package name
	Dir   string              // Directory holding the package sources
	Types []TypeID            // Named types defined in this package
	Funcs map[string]struct{} // Package-level function names
}
