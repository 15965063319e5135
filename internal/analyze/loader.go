package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	fset      *token.FileSet
	dir       string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// WithDir sets the working directory used to resolve package patterns.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir
	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "codec-generator/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register every package first so that named types can be told apart
	// from external ones regardless of processing order.
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path:  pkg.PkgPath,
			Name:  pkg.Name,
			Dir:   packageDir(pkg),
			Funcs: make(map[string]struct{}),
		}
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}

	return filepath.Dir(pkg.GoFiles[0])
}

// processPackage extracts types and function names from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return errors.New("no type information")
	}

	a.fset = pkg.Fset
	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		switch obj := scope.Lookup(name).(type) {
		case *types.Func:
			pkgInfo.Funcs[name] = struct{}{}

		case *types.TypeName:
			// Only process exported, non-generic types
			if !obj.Exported() || isGeneric(obj.Type()) {
				continue
			}

			typeID := TypeID{PkgPath: pkg.PkgPath, Name: name}

			typeInfo := a.analyzeType(obj.Type())
			typeInfo.ID = typeID

			a.graph.Types[typeID] = typeInfo
			pkgInfo.Types = append(pkgInfo.Types, typeID)
		}
	}

	return nil
}

func isGeneric(t types.Type) bool {
	named, ok := t.(*types.Named)
	return ok && named.TypeParams().Len() > 0
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Alias:
		resolved := a.analyzeType(types.Unalias(tt))
		*info = *resolved
		info.GoType = t

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		if elem, ok := futureElem(tt); ok {
			info.Kind = TypeKindFuture
			info.ElemType = a.analyzeType(elem)

			break
		}

		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		if isEmptyStruct(tt.Elem()) {
			info.Kind = TypeKindSet
			info.ElemType = a.analyzeType(tt.Key())

			break
		}

		info.Kind = TypeKindMap
		info.KeyType = a.analyzeType(tt.Key())
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Channels, functions, etc. are marked as unknown (unsupported)
		info.Kind = TypeKindUnknown
	}

	return info
}

// futureElem returns T for *rawconv.Future[T].
func futureElem(p *types.Pointer) (types.Type, bool) {
	named, ok := p.Elem().(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return nil, false
	}

	if named.Obj().Pkg().Path() != RuntimePkgPath || named.Obj().Name() != FutureTypeName {
		return nil, false
	}

	if named.TypeArgs().Len() != 1 {
		return nil, false
	}

	return named.TypeArgs().At(0), true
}

func isEmptyStruct(t types.Type) bool {
	st, ok := t.Underlying().(*types.Struct)
	return ok && st.NumFields() == 0
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() != nil {
		info.ID = TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
	} else {
		// Predeclared named types such as error.
		info.ID = TypeID{Name: obj.Name()}
	}

	underlying := named.Underlying()

	switch ut := underlying.(type) {
	case *types.Struct:
		if obj.Pkg() == nil || a.isExternalPackage(obj.Pkg().Path()) {
			// Opaque structs such as time.Time are not introspected.
			info.Kind = TypeKindExternal
			return
		}

		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)
		a.analyzeGetters(named, info)

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		if obj.Pkg() != nil && a.isExternalPackage(obj.Pkg().Path()) {
			if _, ok := ut.(*types.Basic); !ok {
				info.Kind = TypeKindExternal
				return
			}
		}

		// Named type wrapping something else (e.g., type Status string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type, in declaration order.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
			Pos:      a.position(field.Pos()),
		})
	}
}

// analyzeGetters records exported methods that take no arguments and return
// a single value. They are candidates for computed, read-only fields.
func (a *Analyzer) analyzeGetters(named *types.Named, info *TypeInfo) {
	mset := types.NewMethodSet(types.NewPointer(named))

	for i := 0; i < mset.Len(); i++ {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 || sig.Variadic() {
			continue
		}

		info.Getters = append(info.Getters, FieldInfo{
			Name:     fn.Name(),
			Exported: true,
			Getter:   true,
			Type:     a.analyzeType(sig.Results().At(0).Type()),
			Index:    -1,
			Pos:      a.position(fn.Pos()),
		})
	}
}

func (a *Analyzer) position(pos token.Pos) token.Position {
	if a.fset == nil || !pos.IsValid() {
		return token.Position{}
	}

	return a.fset.Position(pos)
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	return a.graph.Struct(TypeID{PkgPath: pkgPath, Name: typeName})
}

// Struct returns the TypeInfo for a named struct in the graph.
func (g *TypeGraph) Struct(id TypeID) (*TypeInfo, error) {
	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}
	return info, nil
}
