package mapping

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"codec-generator/internal/analyze"
)

// ErrTypeNotFound is returned when a class reference matches no type.
var ErrTypeNotFound = errors.New("type not found")

// ResolveTypeID resolves a type reference like:
// - "store.Order" (short)
// - "codec-generator/store.Order" (full)
// - "Order" (name only).
//
// Short and name-only references must match exactly one type.
func ResolveTypeID(ref string, graph *analyze.TypeGraph) (*analyze.TypeInfo, error) {
	if graph == nil || ref == "" {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, ref)
	}

	pkgStr, name := "", ref
	if lastDot := strings.LastIndex(ref, "."); lastDot >= 0 {
		pkgStr, name = ref[:lastDot], ref[lastDot+1:]
		if pkgStr == "" || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, ref)
		}

		// Exact match for a fully qualified import path.
		if t := graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: name}); t != nil {
			return t, nil
		}
	}

	var matches []analyze.TypeID

	for id := range graph.Types {
		if id.Name != name {
			continue
		}

		if pkgStr == "" || id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, ref)
	case 1:
		return graph.GetType(matches[0]), nil
	}

	names := make([]string, len(matches))
	for i, id := range matches {
		names[i] = id.String()
	}

	sort.Strings(names)

	return nil, fmt.Errorf("type %q is ambiguous: %s", ref, strings.Join(names, ", "))
}

// TypeNames returns the short names ("pkg.Name") of all named structs in
// the graph, sorted. They are the candidates for "did you mean" hints.
func TypeNames(graph *analyze.TypeGraph) []string {
	var out []string

	for id, t := range graph.Types {
		if t.Kind != analyze.TypeKindStruct {
			continue
		}

		pkg := id.PkgPath
		if i := strings.LastIndex(pkg, "/"); i >= 0 {
			pkg = pkg[i+1:]
		}

		out = append(out, pkg+"."+id.Name)
	}

	sort.Strings(out)

	return out
}
