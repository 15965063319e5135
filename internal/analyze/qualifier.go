package analyze

import (
	"go/types"
	"sort"
)

// Qualifier renders type text relative to an output package and records
// the imports the rendered text needs.
type Qualifier struct {
	pkgPath string
	imports map[string]string
}

// NewQualifier creates a Qualifier for code emitted into pkgPath.
func NewQualifier(pkgPath string) *Qualifier {
	return &Qualifier{pkgPath: pkgPath, imports: make(map[string]string)}
}

// Qualify implements types.Qualifier.
func (q *Qualifier) Qualify(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == q.pkgPath {
		return ""
	}

	q.imports[pkg.Path()] = pkg.Name()

	return pkg.Name()
}

// TypeString renders t, e.g. "Address", "time.Time" or "*rawconv.Future[int]".
func (q *Qualifier) TypeString(t types.Type) string {
	return types.TypeString(t, q.Qualify)
}

// Ref renders a reference to a package-level name declared in pkgPath.
func (q *Qualifier) Ref(pkgPath, pkgName, name string) string {
	if pkgPath == "" || pkgPath == q.pkgPath {
		return name
	}

	q.imports[pkgPath] = pkgName

	return pkgName + "." + name
}

// Imports returns the recorded import paths, sorted.
func (q *Qualifier) Imports() []string {
	out := make([]string, 0, len(q.imports))
	for path := range q.imports {
		out = append(out, path)
	}

	sort.Strings(out)

	return out
}
