package plan

import (
	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/mapping"
)

// Plan is everything code generation needs, resolved from a mapping file
// and a type graph.
type Plan struct {
	// Output is the file name written into each package.
	Output string
	// Schema resolves field configuration.
	Schema AnnotationSchema
	// Naming derives function names and keys.
	Naming NamingPolicy
	// Repository is the repository handle type.
	Repository mapping.Handle
	// Classes are the classes to generate, in mapping file order.
	Classes []ClassPlan
	// Catalog answers companion queries for nested types.
	Catalog *Catalog
	// Computed lists the getters exposed per class.
	Computed map[analyze.TypeID][]string
	// Packages maps package paths of generated classes to their info.
	Packages map[string]*analyze.PackageInfo
}

// ClassPlan describes the generation of one class.
type ClassPlan struct {
	ID        analyze.TypeID
	Providers []mapping.Provider
	Overlays  map[string]mapping.FieldOverlay
}

// Overlay returns the mapping file overlay of a field, or nil.
func (c *ClassPlan) Overlay(field string) *mapping.FieldOverlay {
	o, ok := c.Overlays[field]
	if !ok {
		return nil
	}

	return &o
}

// Build validates mf against graph and resolves the generation plan. The
// plan is nil when validation reports errors.
func Build(mf *mapping.MappingFile, graph *analyze.TypeGraph) (*Plan, *diagnostic.Diagnostics) {
	diags := mapping.Validate(mf, graph)
	if diags.HasErrors() {
		return nil, diags
	}

	naming := NewNamingPolicy(mf.Naming)

	p := &Plan{
		Output:     mf.Output,
		Schema:     AnnotationSchema{Tag: mf.Tag, Naming: naming},
		Naming:     naming,
		Repository: mf.Repository,
		Catalog:    NewCatalog(graph, naming),
		Computed:   make(map[analyze.TypeID][]string),
		Packages:   make(map[string]*analyze.PackageInfo),
	}

	for i := range mf.Classes {
		c := &mf.Classes[i]

		// Validate guarantees the reference resolves.
		info, err := mapping.ResolveTypeID(c.Name, graph)
		if err != nil {
			diags.AddError("class_not_found", err.Error(), c.Name, "")
			return nil, diags
		}

		providers := mf.ClassProviders(c)
		names := make([]string, len(providers))
		for j, pr := range providers {
			names[j] = pr.Name
		}

		p.Catalog.Add(info.ID, names...)
		p.Computed[info.ID] = c.Computed
		p.Packages[info.ID.PkgPath] = graph.Packages[info.ID.PkgPath]

		p.Classes = append(p.Classes, ClassPlan{
			ID:        info.ID,
			Providers: providers,
			Overlays:  c.Fields,
		})
	}

	return p, diags
}
