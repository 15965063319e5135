package mapping

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strings"

	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/match"
)

const maxSuggestions = 3

// Validate validates a mapping definition against the given type graph.
// This is a structural validation step only; field types are classified
// later, during generation.
func Validate(mf *MappingFile, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if !token.IsIdentifier(mf.Naming.Prefix) {
		res.AddError("invalid_prefix", fmt.Sprintf("naming prefix %q is not a Go identifier", mf.Naming.Prefix), "", "")
	}

	if _, ok := KeyCaseFormat(mf.Naming.KeyCase); mf.Naming.KeyCase != "" && !ok {
		res.AddError("invalid_key_case", fmt.Sprintf("unknown key case format %q", mf.Naming.KeyCase), "", "")
	}

	validateProviders(res, mf)

	seenClasses := map[analyze.TypeID]struct{}{}

	for i := range mf.Classes {
		c := &mf.Classes[i]

		info, err := ResolveTypeID(c.Name, graph)
		if err != nil {
			var suggestions []string
			if errors.Is(err, ErrTypeNotFound) {
				suggestions = match.Suggest(c.Name, classCandidates(c.Name, graph), maxSuggestions)
			}

			res.AddError("class_not_found", err.Error(), c.Name, "", suggestions...)

			continue
		}

		if info.Kind != analyze.TypeKindStruct {
			res.AddError("class_not_struct", fmt.Sprintf("type %s is not a struct (kind: %s)", info.ID, info.Kind), c.Name, "")
			continue
		}

		if _, ok := seenClasses[info.ID]; ok {
			res.AddError("duplicate_class", fmt.Sprintf("class %s is listed more than once", info.ID), c.Name, "")
			continue
		}

		seenClasses[info.ID] = struct{}{}

		validateClass(res, mf, c, info)
	}

	return res
}

func validateProviders(res *diagnostic.Diagnostics, mf *MappingFile) {
	if len(mf.Providers) == 0 {
		res.AddError("no_providers", "at least one provider is required", "", "")
		return
	}

	seen := map[string]struct{}{}

	for _, p := range mf.Providers {
		if !token.IsIdentifier(p.Name) {
			res.AddError("invalid_provider", fmt.Sprintf("provider name %q is not a Go identifier", p.Name), "", "")
			continue
		}

		if _, ok := seen[p.Name]; ok {
			res.AddError("duplicate_provider", fmt.Sprintf("duplicate provider %q", p.Name), "", "")
			continue
		}

		seen[p.Name] = struct{}{}
	}
}

func validateClass(res *diagnostic.Diagnostics, mf *MappingFile, c *Class, info *analyze.TypeInfo) {
	providers := mf.ProviderNames()
	for _, name := range c.Providers {
		if _, ok := mf.Provider(name); !ok {
			res.AddError("unknown_provider", fmt.Sprintf("unknown provider %q", name), c.Name, "",
				match.Suggest(name, providers, maxSuggestions)...)
		}
	}

	getters := make([]string, len(info.Getters))
	for i, g := range info.Getters {
		getters[i] = g.Name
	}

	computed := map[string]struct{}{}

	for _, name := range c.Computed {
		if _, ok := info.Getter(name); !ok {
			res.AddError("unknown_getter", fmt.Sprintf("no exported getter method %q", name), c.Name, name,
				match.Suggest(name, getters, maxSuggestions)...)

			continue
		}

		computed[name] = struct{}{}
	}

	var fields []string
	for _, f := range info.Fields {
		fields = append(fields, f.Name)
	}

	// Sorted so diagnostics come out in a stable order.
	names := make([]string, 0, len(c.Fields))
	for name := range c.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		overlay := c.Fields[name]

		if _, ok := computed[name]; ok {
			if overlay.Decode != nil {
				res.AddWarning("decode_on_getter", "decode override is never used for a computed field", c.Name, name)
			}

			continue
		}

		fi := findField(info, name)
		if fi == nil {
			res.AddError("unknown_field", fmt.Sprintf("no field %q", name), c.Name, name,
				match.Suggest(name, append(fields, c.Computed...), maxSuggestions)...)

			continue
		}

		if !fi.Exported || fi.Embedded {
			res.AddWarning("field_not_converted", "unexported and embedded fields are never converted", c.Name, name)
		}

		if overlay.Key != nil && strings.TrimSpace(*overlay.Key) == "" {
			res.AddError("empty_key", "key must not be empty", c.Name, name)
		}
	}
}

func findField(info *analyze.TypeInfo, name string) *analyze.FieldInfo {
	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	return nil
}

// classCandidates returns names in the same form as ref: qualified
// candidates for a qualified reference, bare names otherwise.
func classCandidates(ref string, graph *analyze.TypeGraph) []string {
	all := TypeNames(graph)
	if strings.Contains(ref, ".") {
		return all
	}

	out := make([]string, len(all))
	for i, name := range all {
		out[i] = name[strings.LastIndex(name, ".")+1:]
	}

	return out
}
