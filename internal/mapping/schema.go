package mapping

import (
	"fmt"
	"strings"
)

// Defaults applied to omitted settings.
const (
	DefaultVersion = "1"
	DefaultOutput  = "codec_gen.go"
	DefaultPrefix  = "Codec"
	DefaultTag     = "codec"
	DefaultHandle  = "any"
)

// MappingFile represents the root of a generator configuration file.
// Struct tags carry the per-field configuration; the mapping file selects
// the classes to generate and overlays field settings that do not fit in a
// tag, such as override templates.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`

	// Packages are the Go package patterns to load (e.g. "./store").
	Packages []string `yaml:"packages" toml:"packages"`

	// Output is the name of the generated file written into each package.
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`

	// Tag is the struct tag key holding field configuration.
	Tag string `yaml:"tag,omitempty" toml:"tag,omitempty"`

	// Naming controls generated function names and default keys.
	Naming Naming `yaml:"naming,omitempty" toml:"naming,omitempty"`

	// Providers lists the data providers functions are generated for.
	Providers []Provider `yaml:"providers" toml:"providers"`

	// Repository is the repository handle passed to every generated function.
	Repository Handle `yaml:"repository,omitempty" toml:"repository,omitempty"`

	// Classes lists the domain classes to generate conversion functions for.
	Classes []Class `yaml:"classes" toml:"classes"`
}

// Naming configures the naming policy.
type Naming struct {
	// Prefix starts every generated function name.
	Prefix string `yaml:"prefix,omitempty" toml:"prefix,omitempty"`

	// KeyCase re-cases field names into default keys (a tagly case format,
	// e.g. "lu" for lower_underscore). Empty keeps field names as is.
	KeyCase string `yaml:"keyCase,omitempty" toml:"keyCase,omitempty"`
}

// Handle names a Go type passed to generated functions.
type Handle struct {
	// Type is the type expression, e.g. "*warehouse.Repository".
	Type string `yaml:"type,omitempty" toml:"type,omitempty"`

	// Import is the import path the type expression refers to, if any.
	Import string `yaml:"import,omitempty" toml:"import,omitempty"`
}

// Provider is a data source/sink with its own conversion functions.
type Provider struct {
	// Name is used in generated function names (e.g. "Warehouse").
	Name string `yaml:"name" toml:"name"`

	Handle `yaml:",inline"`
}

// Class selects one domain class for generation.
type Class struct {
	// Name identifies the struct: "Order", "store.Order" or
	// "codec-generator/store.Order".
	Name string `yaml:"name" toml:"name"`

	// Providers restricts generation to the named providers. Empty means all.
	Providers StringOrArray `yaml:"providers,omitempty" toml:"providers,omitempty"`

	// Computed lists getter methods exposed as read-only fields.
	Computed []string `yaml:"computed,omitempty" toml:"computed,omitempty"`

	// Fields overlays the struct tag configuration, keyed by Go field name.
	Fields map[string]FieldOverlay `yaml:"fields,omitempty" toml:"fields,omitempty"`
}

// FieldOverlay holds field settings. Unset values leave the struct tag
// configuration in place.
type FieldOverlay struct {
	Key      *string `yaml:"key,omitempty" toml:"key,omitempty"`
	Ignore   *bool   `yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	Nullable *bool   `yaml:"nullable,omitempty" toml:"nullable,omitempty"`
	// Default is a Go expression used when the raw value is absent.
	Default *string `yaml:"default,omitempty" toml:"default,omitempty"`
	// Decode and Encode are override templates (see package placeholder).
	Decode *string `yaml:"decode,omitempty" toml:"decode,omitempty"`
	Encode *string `yaml:"encode,omitempty" toml:"encode,omitempty"`
}

// IsEmpty returns true if the overlay sets nothing.
func (o FieldOverlay) IsEmpty() bool {
	return o.Key == nil && o.Ignore == nil && o.Nullable == nil &&
		o.Default == nil && o.Decode == nil && o.Encode == nil
}

// Provider returns the provider with the given name.
func (mf *MappingFile) Provider(name string) (Provider, bool) {
	for _, p := range mf.Providers {
		if p.Name == name {
			return p, true
		}
	}

	return Provider{}, false
}

// ProviderNames returns the provider names in declaration order.
func (mf *MappingFile) ProviderNames() []string {
	names := make([]string, len(mf.Providers))
	for i, p := range mf.Providers {
		names[i] = p.Name
	}

	return names
}

// ClassProviders returns the providers a class is generated for, in the
// mapping file's provider order.
func (mf *MappingFile) ClassProviders(c *Class) []Provider {
	if c.Providers.IsEmpty() {
		return mf.Providers
	}

	var out []Provider
	for _, p := range mf.Providers {
		if c.Providers.Contains(p.Name) {
			out = append(out, p)
		}
	}

	return out
}

// String returns a short description of the handle.
func (h Handle) String() string {
	if h.Import == "" {
		return h.Type
	}

	return fmt.Sprintf("%s (%s)", h.Type, h.Import)
}

// ShortName returns the class name without its package qualifier.
func (c *Class) ShortName() string {
	if i := strings.LastIndex(c.Name, "."); i >= 0 {
		return c.Name[i+1:]
	}

	return c.Name
}
