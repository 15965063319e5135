package plan

import (
	"github.com/viant/tagly/format/text"

	"codec-generator/internal/mapping"
)

// NamingPolicy derives generated function names and default raw keys.
type NamingPolicy struct {
	// Prefix starts every generated function name.
	Prefix string
	// KeyCase re-cases field names into default keys. Empty keeps them.
	KeyCase text.CaseFormat
}

// NewNamingPolicy builds the policy configured in a mapping file.
func NewNamingPolicy(n mapping.Naming) NamingPolicy {
	policy := NamingPolicy{Prefix: n.Prefix}
	if policy.Prefix == "" {
		policy.Prefix = mapping.DefaultPrefix
	}

	if format, ok := mapping.KeyCaseFormat(n.KeyCase); ok {
		policy.KeyCase = format
	}

	return policy
}

// FuncName returns the name of the function converting class for provider
// in the given direction, e.g. "CodecOrderFromWarehouse".
func (p NamingPolicy) FuncName(class string, dir Direction, provider string) string {
	return p.Prefix + class + dir.Marker() + provider
}

// Key returns the default raw key of a field.
func (p NamingPolicy) Key(fieldName string) string {
	if p.KeyCase == "" {
		return fieldName
	}

	if fieldName == "ID" {
		switch p.KeyCase {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}

	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}

	return src.Format(fieldName, p.KeyCase)
}
