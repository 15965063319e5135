package plan

import (
	"strings"

	"github.com/fatih/structtag"

	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/mapping"
)

// Tag options understood by the annotation schema.
const (
	OptionIgnore   = "ignore"
	OptionNullable = "nullable"
	OptionDefault  = "default="
)

// AnnotationSchema turns struct tags and mapping file overlays into
// FieldConfig values.
//
// Tag grammar: `codec:"<key>,<option>..."`. The key "-" ignores the field,
// an empty key falls back to the naming policy. Options are "ignore",
// "nullable" and "default=<expr>". A default expression cannot contain a
// comma; use the mapping file for those.
type AnnotationSchema struct {
	// Tag is the struct tag key, "codec" by default.
	Tag    string
	Naming NamingPolicy
}

// Resolve returns the configuration of field. overlay may be nil.
func (s AnnotationSchema) Resolve(field analyze.FieldInfo, overlay *mapping.FieldOverlay) (FieldConfig, error) {
	cfg := FieldConfig{Key: s.Naming.Key(field.Name)}

	if err := s.applyTag(&cfg, field); err != nil {
		return FieldConfig{}, err
	}

	if overlay != nil {
		applyOverlay(&cfg, overlay)
	}

	if cfg.Key == "" {
		return FieldConfig{}, diagnostic.Configuration("empty key")
	}

	return cfg, nil
}

func (s AnnotationSchema) tagKey() string {
	if s.Tag == "" {
		return mapping.DefaultTag
	}

	return s.Tag
}

func (s AnnotationSchema) applyTag(cfg *FieldConfig, field analyze.FieldInfo) error {
	if field.Tag == "" {
		return nil
	}

	tags, err := structtag.Parse(string(field.Tag))
	if err != nil {
		return diagnostic.Configuration("malformed struct tag %q: %v", field.Tag, err)
	}

	tag, err := tags.Get(s.tagKey())
	if err != nil {
		// Not tagged for us.
		return nil
	}

	switch tag.Name {
	case "-":
		cfg.Ignore = true
	case "":
	default:
		cfg.Key = tag.Name
	}

	for _, opt := range tag.Options {
		switch {
		case opt == OptionIgnore:
			cfg.Ignore = true
		case opt == OptionNullable:
			cfg.Nullable = true
		case strings.HasPrefix(opt, OptionDefault):
			def := strings.TrimSpace(strings.TrimPrefix(opt, OptionDefault))
			if def == "" {
				return diagnostic.Configuration("tag option %q requires a value", strings.TrimSuffix(OptionDefault, "="))
			}

			cfg.Default = &def
		default:
			return diagnostic.Configuration("unknown tag option %q", opt)
		}
	}

	return nil
}

func applyOverlay(cfg *FieldConfig, o *mapping.FieldOverlay) {
	if o.Key != nil {
		cfg.Key = strings.TrimSpace(*o.Key)
	}

	if o.Ignore != nil {
		cfg.Ignore = *o.Ignore
	}

	if o.Nullable != nil {
		cfg.Nullable = *o.Nullable
	}

	if o.Default != nil {
		cfg.Default = o.Default
	}

	if o.Decode != nil {
		cfg.DecodeOverride = o.Decode
	}

	if o.Encode != nil {
		cfg.EncodeOverride = o.Encode
	}
}
