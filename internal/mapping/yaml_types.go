package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// StringOrArray is a list of names that configuration files may spell as a
// bare string ("providers: Firestore") or as a list. An empty string decodes
// to an empty list.
type StringOrArray []string

func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}

		*s = singleton(one)

		return nil
	}

	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: want a name or a list of names", node.Line)
	}

	var many []string
	if err := node.Decode(&many); err != nil {
		return err
	}

	*s = many

	return nil
}

func (s *StringOrArray) UnmarshalTOML(v any) error {
	if one, ok := v.(string); ok {
		*s = singleton(one)
		return nil
	}

	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("want a name or a list of names, got %T", v)
	}

	names := make(StringOrArray, len(items))
	for i, item := range items {
		name, ok := item.(string)
		if !ok {
			return fmt.Errorf("item %d: want a name, got %T", i, item)
		}

		names[i] = name
	}

	*s = names

	return nil
}

// MarshalYAML writes one-element lists back as a bare string.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

func (s StringOrArray) IsEmpty() bool {
	return len(s) == 0
}

func (s StringOrArray) Contains(name string) bool {
	return slices.Contains(s, name)
}

func singleton(name string) StringOrArray {
	if name == "" {
		return StringOrArray{}
	}

	return StringOrArray{name}
}
