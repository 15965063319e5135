package plan

import (
	"codec-generator/internal/analyze"
)

// SelectFields returns the fields eligible for conversion in the given
// direction, keeping the introspector order. Unexported, embedded and
// static fields are never eligible; getters are eligible for encode only.
func SelectFields(fields []analyze.FieldInfo, dir Direction) []analyze.FieldInfo {
	out := make([]analyze.FieldInfo, 0, len(fields))

	for _, f := range fields {
		if !f.Exported || f.Embedded || f.Static {
			continue
		}

		if f.Getter && dir == Decode {
			continue
		}

		out = append(out, f)
	}

	return out
}
