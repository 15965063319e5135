package analyze

import (
	"fmt"
)

// Introspector serves the ordered field list of a class from a TypeGraph.
// Struct fields come first in declaration order, followed by the computed
// getters configured for the class in configuration order.
type Introspector struct {
	graph    *TypeGraph
	computed map[TypeID][]string
}

// NewIntrospector creates an Introspector. computed lists, per class, the
// getter methods that are exposed as read-only fields.
func NewIntrospector(graph *TypeGraph, computed map[TypeID][]string) *Introspector {
	return &Introspector{graph: graph, computed: computed}
}

// ClassFields returns the fields of the struct identified by id.
func (in *Introspector) ClassFields(id TypeID) ([]FieldInfo, error) {
	info, err := in.graph.Struct(id)
	if err != nil {
		return nil, err
	}

	fields := make([]FieldInfo, 0, len(info.Fields)+len(in.computed[id]))
	fields = append(fields, info.Fields...)

	for _, name := range in.computed[id] {
		getter, ok := info.Getter(name)
		if !ok {
			return nil, fmt.Errorf("type %s has no exported getter method %s", id, name)
		}

		fields = append(fields, getter)
	}

	return fields, nil
}

// Graph returns the underlying type graph.
func (in *Introspector) Graph() *TypeGraph {
	return in.graph
}
