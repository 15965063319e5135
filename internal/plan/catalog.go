package plan

import (
	"codec-generator/internal/analyze"
)

// Catalog implements Capabilities. A type has a companion for a provider
// when it is configured for generation with that provider, or when its
// package already declares both companion functions.
type Catalog struct {
	graph      *analyze.TypeGraph
	naming     NamingPolicy
	configured map[analyze.TypeID]map[string]struct{}
}

// NewCatalog creates an empty Catalog. graph may be nil.
func NewCatalog(graph *analyze.TypeGraph, naming NamingPolicy) *Catalog {
	return &Catalog{
		graph:      graph,
		naming:     naming,
		configured: make(map[analyze.TypeID]map[string]struct{}),
	}
}

// Add records that companions of id are generated for the providers.
func (c *Catalog) Add(id analyze.TypeID, providers ...string) {
	set, ok := c.configured[id]
	if !ok {
		set = make(map[string]struct{})
		c.configured[id] = set
	}

	for _, p := range providers {
		set[p] = struct{}{}
	}
}

// HasCompanion implements Capabilities.
func (c *Catalog) HasCompanion(id analyze.TypeID, provider string) bool {
	if _, ok := c.configured[id][provider]; ok {
		return true
	}

	if c.graph == nil {
		return false
	}

	return c.graph.HasFunc(id.PkgPath, c.naming.FuncName(id.Name, Decode, provider)) &&
		c.graph.HasFunc(id.PkgPath, c.naming.FuncName(id.Name, Encode, provider))
}
