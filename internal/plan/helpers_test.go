package plan

import (
	"codec-generator/internal/analyze"
)

const storePkg = "codec-generator/store"

func basic(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindBasic, ID: analyze.TypeID{Name: name}}
}

func named(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindStruct, ID: analyze.TypeID{PkgPath: storePkg, Name: name}}
}

func sliceOf(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindSlice, ElemType: elem}
}

func setOf(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindSet, ElemType: elem}
}

func ptrTo(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: elem}
}

func future(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindFuture, ElemType: elem}
}

// companions is a fixed Capabilities answer keyed by type name.
type companions map[string]bool

func (c companions) HasCompanion(id analyze.TypeID, _ string) bool {
	return c[id.Name]
}
