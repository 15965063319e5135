package gen

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"codec-generator/internal/analyze"
	"codec-generator/internal/mapping"
	"codec-generator/internal/plan"
)

const shopPkg = "example.com/shop"

func basicType(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindBasic, ID: analyze.TypeID{Name: name}}
}

func shopType(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindStruct, ID: analyze.TypeID{PkgPath: shopPkg, Name: name}}
}

func wrap(kind analyze.TypeKind, elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: kind, ElemType: elem}
}

func field(name string, t *analyze.TypeInfo, tag reflect.StructTag) analyze.FieldInfo {
	return analyze.FieldInfo{Name: name, Exported: true, Type: t, Tag: tag}
}

// shopGraph describes a small package with a nested Address and a User
// covering every shape.
func shopGraph(dir string) *analyze.TypeGraph {
	graph := analyze.NewTypeGraph()
	graph.Packages[shopPkg] = &analyze.PackageInfo{Path: shopPkg, Name: "shop", Dir: dir, Funcs: map[string]struct{}{}}

	address := shopType("Address")
	address.Fields = []analyze.FieldInfo{field("City", basicType("string"), `codec:"city"`)}
	graph.Types[address.ID] = address

	user := shopType("User")
	user.Fields = []analyze.FieldInfo{
		field("Age", basicType("int"), ""),
		field("Name", wrap(analyze.TypeKindPointer, basicType("string")), `codec:"name,nullable"`),
		field("Tags", wrap(analyze.TypeKindSlice, basicType("string")), `codec:"tags"`),
		field("Score", wrap(analyze.TypeKindFuture, basicType("int")), `codec:"score"`),
		field("Address", wrap(analyze.TypeKindPointer, address), `codec:"address,nullable"`),
		field("Secret", basicType("string"), `codec:"-"`),
	}
	user.Getters = []analyze.FieldInfo{
		{Name: "Display", Exported: true, Getter: true, Type: basicType("string"), Index: -1},
	}
	graph.Types[user.ID] = user

	return graph
}

const shopMapping = `
providers:
  - name: Json
classes:
  - name: shop.Address
  - name: shop.User
    computed: [Display]
    fields:
      Age:
        key: age
        default: "18"
      Display:
        key: display
`

func buildShopPlan(t *testing.T, yaml string) (*plan.Plan, *analyze.Introspector) {
	t.Helper()

	mf, err := mapping.Parse([]byte(yaml))
	require.NoError(t, err)

	graph := shopGraph(t.TempDir())

	p, diags := plan.Build(mf, graph)
	require.NotNil(t, p, diags.Error())

	return p, analyze.NewIntrospector(graph, p.Computed)
}
