package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePkg = "codec-generator/store"

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(storePkg, "codec-generator/warehouse")
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func findField(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}
	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, storePkg)
	assert.Contains(t, graph.Packages, "codec-generator/warehouse")

	assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "Order"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: "codec-generator/warehouse", Name: "Client"})

	assert.Equal(t, "store", graph.Packages[storePkg].Name)
	assert.NotEmpty(t, graph.Packages[storePkg].Dir)
}

func TestAnalyzer_FieldOrder(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)
	assert.Equal(t, TypeKindStruct, order.Kind)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"ID", "Customer", "Status", "Items", "Score", "Notes", "Shipments", "OrderedAt"}, names)
}

func TestAnalyzer_FieldTags(t *testing.T) {
	graph := loadStore(t)

	product := graph.GetType(TypeID{PkgPath: storePkg, Name: "Product"})
	require.NotNil(t, product)

	sku := findField(t, product, "SKU")
	assert.True(t, sku.HasTag("codec"))
	assert.Equal(t, "sku", sku.GetTag("codec"))
	assert.True(t, sku.Exported)
	assert.Positive(t, sku.Pos.Line)

	rank := findField(t, product, "rank")
	assert.False(t, rank.Exported)
}

func TestAnalyzer_Shapes(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)

	items := findField(t, order, "Items")
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	assert.Equal(t, TypeKindStruct, items.Type.ElemType.Kind)

	customer := findField(t, order, "Customer")
	assert.Equal(t, TypeKindFuture, customer.Type.Kind)
	assert.Equal(t, TypeID{PkgPath: storePkg, Name: "Customer"}, customer.Type.ElemType.ID)

	shipments := findField(t, order, "Shipments")
	assert.Equal(t, TypeKindSlice, shipments.Type.Kind)
	assert.Equal(t, TypeKindFuture, shipments.Type.ElemType.Kind)

	orderedAt := findField(t, order, "OrderedAt")
	assert.Equal(t, TypeKindExternal, orderedAt.Type.Kind)

	status := findField(t, order, "Status")
	assert.Equal(t, TypeKindAlias, status.Type.Kind)

	cust := graph.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, cust)

	labels := findField(t, cust, "Labels")
	assert.Equal(t, TypeKindSet, labels.Type.Kind)
	assert.Equal(t, TypeKindBasic, labels.Type.ElemType.Kind)

	address := findField(t, cust, "Address")
	assert.Equal(t, TypeKindPointer, address.Type.Kind)
	assert.Equal(t, TypeKindStruct, address.Type.ElemType.Kind)
}

func TestAnalyzer_Getters(t *testing.T) {
	graph := loadStore(t)

	cust := graph.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, cust)

	getter, ok := cust.Getter("DisplayName")
	require.True(t, ok)
	assert.True(t, getter.Getter)
	assert.Equal(t, -1, getter.Index)
	assert.Equal(t, TypeKindBasic, getter.Type.Kind)

	_, ok = cust.Getter("Missing")
	assert.False(t, ok)
}

func TestAnalyzer_Funcs(t *testing.T) {
	graph := loadStore(t)

	assert.True(t, graph.HasFunc("codec-generator/warehouse", "NewClient"))
	assert.False(t, graph.HasFunc("codec-generator/warehouse", "CodecOrderFromWarehouse"))
	assert.False(t, graph.HasFunc("unknown/pkg", "NewClient"))
}

func TestIntrospector_ClassFields(t *testing.T) {
	graph := loadStore(t)
	customerID := TypeID{PkgPath: storePkg, Name: "Customer"}

	in := NewIntrospector(graph, map[TypeID][]string{customerID: {"DisplayName"}})

	fields, err := in.ClassFields(customerID)
	require.NoError(t, err)
	require.NotEmpty(t, fields)

	last := fields[len(fields)-1]
	assert.Equal(t, "DisplayName", last.Name)
	assert.True(t, last.Getter)
	assert.Equal(t, "ID", fields[0].Name)

	bad := NewIntrospector(graph, map[TypeID][]string{customerID: {"Nope"}})
	_, err = bad.ClassFields(customerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")

	_, err = in.ClassFields(TypeID{PkgPath: storePkg, Name: "OrderStatus"})
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: storePkg, Name: "Order"}
	assert.Equal(t, "codec-generator/store.Order", id.String())

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "set", TypeKindSet.String())
	assert.Equal(t, "future", TypeKindFuture.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
