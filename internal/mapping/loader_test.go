package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
packages: ["./store"]
naming:
  keyCase: lu
providers:
  - name: Firestore
    type: "*firestore.Client"
    import: cloud.google.com/go/firestore
  - name: Json
repository:
  type: "*app.Repository"
  import: example.com/app
classes:
  - name: store.Order
    providers: Firestore
    computed: [TotalCents]
    fields:
      Status:
        key: state
        nullable: true
        default: store.StatusPending
      Notes:
        ignore: true
      OrderedAt:
        decode: "rawconv.Time(d, %data%, time.RFC3339)"
  - name: Customer
    providers: [Firestore, Json]
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, DefaultVersion, mf.Version)
	assert.Equal(t, DefaultOutput, mf.Output)
	assert.Equal(t, DefaultTag, mf.Tag)
	assert.Equal(t, DefaultPrefix, mf.Naming.Prefix)
	assert.Equal(t, "lu", mf.Naming.KeyCase)
	assert.Equal(t, []string{"./store"}, mf.Packages)

	require.Len(t, mf.Providers, 2)
	assert.Equal(t, "Firestore", mf.Providers[0].Name)
	assert.Equal(t, "*firestore.Client", mf.Providers[0].Type)
	assert.Equal(t, "cloud.google.com/go/firestore", mf.Providers[0].Import)
	assert.Equal(t, DefaultHandle, mf.Providers[1].Type, "provider type defaults to any")
	assert.Equal(t, "*app.Repository", mf.Repository.Type)

	require.Len(t, mf.Classes, 2)

	order := mf.Classes[0]
	assert.Equal(t, "Order", order.ShortName())
	assert.Equal(t, StringOrArray{"Firestore"}, order.Providers)
	assert.Equal(t, []string{"TotalCents"}, order.Computed)

	status := order.Fields["Status"]
	require.NotNil(t, status.Key)
	assert.Equal(t, "state", *status.Key)
	require.NotNil(t, status.Nullable)
	assert.True(t, *status.Nullable)
	require.NotNil(t, status.Default)
	assert.Equal(t, "store.StatusPending", *status.Default)
	assert.Nil(t, status.Ignore)

	notes := order.Fields["Notes"]
	require.NotNil(t, notes.Ignore)
	assert.True(t, *notes.Ignore)

	orderedAt := order.Fields["OrderedAt"]
	require.NotNil(t, orderedAt.Decode)
	assert.Nil(t, orderedAt.Encode)

	assert.Equal(t, StringOrArray{"Firestore", "Json"}, mf.Classes[1].Providers)
}

func TestParse_Defaults(t *testing.T) {
	mf, err := Parse([]byte("providers:\n  - name: Json\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultHandle, mf.Repository.Type)
	assert.Empty(t, mf.Repository.Import)
	assert.Empty(t, mf.Classes)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("classes: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mapping YAML")

	_, err = Parse([]byte("classes:\n  - name: Order\n    providers: {a: b}\n"))
	require.Error(t, err)
}

func TestParseTOML(t *testing.T) {
	doc := `
packages = ["./store"]

[naming]
prefix = "Conv"

[[providers]]
name = "Firestore"
type = "*firestore.Client"

[[classes]]
name = "store.Customer"
providers = "Firestore"
computed = ["DisplayName"]

[classes.fields.Email]
key = "mail"
nullable = true

[[classes]]
name = "store.Order"
providers = ["Firestore"]
`

	mf, err := ParseTOML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "Conv", mf.Naming.Prefix)
	require.Len(t, mf.Providers, 1)
	assert.Equal(t, "*firestore.Client", mf.Providers[0].Type)

	require.Len(t, mf.Classes, 2)
	assert.Equal(t, StringOrArray{"Firestore"}, mf.Classes[0].Providers)
	assert.Equal(t, StringOrArray{"Firestore"}, mf.Classes[1].Providers)

	email := mf.Classes[0].Fields["Email"]
	require.NotNil(t, email.Key)
	assert.Equal(t, "mail", *email.Key)
	require.NotNil(t, email.Nullable)
	assert.True(t, *email.Nullable)
	assert.False(t, email.IsEmpty())
}

func TestParseTOML_UnknownKey(t *testing.T) {
	_, err := ParseTOML([]byte("packages = []\nproviderz = 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "providerz")
}

func TestLoadFile_ByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "codec.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("providers:\n  - name: Json\n"), 0o644))

	tomlPath := filepath.Join(dir, "codec.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[providers]]\nname = \"Json\"\n"), 0o644))

	for _, path := range []string{yamlPath, tomlPath} {
		mf, err := LoadFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, []string{"Json"}, mf.ProviderNames())
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}

func TestLoadFile_Examples(t *testing.T) {
	yamlFile, err := LoadFile("../../examples/basic/codec.yaml")
	require.NoError(t, err)

	tomlFile, err := LoadFile("../../examples/basic/codec.toml")
	require.NoError(t, err)

	assert.Equal(t, yamlFile.Providers, tomlFile.Providers)
	assert.Equal(t, yamlFile.Repository, tomlFile.Repository)
	assert.Equal(t, yamlFile.Packages, tomlFile.Packages)
}

func TestClassProviders(t *testing.T) {
	mf := &MappingFile{
		Providers: []Provider{{Name: "A"}, {Name: "B"}, {Name: "C"}},
	}

	all := mf.ClassProviders(&Class{})
	assert.Len(t, all, 3)

	// Mapping file order wins over the class's listing order.
	subset := mf.ClassProviders(&Class{Providers: StringOrArray{"C", "A"}})
	require.Len(t, subset, 2)
	assert.Equal(t, "A", subset[0].Name)
	assert.Equal(t, "C", subset[1].Name)

	p, ok := mf.Provider("B")
	assert.True(t, ok)
	assert.Equal(t, "B", p.Name)

	_, ok = mf.Provider("D")
	assert.False(t, ok)
}
