package gen

import (
	"context"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codec-generator/internal/analyze"
	"codec-generator/internal/mapping"
	"codec-generator/internal/plan"
)

func TestGenerate_BasicExample(t *testing.T) {
	mf, err := mapping.LoadFile(filepath.Join("..", "..", "examples", "basic", "codec.yaml"))
	require.NoError(t, err)

	graph, err := analyze.NewAnalyzer().LoadPackages(mf.Packages...)
	require.NoError(t, err)

	p, diags := plan.Build(mf, graph)
	require.NotNil(t, p, diags.Error())

	files, diags, err := NewGenerator(p, analyze.NewIntrospector(graph, p.Computed), WithJobs(3)).
		Generate(context.Background())
	require.NoError(t, err)
	require.True(t, diags.IsValid(), diags.Error())
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, "store", filepath.Base(file.Dir))
	assert.Equal(t, "codec_gen.go", file.Filename)
	assert.False(t, file.Unformatted)

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err)

	src := string(file.Content)
	for _, want := range []string{
		"\t\"time\"\n",
		"\t\"codec-generator/warehouse\"\n",
		"func CodecOrderFromWarehouse(ctx context.Context, data map[string]any, provider *warehouse.Client, repository *warehouse.Repository) (*Order, error) {",
		"func CodecOrderToWarehouse(ctx context.Context, in *Order, provider *warehouse.Client, repository *warehouse.Repository) (map[string]any, error) {",
		`rawconv.Cast[OrderStatus](d, rawconv.Fallback(data["status"], StatusPending))`,
		`rawconv.Ready(rawconv.Value(rawconv.Decode(d, rawconv.Await(d, data["customer"]), CodecCustomerFromWarehouse, provider, repository)))`,
		`rawconv.Encode(e, rawconv.Ptr(rawconv.Resolve(e, in.Customer)), CodecCustomerToWarehouse, provider, repository)`,
		`rawconv.Time(d, data["created_at"], time.RFC3339)`,
		`in.CreatedAt.Format(time.RFC3339)`,
		`rawconv.Set(d, data["labels"], func(v any) string { return rawconv.Cast[string](d, v) })`,
		`in.DisplayName()`,
	} {
		assert.Contains(t, src, want)
	}

	assert.NotContains(t, src, "Password")
	assert.NotContains(t, src, "CodecAudit")
}
