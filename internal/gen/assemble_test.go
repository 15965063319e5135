package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codec-generator/internal/diagnostic"
	"codec-generator/internal/expr"
	"codec-generator/internal/plan"
)

func TestAssemble_Decode(t *testing.T) {
	fields := []*FieldExpression{
		{Field: "City", Key: "city", Node: expr.Cast("string", expr.DataAccess("city"))},
	}

	ctx := testContext(plan.Decode)
	ctx.Class = "Address"

	fn, err := NewAssembler(nil).Assemble(ctx, fields)
	require.NoError(t, err)

	want := `// CodecAddressFromJson decodes Address from Json data.
func CodecAddressFromJson(ctx context.Context, data map[string]any, provider any, repository any) (*Address, error) {
	d := rawconv.NewDecoder(ctx)
	out := &Address{
		City: rawconv.Cast[string](d, data["city"]),
	}
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("decode Address from Json: %w", err)
	}

	return out, nil
}
`
	assert.Equal(t, want, string(fn.Source))
	assert.Equal(t, "CodecAddressFromJson", fn.Name)
	assert.Equal(t, plan.Decode, fn.Direction)
}

func TestAssemble_Encode(t *testing.T) {
	fields := []*FieldExpression{
		{Field: "City", Key: "city", Node: expr.FieldAccess("City", false)},
		{Field: "Label", Key: "label", Node: expr.FieldAccess("Label", true)},
	}

	ctx := testContext(plan.Encode)
	ctx.Class = "Address"
	ctx.ProviderType = "*store.Client"

	fn, err := NewAssembler(GoFormatter{}).Assemble(ctx, fields)
	require.NoError(t, err)

	src := string(fn.Source)
	assert.Contains(t, src, "func CodecAddressToJson(ctx context.Context, in *Address, provider *store.Client, repository any) (map[string]any, error) {")
	assert.Contains(t, src, "\tif in == nil {\n\t\treturn nil, nil\n\t}")
	assert.Contains(t, src, "\t\t\"city\":  in.City,\n\t\t\"label\": in.Label(),\n")
	assert.Contains(t, src, `fmt.Errorf("encode Address to Json: %w", err)`)
}

func TestAssemble_EmptyClass(t *testing.T) {
	fn, err := NewAssembler(nil).Assemble(testContext(plan.Decode), nil)
	require.NoError(t, err)
	assert.Contains(t, string(fn.Source), "out := &User{}")
}

func TestAssemble_FormattingErrorNamesField(t *testing.T) {
	fields := []*FieldExpression{
		{Field: "Good", Key: "good", Node: expr.Cast("int", expr.DataAccess("good"))},
		{Field: "Broken", Key: "broken", Node: expr.Text("rawconv.Cast[int](d, ")},
	}

	_, err := NewAssembler(nil).Assemble(testContext(plan.Decode), fields)
	require.ErrorIs(t, err, diagnostic.ErrFormatting)

	var de *diagnostic.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "User", de.Class)
	assert.Equal(t, "Broken", de.Field)
}

type recordingFormatter struct {
	calls int
	err   error
}

func (f *recordingFormatter) Format(src []byte) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return src, nil
}

func TestAssemble_InjectedFormatter(t *testing.T) {
	f := &recordingFormatter{}

	fn, err := NewAssembler(f).Assemble(testContext(plan.Encode), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.calls)
	assert.Contains(t, string(fn.Source), "func CodecUserToJson(")

	f = &recordingFormatter{err: errors.New("boom")}

	_, err = NewAssembler(f).Assemble(testContext(plan.Encode), nil)
	require.ErrorIs(t, err, diagnostic.ErrFormatting)
	assert.ErrorContains(t, err, "boom")
}
