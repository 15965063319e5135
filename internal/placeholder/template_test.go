package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codec-generator/internal/diagnostic"
)

var builtins = map[string]string{
	BuiltinKey:   `"age"`,
	BuiltinData:  `data["age"]`,
	BuiltinField: "in.Age",
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"value block", "%value% + 1 @value@raw@/value@", "raw + 1"},
		{"block first", "@value@raw@/value@%value% + 1", "raw + 1"},
		{"body trimmed", "@v@  raw\n@/v@ %v%", "raw"},
		{"token used twice", "%x% * %x%@x@n@/x@", "n * n"},
		{"several names", "@a@1@/a@ @b@2@/b@ %a% + %b%", "1 + 2"},
		{"builtins", "rawconv.Cast[int](d, %data%) // %key%", `rawconv.Cast[int](d, data["age"]) // "age"`},
		{"field builtin", "%field% * 2", "in.Age * 2"},
		{"builtin inside body", "@raw@%data%@/raw@ conv(%raw%)", `conv(data["age"])`},
		{"builtin wins over block", "@key@nope@/key@%key%", `"age"`},
		{"unused block stripped", "x @unused@@/unused@", "x"},
		{"literal percent", "a % b", "a % b"},
		{"literal at sign", "user@example.com", "user@example.com"},
		{"percent before non-name", "%1% and %%", "%1% and %%"},
		{"no placeholders", "  plain  ", "plain"},
		{"multi-line", "@layout@\ntime.RFC3339\n@/layout@\nrawconv.Time(d, %data%, %layout%)", `rawconv.Time(d, data["age"], time.RFC3339)`},
		{"other token in body kept", "@a@%b%@/a@ %a%", "%b%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.tmpl, builtins)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "@/")
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		message string
	}{
		{"undeclared", "%missing% + 1", `variable "missing" not declared`},
		{"empty body", "%v% @v@   @/v@", `variable "v" requires a trailing value`},
		{"duplicate block", "@v@1@/v@ @v@2@/v@ %v%", `value block "v" is declared more than once`},
		{"unterminated", "%v% @v@ 1", `value block "v" is not terminated with @/v@`},
		{"mismatched close", "%v% @v@ 1 @/w@", `value block "v" is not terminated`},
		{"close without open", "x @/v@", `value block "v" closed but never opened`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.tmpl, builtins)
			require.Error(t, err)
			require.ErrorIs(t, err, diagnostic.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestExpand_UndeclaredNeverPassesThrough(t *testing.T) {
	for _, tmpl := range []string{"%missing%", "a %missing% b @other@x@/other@"} {
		out, err := Expand(tmpl, nil)
		require.Error(t, err, tmpl)
		assert.Empty(t, out)
	}
}

func TestParse_Blocks(t *testing.T) {
	tmpl, err := Parse("@b@ two @/b@ %a% %b% @a@one@/a@")
	require.NoError(t, err)

	assert.Equal(t, []Block{{Name: "b", Body: " two "}, {Name: "a", Body: "one"}}, tmpl.Blocks())

	// Expansion does not change the parsed template.
	first, err := tmpl.Expand(nil)
	require.NoError(t, err)
	second, err := tmpl.Expand(nil)
	require.NoError(t, err)
	assert.Equal(t, "one two", first)
	assert.Equal(t, first, second)
}
