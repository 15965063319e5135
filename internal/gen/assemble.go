package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"codec-generator/internal/diagnostic"
	"codec-generator/internal/plan"
)

var decodeTemplate = template.Must(template.New("decode").Parse(`// {{.Name}} decodes {{.Class}} from {{.Provider}} data.
func {{.Name}}(ctx context.Context, data map[string]any, provider {{.ProviderType}}, repository {{.Repository}}) (*{{.Class}}, error) {
	d := rawconv.NewDecoder(ctx)
	out := &{{.Class}}{
{{- range .Entries}}
		{{.}},
{{- end}}
	}
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("decode {{.Class}} from {{.Provider}}: %w", err)
	}

	return out, nil
}
`))

var encodeTemplate = template.Must(template.New("encode").Parse(`// {{.Name}} encodes {{.Class}} into {{.Provider}} data.
func {{.Name}}(ctx context.Context, in *{{.Class}}, provider {{.ProviderType}}, repository {{.Repository}}) (map[string]any, error) {
	if in == nil {
		return nil, nil
	}

	e := rawconv.NewEncoder(ctx)
	out := map[string]any{
{{- range .Entries}}
		{{.}},
{{- end}}
	}
	if err := e.Err(); err != nil {
		return nil, fmt.Errorf("encode {{.Class}} to {{.Provider}}: %w", err)
	}

	return out, nil
}
`))

// Function is one generated conversion function.
type Function struct {
	Name      string
	Class     string
	Provider  string
	Direction plan.Direction
	// Source is the formatted function declaration.
	Source []byte
}

type templateData struct {
	Name         string
	Class        string
	Provider     string
	ProviderType string
	Repository   string
	Entries      []string
}

// Assembler wraps field expressions into complete function declarations.
type Assembler struct {
	Formatter Formatter
}

// NewAssembler creates an Assembler. A nil formatter selects GoFormatter.
func NewAssembler(f Formatter) *Assembler {
	if f == nil {
		f = GoFormatter{}
	}

	return &Assembler{Formatter: f}
}

// Assemble renders and formats the function of ctx. Field order is kept.
func (a *Assembler) Assemble(ctx plan.Context, fields []*FieldExpression) (*Function, error) {
	data := templateData{
		Name:         ctx.FuncName(),
		Class:        ctx.Class,
		Provider:     ctx.Provider,
		ProviderType: ctx.ProviderType,
		Repository:   ctx.Repository,
		Entries:      make([]string, 0, len(fields)),
	}

	for _, fe := range fields {
		data.Entries = append(data.Entries, fe.Entry(ctx.Direction))
	}

	tmpl := decodeTemplate
	if ctx.Direction == plan.Encode {
		tmpl = encodeTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", ctx.Direction, err)
	}

	// Wrapped in a file so the formatter sees a complete compilation unit.
	src, err := a.Formatter.Format(append([]byte("package p\n\n"), buf.Bytes()...))
	if err != nil {
		fe := diagnostic.Formatting(fmt.Errorf("%s: %w", data.Name, err))
		fe.Class = ctx.Class
		fe.Field = isolate(a.Formatter, fields)

		return nil, fe
	}

	return &Function{
		Name:      data.Name,
		Class:     ctx.Class,
		Provider:  ctx.Provider,
		Direction: ctx.Direction,
		Source:    bytes.TrimPrefix(src, []byte("package p\n\n")),
	}, nil
}
