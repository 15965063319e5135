package gen

import (
	"strconv"

	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/expr"
	"codec-generator/internal/placeholder"
	"codec-generator/internal/plan"
)

// FieldExpression is the conversion expression of one field.
type FieldExpression struct {
	Field string
	Key   string
	Node  expr.Node
}

// Text renders the expression.
func (fe *FieldExpression) Text() string {
	return expr.Render(fe.Node)
}

// Entry renders the expression as an element of the function body: a
// composite literal field for decode, a map entry for encode.
func (fe *FieldExpression) Entry(dir plan.Direction) string {
	if dir == plan.Encode {
		return strconv.Quote(fe.Key) + ": " + fe.Text()
	}

	return fe.Field + ": " + fe.Text()
}

// Builtins returns the built-in placeholder values of a field.
func Builtins(field analyze.FieldInfo, cfg plan.FieldConfig) map[string]string {
	return map[string]string{
		placeholder.BuiltinKey:   strconv.Quote(cfg.Key),
		placeholder.BuiltinData:  expr.Render(expr.DataAccess(cfg.Key)),
		placeholder.BuiltinField: expr.Render(expr.FieldAccess(field.Name, field.Getter)),
	}
}

// Synthesize builds the conversion expression of a field. A nil result
// means the field is omitted. shape may be nil when the field is ignored or
// has an override for the direction.
func Synthesize(field analyze.FieldInfo, cfg plan.FieldConfig, shape *plan.Shape, ctx plan.Context) (*FieldExpression, error) {
	if cfg.Ignore || (ctx.Direction == plan.Decode && field.Getter) {
		return nil, nil
	}

	fe := &FieldExpression{Field: field.Name, Key: cfg.Key}

	if tmpl := cfg.Override(ctx.Direction); tmpl != nil {
		text, err := placeholder.Expand(*tmpl, Builtins(field, cfg))
		if err != nil {
			return nil, err
		}

		if text == "" {
			return nil, diagnostic.Configuration("%s override is empty", ctx.Direction)
		}

		fe.Node = expr.Text(text)

		return fe, nil
	}

	if shape == nil {
		return nil, diagnostic.Unsupported("field has no type shape")
	}

	s := synth{ctx: ctx}

	if ctx.Direction == plan.Decode {
		fe.Node = s.decodeField(shape, cfg)
	} else {
		fe.Node = s.encode(shape, expr.FieldAccess(field.Name, field.Getter))
	}

	return fe, nil
}

type synth struct {
	ctx plan.Context
}

func (s synth) companion(shape *plan.Shape, dir plan.Direction) string {
	return shape.Qual + s.ctx.Naming.FuncName(shape.Class, dir, s.ctx.Provider)
}

// decodeField applies defaults and null handling around the shape rule.
func (s synth) decodeField(shape *plan.Shape, cfg plan.FieldConfig) expr.Node {
	var src expr.Node = expr.DataAccess(cfg.Key)
	if cfg.Default != nil {
		src = expr.Fallback(src, *cfg.Default)
	}

	if !cfg.Nullable {
		return s.decode(shape, src)
	}

	if shape.Pointer && shape.Kind != plan.ShapeNested {
		base := shape.Deref()
		return expr.Nullable(src, expr.Lambda("any", base.GoType(), s.decode(base, expr.ParamRef())))
	}

	return expr.Guard(src, expr.Lambda("any", shape.GoType(), s.decode(shape, expr.ParamRef())))
}

// decode converts the raw value src into a value of shape.GoType().
func (s synth) decode(shape *plan.Shape, src expr.Node) expr.Node {
	switch shape.Kind {
	case plan.ShapeCollection:
		fn := expr.Lambda("any", shape.Elem.GoType(), s.decode(shape.Elem, expr.ParamRef()))

		var n expr.Node = expr.Slice(src, fn)
		if shape.Container == plan.ContainerSet {
			n = expr.Set(src, fn)
		}

		return pointerTo(shape, n)

	case plan.ShapeAsync:
		return expr.Ready(s.decode(shape.Inner, expr.Await(src)))

	case plan.ShapeNested:
		n := expr.Decode(src, s.companion(shape, plan.Decode))
		if shape.Pointer {
			return n
		}

		return expr.Value(n)

	default:
		return pointerTo(shape, expr.Cast(shape.Type, src))
	}
}

func pointerTo(shape *plan.Shape, n expr.Node) expr.Node {
	if shape.Pointer {
		return expr.Ptr(n)
	}

	return n
}

// encode converts src, a value of shape.GoType(), into a raw value.
func (s synth) encode(shape *plan.Shape, src expr.Node) expr.Node {
	switch shape.Kind {
	case plan.ShapeCollection:
		if shape.Pointer {
			src = expr.Value(src)
		}

		fn := expr.Lambda(shape.Elem.GoType(), "any", s.encode(shape.Elem, expr.ParamRef()))
		if shape.Container == plan.ContainerSet {
			return expr.SetList(src, fn)
		}

		return expr.List(src, fn)

	case plan.ShapeAsync:
		return s.encode(shape.Inner, expr.Resolve(src))

	case plan.ShapeNested:
		if !shape.Pointer {
			src = expr.Ptr(src)
		}

		return expr.Encode(src, s.companion(shape, plan.Encode))

	default:
		if shape.Pointer {
			return expr.Deref(src)
		}

		return src
	}
}
