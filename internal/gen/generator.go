package gen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/mapping"
	"codec-generator/internal/plan"
)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the base name of the file.
	Filename string
	// Content is the file content.
	Content []byte
	// Unformatted marks content the formatter rejected.
	Unformatted bool
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// ClassResult is the outcome of generating one class.
type ClassResult struct {
	Class     analyze.TypeID
	Functions []*Function
	// Imports lists the import paths the functions reference.
	Imports []string
	Err     error
}

// Generator turns a plan into conversion functions.
type Generator struct {
	plan         *plan.Plan
	introspector plan.Introspector
	assembler    *Assembler
	jobs         int
	logger       *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithJobs bounds the number of classes generated concurrently.
func WithJobs(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.jobs = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFormatter replaces the default formatter.
func WithFormatter(f Formatter) Option {
	return func(g *Generator) {
		g.assembler = NewAssembler(f)
	}
}

// NewGenerator creates a Generator for p reading class fields through in.
func NewGenerator(p *plan.Plan, in plan.Introspector, opts ...Option) *Generator {
	g := &Generator{
		plan:         p,
		introspector: in,
		assembler:    NewAssembler(nil),
		jobs:         runtime.GOMAXPROCS(0),
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate generates every class of the plan and assembles one file per
// package. Classes that fail are reported in the diagnostics and left out of
// the files; the error is reserved for cancellation.
func (g *Generator) Generate(ctx context.Context) ([]GeneratedFile, *diagnostic.Diagnostics, error) {
	results, err := g.GenerateAll(ctx, g.plan.Classes)
	if err != nil {
		return nil, nil, err
	}

	diags := &diagnostic.Diagnostics{}

	var (
		order   []string
		byPkg   = make(map[string][]*ClassResult)
		skipped int
	)

	for _, r := range results {
		if r.Err != nil {
			diags.AddFailure(r.Err)
			skipped++

			continue
		}

		pkg := r.Class.PkgPath
		if _, ok := byPkg[pkg]; !ok {
			order = append(order, pkg)
		}

		byPkg[pkg] = append(byPkg[pkg], r)
	}

	files := make([]GeneratedFile, 0, len(order))

	for _, pkg := range order {
		info := g.plan.Packages[pkg]
		if info == nil {
			diags.AddError("package_not_loaded", fmt.Sprintf("package %s has no type information", pkg), "", "")
			continue
		}

		content, err := AssembleFile(info, byPkg[pkg])
		if err != nil {
			diags.AddError(diagnostic.KindFormatting.String(), err.Error(), "", "")
		}

		files = append(files, GeneratedFile{
			Dir:         info.Dir,
			Filename:    g.plan.Output,
			Content:     content,
			Unformatted: err != nil,
		})
	}

	g.logger.Info("generation finished",
		"classes", len(results), "failed", skipped, "files", len(files))

	return files, diags, nil
}

// GenerateAll generates classes concurrently. Results are in the order of
// classes. A failing class never stops the others: its error is recorded in
// its result. The returned error is only set when ctx is done.
func (g *Generator) GenerateAll(ctx context.Context, classes []plan.ClassPlan) ([]*ClassResult, error) {
	results := make([]*ClassResult, len(classes))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.jobs)

	for i := range classes {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			results[i] = g.GenerateClass(&classes[i])

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// GenerateClass generates the decode and encode functions of a class for
// each of its providers. A class fails as a whole.
func (g *Generator) GenerateClass(c *plan.ClassPlan) *ClassResult {
	result := &ClassResult{Class: c.ID}
	log := g.logger.With("class", c.ID.String())

	fields, err := g.introspector.ClassFields(c.ID)
	if err != nil {
		result.Err = diagnostic.At(err, c.ID.Name, "")
		return result
	}

	q := analyze.NewQualifier(c.ID.PkgPath)

	for _, provider := range c.Providers {
		for _, dir := range []plan.Direction{plan.Decode, plan.Encode} {
			pctx := plan.Context{
				Class:        c.ID.Name,
				Provider:     provider.Name,
				ProviderType: provider.Type,
				Repository:   g.plan.Repository.Type,
				Direction:    dir,
				Naming:       g.plan.Naming,
			}

			exprs, err := g.fieldExpressions(c, fields, pctx, q)
			if err != nil {
				result.Err = err
				return result
			}

			fn, err := g.assembler.Assemble(pctx, exprs)
			if err != nil {
				result.Err = err
				return result
			}

			log.Debug("assembled function", "function", fn.Name, "fields", len(exprs))
			result.Functions = append(result.Functions, fn)
		}
	}

	result.Imports = g.imports(c, q)

	return result
}

func (g *Generator) fieldExpressions(
	c *plan.ClassPlan,
	fields []analyze.FieldInfo,
	ctx plan.Context,
	q *analyze.Qualifier,
) ([]*FieldExpression, error) {
	var (
		out  []*FieldExpression
		keys = make(map[string]string)
	)

	for _, field := range plan.SelectFields(fields, ctx.Direction) {
		cfg, err := g.plan.Schema.Resolve(field, c.Overlay(field.Name))
		if err != nil {
			return nil, diagnostic.At(err, ctx.Class, field.Name)
		}

		var shape *plan.Shape
		if !cfg.Ignore && cfg.Override(ctx.Direction) == nil {
			shape, err = plan.Classify(field.Type, g.plan.Catalog, ctx.Provider, q)
			if err != nil {
				return nil, diagnostic.At(err, ctx.Class, field.Name)
			}
		}

		fe, err := Synthesize(field, cfg, shape, ctx)
		if err != nil {
			return nil, diagnostic.At(err, ctx.Class, field.Name)
		}

		if fe == nil {
			continue
		}

		if prev, ok := keys[fe.Key]; ok {
			return nil, diagnostic.At(
				diagnostic.Configuration("key %q is also used by field %s", fe.Key, prev),
				ctx.Class, field.Name)
		}

		keys[fe.Key] = field.Name
		out = append(out, fe)
	}

	return out, nil
}

// imports lists the packages referenced by the functions of c.
func (g *Generator) imports(c *plan.ClassPlan, q *analyze.Qualifier) []string {
	paths := []string{"context", "fmt", analyze.RuntimePkgPath}

	handles := []mapping.Handle{g.plan.Repository}
	for _, p := range c.Providers {
		handles = append(handles, p.Handle)
	}

	for _, h := range handles {
		if h.Import != "" && h.Import != c.ID.PkgPath {
			paths = append(paths, h.Import)
		}
	}

	paths = append(paths, q.Imports()...)
	slices.Sort(paths)

	return slices.Compact(paths)
}
