// Package codegen turns parsed templates into Go source for one rendering unit.
package codegen

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

// UnitRef is a resolved parent unit.
type UnitRef interface {
	VersionedName() string
}

// ExtendsResolver finds or creates the unit named by an extends declaration.
type ExtendsResolver interface {
	ResolveExtends(ctx context.Context, parent string) (UnitRef, error)
}

// Input describes one generation pass.
type Input struct {
	// VersionedName is the name the generated unit is compiled and loaded under.
	VersionedName string
	// Content is the template text.
	Content string
	// TagName is the tag name suggested by the resource; a tag directive overrides it.
	TagName string
	// Defaults are the engine default arguments, merged after explicit declarations.
	Defaults []domain.DefaultArg
}

// Result is the output of one generation pass.
type Result struct {
	// Code is the generated Go source, with inner units appended after markers.
	Code string
	// Extends is the resolved parent, or nil.
	Extends UnitRef
	// TagName is the final tag name, or empty for pages.
	TagName string
	// Base is the resolved base the unit was generated against.
	Base string
	// Args are the declarations in table order.
	Args []domain.ArgumentDeclaration
	// Imports are the sorted user imports.
	Imports []string
	// Inners are the local names of the nested units, in definition order.
	Inners []string
}

// Generator produces unit source code from template text.
type Generator struct {
	parser   ports.Parser
	resolver ExtendsResolver
}

// New creates a Generator.
func New(parser ports.Parser, resolver ExtendsResolver) *Generator {
	return &Generator{parser: parser, resolver: resolver}
}

// Generate runs one generation pass.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	d := newDraft(ctx, g.resolver, in.VersionedName, false)
	d.tagName = in.TagName

	out := &unitSource{}
	if err := g.build(d, in.Content, in.Defaults, out); err != nil {
		return nil, err
	}

	res := &Result{
		Code:    out.String(),
		Extends: d.extends,
		TagName: d.tagName,
		Base:    d.base(),
		Args:    d.args.All(),
		Imports: sortedImports(d.imports),
	}
	for _, inner := range out.inners {
		res.Inners = append(res.Inners, inner.local)
	}
	return res, nil
}

// build runs the fixed step order of a generation pass and writes the unit to out.
func (g *Generator) build(d *draft, content string, defaults []domain.DefaultArg, out *unitSource) error {
	// 1. Parse, which fires directive callbacks.
	if err := g.parser.Parse(d.ctx, content, d); err != nil {
		return err
	}

	// 2. Invoke directive hooks. Hooks may append fragments, which are invoked too.
	for i := 0; i < len(d.fragments); i++ {
		if err := d.fragments[i].Invoke(d); err != nil {
			return err
		}
	}

	// 3. Merge engine defaults after explicit declarations.
	for _, def := range defaults {
		d.args.Declare(def.Type, def.Name)
	}
	if err := d.checkShadowing(); err != nil {
		return err
	}

	// 4-8. Emit the unit.
	e := newEmitter(g, d, out)
	return e.emitUnit()
}

// buildInner generates a nested unit declared by a fragment of parent.
func (g *Generator) buildInner(parent *draft, local string, params []ports.Param, content string, out *unitSource) error {
	for _, existing := range out.inners {
		if existing.local == local {
			return zerr.With(zerr.With(domain.ErrParse, "reason", "duplicate nested unit"), "name", local)
		}
	}

	name := domain.InnerName(rootName(parent.name), local)
	d := newDraft(parent.ctx, g.resolver, name, true)
	for _, p := range params {
		if err := d.AddArgumentDeclaration(p.Type, p.Name); err != nil {
			return err
		}
	}

	src := &unitSource{}
	if err := g.build(d, content, nil, src); err != nil {
		return err
	}
	out.inners = append(out.inners, innerSource{local: local, code: src.main.String()})
	// Units nested inside a nested unit belong to the same root.
	out.inners = append(out.inners, src.inners...)
	return nil
}

// rootName strips inner local names from a versioned name.
func rootName(name string) string {
	if idx := strings.Index(name, domain.InnerSeparator); idx >= 0 {
		return name[:idx]
	}
	return name
}

func sortedImports(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for path := range set {
		out = append(out, path)
	}
	slices.Sort(out)
	return out
}
