package codegen

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*draft)(nil)

// draft is the working state of one generation pass.
type draft struct {
	ctx      context.Context
	resolver ExtendsResolver

	name      string
	namespace string
	inner     bool

	imports    map[string]struct{}
	args       *ArgTable
	fragments  []ports.Fragment
	tagName    string
	extends    UnitRef
	extendsSet bool
}

func newDraft(ctx context.Context, resolver ExtendsResolver, name string, inner bool) *draft {
	namespace, _ := domain.SplitName(name)
	return &draft{
		ctx:       ctx,
		resolver:  resolver,
		name:      name,
		namespace: namespace,
		inner:     inner,
		imports:   make(map[string]struct{}),
		args:      NewArgTable(),
	}
}

// AddImport adds an import path. Adding the same path twice has no effect.
func (d *draft) AddImport(path string) {
	path = strings.Trim(strings.TrimSpace(path), `"`)
	if path == "" {
		return
	}
	d.imports[path] = struct{}{}
}

// DefineTag sets the tag name; the last call wins.
func (d *draft) DefineTag(name string) {
	d.tagName = strings.TrimSpace(name)
}

// SetExtends resolves and records the parent unit. It can be called once per pass.
func (d *draft) SetExtends(parent string) error {
	if d.inner {
		return zerr.With(domain.ErrInnerExtends, "unit", d.name)
	}
	if d.extendsSet {
		detail := zerr.With(zerr.With(zerr.New("second extends declaration"), "unit", d.name), "parent", parent)
		return errors.Join(domain.ErrDuplicateExtends, detail)
	}
	d.extendsSet = true
	ref, err := d.resolver.ResolveExtends(d.ctx, parent)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve parent unit"), "parent", parent)
	}
	d.extends = ref
	return nil
}

// AddArgumentDeclaration declares an argument with its type-derived default.
func (d *draft) AddArgumentDeclaration(typ, name string) error {
	if strings.TrimSpace(typ) == "" {
		return zerr.With(domain.ErrInvalidArgumentType, "argument", name)
	}
	if !domain.IsArgumentName(name) {
		return zerr.With(domain.ErrInvalidArgumentName, "argument", name)
	}
	d.args.Declare(typ, name)
	return nil
}

// AddFragment appends a fragment to the body.
func (d *draft) AddFragment(f ports.Fragment) {
	d.fragments = append(d.fragments, f)
}

// checkShadowing rejects an argument named like an imported package. Build binds every
// argument to a local variable, which would hide the package.
func (d *draft) checkShadowing() error {
	imports := sortedImports(d.imports)
	for _, a := range d.args.All() {
		for _, imp := range imports {
			if domain.ImportName(imp) == a.Name {
				return zerr.With(zerr.With(domain.ErrInvalidArgumentName, "argument", a.Name), "import", imp)
			}
		}
	}
	return nil
}

// base returns the resolved base of the unit.
func (d *draft) base() string {
	switch {
	case d.tagName != "":
		return domain.TagBase
	case d.extends != nil:
		return d.extends.VersionedName()
	default:
		return domain.TemplateBase
	}
}
