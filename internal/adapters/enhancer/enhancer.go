// Package enhancer provides the named artifact rewriters that run between compile and load.
package enhancer

import (
	"bytes"
	"context"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"slices"
	"sort"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

// registry maps enhancer names to their constructors.
var registry = map[string]func() ports.Enhancer{
	EscapeName: func() ports.Enhancer { return Escape{} },
	BannerName: func() ports.Enhancer { return Banner{} },
	TrimName:   func() ports.Enhancer { return Trim{} },
}

// Names returns the registered enhancer names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a registered enhancer.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Chain builds the enhancers named in names, in order.
func Chain(names []string) ([]ports.Enhancer, error) {
	chain := make([]ports.Enhancer, 0, len(names))
	for _, name := range names {
		build, ok := registry[name]
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrUnknownEnhancer, "enhancer", name), "known", Names())
		}
		chain = append(chain, build())
	}
	return slices.Clip(chain), nil
}

// rewrite parses artifact, lets edit change the syntax tree and prints the result.
func rewrite(ctx context.Context, identity string, artifact []byte, edit func(*token.FileSet, *ast.File)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, identity+".go", artifact, parser.ParseComments)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnhancerFailed.Error()), "unit", identity)
	}
	edit(fset, file)

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnhancerFailed.Error()), "unit", identity)
	}
	return buf.Bytes(), nil
}

// isCall reports whether call is pkg.fn(...).
func isCall(call *ast.CallExpr, pkg, fn string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != fn {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	return ok && id.Name == pkg
}
