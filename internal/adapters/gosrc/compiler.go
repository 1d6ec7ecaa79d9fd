// Package gosrc compiles generated template units into formatted, type-checked Go source.
package gosrc

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"runtime"
	"strconv"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// requiredFuncs are the package-level entry points every unit must declare.
var requiredFuncs = []string{
	"New", "Clone", "ArgNames",
	"SetRenderArgs", "SetRenderArgsAt", "SetRenderArg", "SetRenderArgAt",
	"Build",
}

// Compiler implements ports.SourceCompiler for generated Go source.
type Compiler struct {
	jobs int
}

// NewCompiler creates a Compiler that checks up to GOMAXPROCS units at a time.
func NewCompiler() *Compiler {
	return &Compiler{jobs: runtime.GOMAXPROCS(0)}
}

// CompileByName compiles every named unit and reports the artifacts through sink.
// The first failure cancels the remaining units.
func (c *Compiler) CompileByName(ctx context.Context, names []string, sink ports.ArtifactSink) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)

	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			code, ok := sink.GeneratedCode(name)
			if !ok {
				return zerr.With(domain.ErrNotGenerated, "name", name)
			}
			parts, err := CompileUnit(name, code)
			if err != nil {
				return err
			}
			sink.SetCompiled(name, parts[0].Artifact)
			for _, inner := range parts[1:] {
				sink.AddInner(name, inner.Local, inner.Artifact)
			}
			return nil
		})
	}
	return g.Wait()
}

// Compiled is the artifact of one part of a unit.
type Compiled struct {
	Local    string
	Artifact []byte
}

// CompileUnit checks and formats every part of the generated code of name.
// The outer unit comes first.
func CompileUnit(name, code string) ([]Compiled, error) {
	parts := Split(code)
	out := make([]Compiled, 0, len(parts))
	for _, part := range parts {
		unitName := name
		if part.Local != "" {
			unitName = domain.InnerName(name, part.Local)
		}
		artifact, err := compileFile(unitName, part.Source)
		if err != nil {
			return nil, err
		}
		out = append(out, Compiled{Local: part.Local, Artifact: artifact})
	}
	return out, nil
}

func compileFile(name, src string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, name+".go", src, parser.AllErrors|parser.ParseComments)
	if err != nil {
		return nil, zerr.With(err, "unit", name)
	}
	if err := checkDecls(file, name); err != nil {
		return nil, err
	}
	if err := typeCheck(src); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTypeCheckFailed.Error()), "unit", name)
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, zerr.With(err, "unit", name)
	}
	return buf.Bytes(), nil
}

// checkDecls verifies that the file declares the unit API under the expected name.
func checkDecls(file *ast.File, name string) error {
	funcs := make(map[string]bool)
	var unitName string
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				funcs[d.Name.Name] = true
			}
		case *ast.GenDecl:
			if d.Tok != token.CONST {
				continue
			}
			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, ident := range vs.Names {
					if ident.Name != "UnitName" || i >= len(vs.Values) {
						continue
					}
					if lit, ok := vs.Values[i].(*ast.BasicLit); ok && lit.Kind == token.STRING {
						unitName, _ = strconv.Unquote(lit.Value)
					}
				}
			}
		}
	}

	for _, fn := range requiredFuncs {
		if !funcs[fn] {
			return zerr.With(zerr.With(zerr.New("unit does not declare "+fn), "unit", name), "func", fn)
		}
	}
	if unitName != name {
		return zerr.With(zerr.New("unit name does not match"), "unit", name)
	}
	return nil
}

// typeCheck compiles src in a fresh interpreter without running it, the way the loader
// will evaluate it. Undefined names and mismatched types are reported here.
func typeCheck(src string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("interpreter panic: %v", r)
		}
	}()
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return err
	}
	_, err = i.Compile(src)
	return err
}
