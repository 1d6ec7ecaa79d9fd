package enhancer

import (
	"context"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// EscapeName is the configuration name of the escape enhancer.
const EscapeName = "escape"

// Escape HTML-escapes every printed expression: fmt.Fprint(w, x) becomes
// fmt.Fprint(w, html.EscapeString(fmt.Sprint(x))). Literal text is left alone.
type Escape struct{}

// Name implements ports.Enhancer.
func (Escape) Name() string { return EscapeName }

// Transform implements ports.Enhancer.
func (Escape) Transform(ctx context.Context, identity string, artifact []byte) ([]byte, error) {
	return rewrite(ctx, identity, artifact, func(fset *token.FileSet, file *ast.File) {
		changed := false
		astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
			call, ok := c.Node().(*ast.CallExpr)
			if !ok || !isCall(call, "fmt", "Fprint") || len(call.Args) != 2 || isEscaped(call.Args[1]) {
				return true
			}
			call.Args[1] = &ast.CallExpr{
				Fun: &ast.SelectorExpr{X: ast.NewIdent("html"), Sel: ast.NewIdent("EscapeString")},
				Args: []ast.Expr{&ast.CallExpr{
					Fun:  &ast.SelectorExpr{X: ast.NewIdent("fmt"), Sel: ast.NewIdent("Sprint")},
					Args: []ast.Expr{call.Args[1]},
				}},
			}
			changed = true
			return true
		})
		if changed {
			astutil.AddImport(fset, file, "html")
		}
	})
}

func isEscaped(expr ast.Expr) bool {
	call, ok := expr.(*ast.CallExpr)
	return ok && isCall(call, "html", "EscapeString")
}
