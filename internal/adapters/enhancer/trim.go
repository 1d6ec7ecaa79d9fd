package enhancer

import (
	"context"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// TrimName is the configuration name of the trim enhancer.
const TrimName = "trim"

// Trim collapses literal writes made only of whitespace to a single newline or space.
type Trim struct{}

// Name implements ports.Enhancer.
func (Trim) Name() string { return TrimName }

// Transform implements ports.Enhancer.
func (Trim) Transform(ctx context.Context, identity string, artifact []byte) ([]byte, error) {
	return rewrite(ctx, identity, artifact, func(_ *token.FileSet, file *ast.File) {
		astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
			call, ok := c.Node().(*ast.CallExpr)
			if !ok || !isCall(call, "io", "WriteString") || len(call.Args) != 2 {
				return true
			}
			lit, ok := call.Args[1].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				return true
			}
			text, err := strconv.Unquote(lit.Value)
			if err != nil || text == "" || strings.TrimSpace(text) != "" {
				return true
			}
			collapsed := " "
			if strings.Contains(text, "\n") {
				collapsed = "\n"
			}
			lit.Value = strconv.Quote(collapsed)
			return true
		})
	})
}
