package enhancer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/enhancer"
	"go.trai.ch/quill/internal/core/domain"
)

const unit = `// Code generated by quill. DO NOT EDIT.

package main

import (
	"fmt"
	"io"
)

const UnitName = "page_html__qu1"

func Build(w io.Writer, name string) error {
	if _, err := io.WriteString(w, "<p>"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, name); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n\n   "); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  "); err != nil {
		return err
	}
	return nil
}
`

func TestChain(t *testing.T) {
	chain, err := enhancer.Chain([]string{"trim", "escape"})
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "trim", chain[0].Name())
	assert.Equal(t, "escape", chain[1].Name())

	_, err = enhancer.Chain([]string{"escape", "minify"})
	assert.True(t, domain.HasKind(err, domain.ErrUnknownEnhancer), "%v", err)

	assert.Equal(t, []string{"banner", "escape", "trim"}, enhancer.Names())
	assert.True(t, enhancer.Known("banner"))
	assert.False(t, enhancer.Known("minify"))
}

func TestEscape(t *testing.T) {
	out, err := enhancer.Escape{}.Transform(context.Background(), "page_html__qu", []byte(unit))
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "fmt.Fprint(w, html.EscapeString(fmt.Sprint(name)))")
	assert.Contains(t, src, `"html"`)
	assert.Contains(t, src, `io.WriteString(w, "<p>")`, "literal text is not escaped")

	again, err := enhancer.Escape{}.Transform(context.Background(), "page_html__qu", out)
	require.NoError(t, err)
	assert.Equal(t, src, string(again), "escaping is idempotent")
}

func TestEscape_NoExpressionsKeepsImports(t *testing.T) {
	src := "package main\n\nimport \"io\"\n\nfunc Build(w io.Writer) { _, _ = io.WriteString(w, \"x\") }\n"

	out, err := enhancer.Escape{}.Transform(context.Background(), "x", []byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"html"`)
}

func TestTrim(t *testing.T) {
	out, err := enhancer.Trim{}.Transform(context.Background(), "page_html__qu", []byte(unit))
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, `io.WriteString(w, "\n")`)
	assert.Contains(t, src, `io.WriteString(w, " ")`)
	assert.Contains(t, src, `io.WriteString(w, "<p>")`)
}

func TestBanner(t *testing.T) {
	out, err := enhancer.Banner{}.Transform(context.Background(), "page_html__qu", []byte(unit))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "// Enhanced by quill for page_html__qu.\n"))
	assert.Contains(t, string(out), "// Code generated by quill. DO NOT EDIT.")

	again, err := enhancer.Banner{}.Transform(context.Background(), "page_html__qu", out)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestTransform_InvalidSourceFails(t *testing.T) {
	for _, name := range enhancer.Names() {
		t.Run(name, func(t *testing.T) {
			chain, err := enhancer.Chain([]string{name})
			require.NoError(t, err)
			_, err = chain[0].Transform(context.Background(), "x", []byte("package main\nfunc ("))
			assert.True(t, domain.HasKind(err, domain.ErrEnhancerFailed), "%v", err)
		})
	}
}

func TestTransform_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := enhancer.Escape{}.Transform(ctx, "x", []byte(unit))
	require.ErrorIs(t, err, context.Canceled)
}
