package loader_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/gosrc"
	"go.trai.ch/quill/internal/adapters/loader"
	"go.trai.ch/quill/internal/adapters/markup"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/codegen"
)

type noParent struct{}

func (noParent) ResolveExtends(context.Context, string) (codegen.UnitRef, error) {
	return nil, domain.ErrUnitNotFound
}

// compile generates and compiles a unit and returns its artifacts, the outer unit first.
func compile(t *testing.T, in codegen.Input) []gosrc.Compiled {
	t.Helper()
	res, err := codegen.New(markup.New(), noParent{}).Generate(context.Background(), in)
	require.NoError(t, err)
	parts, err := gosrc.CompileUnit(in.VersionedName, res.Code)
	require.NoError(t, err)
	return parts
}

func load(t *testing.T, name, content string) ports.Handle {
	t.Helper()
	parts := compile(t, codegen.Input{VersionedName: name, Content: content})
	h, err := loader.New().Load(context.Background(), name, parts[0].Artifact)
	require.NoError(t, err)
	return h
}

func build(t *testing.T, inst ports.Instance, body string, call ports.CallFunc) string {
	t.Helper()
	var out strings.Builder
	clone, err := inst.Clone(&out)
	require.NoError(t, err)
	require.NoError(t, clone.Build(body, call))
	return out.String()
}

func TestLoad_DefaultsAndNamedBinding(t *testing.T) {
	h := load(t, "page_html__qu1", "@args String name, int count\nHi @name #@count")
	master, err := h.Construct()
	require.NoError(t, err)

	assert.Equal(t, "page_html__qu1", h.Name())
	assert.Equal(t, domain.TemplateBase, master.BaseName())
	assert.Empty(t, master.TagName())
	assert.Equal(t, []string{"name", "count"}, master.ArgNames())
	assert.Equal(t, "Hi  #0", build(t, master, "", nil))

	require.NoError(t, master.SetRenderArgs(map[string]any{"name": "Ann", "count": 3, "unknown": true}))
	assert.Equal(t, "Hi Ann #3", build(t, master, "", nil))

	require.NoError(t, master.SetRenderArg("count", nil))
	assert.Equal(t, "Hi Ann #0", build(t, master, "", nil), "nil binds the zero value")
}

func TestLoad_PositionalBindingStringifies(t *testing.T) {
	h := load(t, "p__qu1", "@args String name, int count\n[@name/@count]")
	master, err := h.Construct()
	require.NoError(t, err)

	require.NoError(t, master.SetRenderArgsAt(42, 7))
	assert.Equal(t, "[42/7]", build(t, master, "", nil))

	require.NoError(t, master.SetRenderArgAt(0, nil))
	assert.Equal(t, "[/7]", build(t, master, "", nil))
	require.NoError(t, master.SetRenderArgAt(5, "ignored"))
}

func TestLoad_TypeMismatchNamesArgument(t *testing.T) {
	h := load(t, "p__qu1", "@args int count\n@count")
	master, err := h.Construct()
	require.NoError(t, err)

	err = master.SetRenderArg("count", "seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument count")
	assert.Contains(t, err.Error(), "string")

	err = master.SetRenderArgAt(0, 1.5)
	require.Error(t, err)
}

func TestLoad_ClonesAreIsolated(t *testing.T) {
	h := load(t, "p__qu1", "@args String name\n<@name>")
	master, err := h.Construct()
	require.NoError(t, err)

	var a, b strings.Builder
	first, err := master.Clone(&a)
	require.NoError(t, err)
	second, err := master.Clone(&b)
	require.NoError(t, err)

	require.NoError(t, first.SetRenderArg("name", "first"))
	require.NoError(t, first.Build("", nil))
	require.NoError(t, second.Build("", nil))

	assert.Equal(t, "<first>", a.String())
	assert.Equal(t, "<>", b.String())
	assert.Equal(t, "<>", build(t, master, "", nil), "the master keeps its defaults")
}

func TestLoad_SlotAndCalls(t *testing.T) {
	h := load(t, "layout_html__qu1", "@args String title\n<main>@render()</main>@call badge(title, 2)")
	master, err := h.Construct()
	require.NoError(t, err)
	require.NoError(t, master.SetRenderArg("title", "T"))

	var calls []string
	call := func(name string, args ...any) (string, error) {
		calls = append(calls, fmt.Sprint(name, args))
		return "<b/>", nil
	}

	assert.Equal(t, "<main>BODY</main><b/>", build(t, master, "BODY", call))
	assert.Equal(t, []string{"badge[T 2]"}, calls)
}

func TestLoad_CallWithoutCallerFails(t *testing.T) {
	h := load(t, "p__qu1", "@call missing()")
	master, err := h.Construct()
	require.NoError(t, err)

	clone, err := master.Clone(nil)
	require.NoError(t, err)
	err = clone.Build("", nil)
	assert.True(t, domain.HasKind(err, domain.ErrTagNotFound), "%v", err)
}

func TestLoad_TagAndNamespace(t *testing.T) {
	parts := compile(t, codegen.Input{
		VersionedName: "tags.badge_html__qu4",
		Content:       "@import strings\n@args String label\n@{ strings.ToUpper(label) }",
		TagName:       "badge",
	})
	h, err := loader.New().Load(context.Background(), "tags.badge_html__qu4", parts[0].Artifact)
	require.NoError(t, err)
	master, err := h.Construct()
	require.NoError(t, err)

	assert.Equal(t, "badge", master.TagName())
	assert.Equal(t, domain.TagBase, master.BaseName())
	require.NoError(t, master.SetRenderArgsAt("new"))
	assert.Equal(t, "NEW", build(t, master, "", nil))
}

func TestLoad_InnerUnit(t *testing.T) {
	parts := compile(t, codegen.Input{
		VersionedName: "page_html__qu2",
		Content:       "@def box(int n) {[@n]}\n@call box(1)",
	})
	require.Len(t, parts, 2)
	require.Equal(t, "box", parts[1].Local)

	name := domain.InnerName("page_html__qu2", "box")
	h, err := loader.New().Load(context.Background(), name, parts[1].Artifact)
	require.NoError(t, err)
	master, err := h.Construct()
	require.NoError(t, err)

	require.NoError(t, master.SetRenderArgsAt(5))
	assert.Equal(t, "[5]", build(t, master, "", nil))
}

func TestLoad_Failures(t *testing.T) {
	good := compile(t, codegen.Input{VersionedName: "p__qu1", Content: "x"})[0].Artifact

	tests := []struct {
		name     string
		unit     string
		artifact []byte
	}{
		{"syntax", "p__qu1", []byte("package main\nfunc (")},
		{"other unit", "q__qu1", good},
		{"missing api", "p__qu1", []byte("package main\n\nconst UnitName = \"p__qu1\"\n")},
		{"unknown import", "p__qu1", []byte("package main\n\nimport \"example.com/nope\"\n\nconst UnitName = \"p__qu1\"\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.New().Load(context.Background(), tt.unit, tt.artifact)
			assert.True(t, domain.HasKind(err, domain.ErrLoadFailed), "%v", err)
		})
	}
}
