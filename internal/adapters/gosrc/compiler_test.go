package gosrc_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/gosrc"
	"go.trai.ch/quill/internal/adapters/markup"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/engine/codegen"
)

type memSink struct {
	mu       sync.Mutex
	code     map[string]string
	compiled map[string][]byte
	inners   map[string][]byte
}

func newSink() *memSink {
	return &memSink{
		code:     make(map[string]string),
		compiled: make(map[string][]byte),
		inners:   make(map[string][]byte),
	}
}

func (s *memSink) GeneratedCode(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.code[name]
	return code, ok
}

func (s *memSink) SetCompiled(name string, artifact []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compiled[name] = artifact
}

func (s *memSink) AddInner(rootName, local string, artifact []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inners[domain.InnerName(rootName, local)] = artifact
}

type noParent struct{}

func (noParent) ResolveExtends(context.Context, string) (codegen.UnitRef, error) {
	return nil, domain.ErrUnitNotFound
}

func generated(t *testing.T, name, content string) string {
	t.Helper()
	res, err := codegen.New(markup.New(), noParent{}).Generate(context.Background(), codegen.Input{
		VersionedName: name,
		Content:       content,
	})
	require.NoError(t, err)
	return res.Code
}

func TestCompileByName_FormatsUnitsAndInners(t *testing.T) {
	sink := newSink()
	sink.code["page_html__qu1"] = generated(t, "page_html__qu1", "@args String who\n@def box(int n) {[@n]}\nhi @who @call box(1)")
	sink.code["other_html__qu2"] = generated(t, "other_html__qu2", "plain")

	err := gosrc.NewCompiler().CompileByName(context.Background(), []string{"page_html__qu1", "other_html__qu2"}, sink)
	require.NoError(t, err)

	require.Contains(t, sink.compiled, "page_html__qu1")
	require.Contains(t, sink.compiled, "other_html__qu2")
	main := string(sink.compiled["page_html__qu1"])
	assert.Contains(t, main, `const UnitName = "page_html__qu1"`)
	assert.NotContains(t, main, domain.InnerMarker, "inner units are split off")

	inner, ok := sink.inners["page_html__qu1$box"]
	require.True(t, ok)
	assert.Contains(t, string(inner), `const UnitName = "page_html__qu1$box"`)
}

func TestCompileByName_SyntaxError(t *testing.T) {
	sink := newSink()
	sink.code["bad__qu1"] = generated(t, "bad__qu1", "@{ 1 + }")

	err := gosrc.NewCompiler().CompileByName(context.Background(), []string{"bad__qu1"}, sink)
	require.Error(t, err)
	assert.Empty(t, sink.compiled)
}

func TestCompileByName_TypeError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"mismatched types", "@args String name\nHello @{ name + 1 }"},
		{"undefined name", "Hello @{ nobody }"},
		{"inner unit", "@def box(int n) {@{ n + \"x\" }}\n@call box(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := newSink()
			sink.code["bad__qu1"] = generated(t, "bad__qu1", tt.content)

			err := gosrc.NewCompiler().CompileByName(context.Background(), []string{"bad__qu1"}, sink)
			assert.True(t, domain.HasKind(err, domain.ErrTypeCheckFailed), "%v", err)
			assert.Empty(t, sink.compiled)
		})
	}
}

func TestCompileByName_NotGenerated(t *testing.T) {
	err := gosrc.NewCompiler().CompileByName(context.Background(), []string{"missing__qu1"}, newSink())
	assert.True(t, domain.HasKind(err, domain.ErrNotGenerated), "%v", err)
}

func TestCompileUnit_RejectsIncompleteUnits(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "missing build",
			code: "package main\n\nconst UnitName = \"x__qu1\"\n\nfunc New() any { return nil }\n",
			want: "does not declare",
		},
		{
			name: "foreign unit name",
			code: strings.ReplaceAll(generated(t, "y__qu1", "y"), "y__qu1", "z__qu9"),
			want: "unit name does not match",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gosrc.CompileUnit("x__qu1", tt.code)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSplit(t *testing.T) {
	code := "package a\n\n" + domain.InnerMarker + "one\npackage a\n// one\n\n" + domain.InnerMarker + "two\npackage a\n"

	got := gosrc.Split(code)

	want := []gosrc.Part{
		{Source: "package a\n"},
		{Local: "one", Source: "package a\n// one\n"},
		{Local: "two", Source: "package a\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit_NoInners(t *testing.T) {
	got := gosrc.Split("package a\n")
	assert.Equal(t, []gosrc.Part{{Source: "package a\n"}}, got)
}
