package markup_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/markup"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
)

// recorder captures builder calls and, once replayed, fragment contributions.
type recorder struct {
	events    []string
	fragments []ports.Fragment
	extends   []string
}

func (r *recorder) AddImport(path string) { r.events = append(r.events, "import "+path) }
func (r *recorder) DefineTag(name string) { r.events = append(r.events, "tag "+name) }
func (r *recorder) SetExtends(parent string) error {
	r.extends = append(r.extends, parent)
	if len(r.extends) > 1 {
		return errors.Join(domain.ErrDuplicateExtends, errors.New(parent))
	}
	r.events = append(r.events, "extends "+parent)
	return nil
}

func (r *recorder) AddArgumentDeclaration(typ, name string) error {
	r.events = append(r.events, "arg "+typ+" "+name)
	return nil
}
func (r *recorder) AddFragment(f ports.Fragment) { r.fragments = append(r.fragments, f) }

func (r *recorder) Text(s string)    { r.events = append(r.events, fmt.Sprintf("text %q", s)) }
func (r *recorder) Expr(expr string) { r.events = append(r.events, "expr "+expr) }
func (r *recorder) Slot()            { r.events = append(r.events, "slot") }
func (r *recorder) Call(name, args string) {
	r.events = append(r.events, "call "+name+"("+args+")")
}

func (r *recorder) Inner(name string, params []ports.Param, content string) error {
	r.events = append(r.events, fmt.Sprintf("inner %s %v %q", name, params, content))
	return nil
}

func parse(t *testing.T, src string) *recorder {
	t.Helper()
	r := &recorder{}
	require.NoError(t, markup.New().Parse(context.Background(), src, r))
	for _, f := range r.fragments {
		require.NoError(t, f.Invoke(r))
	}
	for _, f := range r.fragments {
		require.NoError(t, f.Emit(r))
	}
	return r
}

func TestParse_Directives(t *testing.T) {
	src := "@import strings\n@extends(\"layout.html\")\n@args String foo, int count\nHello @foo!\n"
	got := parse(t, src).events

	want := []string{
		"import strings",
		`extends layout.html`,
		"arg String foo",
		"arg int count",
		`text "Hello "`,
		"expr foo",
		`text "!\n"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Expressions(t *testing.T) {
	got := parse(t, "a @user.Name b @{ strings.ToUpper(foo) } c @@ d me@@x.io @ e").events

	want := []string{
		`text "a "`,
		"expr user.Name",
		`text " b "`,
		"expr  strings.ToUpper(foo) ",
		`text " c @ d me@x.io @ e"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_TagSlotCallDef(t *testing.T) {
	src := "@tag(greeting)\n<main>@render()</main>@call hello(name, \"x)\")@def header(String title, int level) {\n<h1>@title</h1>}\n"
	got := parse(t, src).events

	want := []string{
		"tag greeting",
		`text "<main>"`,
		"slot",
		`text "</main>"`,
		`call hello(name, "x)")`,
		`inner header [{String title} {int level}] "<h1>@title</h1>"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ArgsWithCompositeTypes(t *testing.T) {
	got := parse(t, "@args map[string]any meta, []string items, func(int, int) int f\n").events

	want := []string{
		"arg map[string]any meta",
		"arg []string items",
		"arg func(int, int) int f",
	}
	assert.Equal(t, want, got)
}

func TestParse_SecondExtendsFails(t *testing.T) {
	r := &recorder{}
	err := markup.New().Parse(context.Background(), "@extends(a)\n@extends(b)\n", r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateExtends))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated expression", "hello @{ foo"},
		{"unterminated call", "@call hello(a"},
		{"empty expression", "@{  }"},
		{"def without body", "@def header(String t) nope"},
		{"args without name", "@args String\n"},
		{"call without name", "@call (x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := markup.New().Parse(context.Background(), tt.src, &recorder{})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrParse.Error())
		})
	}
}

func TestParse_ReservedNames(t *testing.T) {
	rejected := []string{
		"@call",
		"@call\nhello()",
		"@body",
		"@t",
		"@w.Write",
		"@{ w }",
		"@{ len(body) }",
		"@{ fmt.Sprint(call) }",
	}
	for _, src := range rejected {
		t.Run(src, func(t *testing.T) {
			err := markup.New().Parse(context.Background(), src, &recorder{})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrParse.Error())
		})
	}

	got := parse(t, "@user.body @{ item.t } @{ fmt.Sprint(1) } @caller").events
	want := []string{
		"expr user.body",
		`text " "`,
		"expr  item.t ",
		`text " "`,
		"expr  fmt.Sprint(1) ",
		`text " "`,
		"expr caller",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
