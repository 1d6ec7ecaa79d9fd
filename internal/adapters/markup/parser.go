// Package markup implements the template directive parser.
package markup

import (
	"context"
	"go/ast"
	"go/parser"
	"strings"
	"unicode"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Parser = (*Parser)(nil)

// Parser scans template text for @-directives.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse feeds the directives and fragments of content to b.
func (p *Parser) Parse(_ context.Context, content string, b ports.Builder) error {
	s := &scanner{src: content, line: 1, b: b}
	return s.run()
}

type scanner struct {
	src  string
	pos  int
	line int
	text strings.Builder
	b    ports.Builder
}

func (s *scanner) fail(reason string) error {
	return zerr.With(zerr.With(domain.ErrParse, "line", s.line), "reason", reason)
}

func (s *scanner) rest() string {
	return s.src[s.pos:]
}

func (s *scanner) advance(n int) {
	s.line += strings.Count(s.src[s.pos:s.pos+n], "\n")
	s.pos += n
}

func (s *scanner) flush() {
	if s.text.Len() == 0 {
		return
	}
	s.b.AddFragment(textFragment{text: s.text.String()})
	s.text.Reset()
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		idx := strings.IndexByte(s.rest(), '@')
		if idx < 0 {
			s.text.WriteString(s.rest())
			s.advance(len(s.rest()))
			break
		}
		s.text.WriteString(s.rest()[:idx])
		s.advance(idx)
		if err := s.directive(); err != nil {
			return err
		}
	}
	s.flush()
	return nil
}

// directive handles the text starting at an '@'.
//
//nolint:cyclop // One branch per directive keeps the grammar readable.
func (s *scanner) directive() error {
	r := s.rest()
	switch {
	case strings.HasPrefix(r, "@@"):
		s.text.WriteByte('@')
		s.advance(2)
	case strings.HasPrefix(r, "@import "):
		s.advance(len("@import "))
		s.b.AddImport(s.takeLine())
	case strings.HasPrefix(r, "@extends("):
		s.advance(len("@extends"))
		arg, err := s.takeBalanced('(', ')')
		if err != nil {
			return err
		}
		s.skipNewline()
		return s.b.SetExtends(unquote(arg))
	case strings.HasPrefix(r, "@tag("):
		s.advance(len("@tag"))
		arg, err := s.takeBalanced('(', ')')
		if err != nil {
			return err
		}
		s.skipNewline()
		s.b.DefineTag(unquote(arg))
	case strings.HasPrefix(r, "@args "):
		s.advance(len("@args "))
		params, err := s.params(s.takeLine())
		if err != nil {
			return err
		}
		s.flush()
		s.b.AddFragment(argsFragment{params: params})
	case strings.HasPrefix(r, "@render()"):
		s.advance(len("@render()"))
		s.flush()
		s.b.AddFragment(slotFragment{})
	case identPath(r[1:]) == "call":
		return s.call()
	case strings.HasPrefix(r, "@def "):
		return s.def()
	case strings.HasPrefix(r, "@{"):
		s.advance(1)
		expr, err := s.takeBalanced('{', '}')
		if err != nil {
			return err
		}
		if strings.TrimSpace(expr) == "" {
			return s.fail("empty expression")
		}
		if err := s.checkLocals(expr); err != nil {
			return err
		}
		s.flush()
		s.b.AddFragment(exprFragment{expr: expr})
	default:
		path := identPath(r[1:])
		if path == "" {
			s.text.WriteByte('@')
			s.advance(1)
			return nil
		}
		if err := s.checkLocals(path); err != nil {
			return err
		}
		s.advance(1 + len(path))
		s.flush()
		s.b.AddFragment(exprFragment{expr: path})
	}
	return nil
}

func (s *scanner) call() error {
	s.advance(len("@call"))
	rest := s.rest()
	s.advance(len(rest) - len(strings.TrimLeft(rest, " \t")))
	name := identPath(s.rest())
	if name == "" {
		return s.fail("call without a name")
	}
	s.advance(len(name))
	args := ""
	if strings.HasPrefix(s.rest(), "(") {
		var err error
		if args, err = s.takeBalanced('(', ')'); err != nil {
			return err
		}
	}
	s.flush()
	s.b.AddFragment(callFragment{name: name, args: args})
	return nil
}

func (s *scanner) def() error {
	s.advance(len("@def "))
	name := identPath(s.rest())
	if name == "" || strings.Contains(name, ".") {
		return s.fail("nested unit needs a simple name")
	}
	s.advance(len(name))

	var params []ports.Param
	if strings.HasPrefix(s.rest(), "(") {
		list, err := s.takeBalanced('(', ')')
		if err != nil {
			return err
		}
		if params, err = s.params(list); err != nil {
			return err
		}
	}
	s.skipSpaces()
	if !strings.HasPrefix(s.rest(), "{") {
		return s.fail("nested unit needs a body")
	}
	body, err := s.takeBalanced('{', '}')
	if err != nil {
		return err
	}
	s.skipNewline()
	s.flush()
	s.b.AddFragment(nestedFragment{name: name, params: params, content: strings.TrimPrefix(body, "\n")})
	return nil
}

// checkLocals rejects an expression that refers to a variable of the generated
// body-construction routine. Text that is not a Go expression is left to the compiler.
func (s *scanner) checkLocals(expr string) error {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return nil
	}
	var found string
	var visit func(ast.Node) bool
	visit = func(n ast.Node) bool {
		if found != "" {
			return false
		}
		switch n := n.(type) {
		case *ast.SelectorExpr:
			// Only the operand can name a variable; Sel is a field or method.
			ast.Inspect(n.X, visit)
			return false
		case *ast.Ident:
			if domain.IsBuildLocal(n.Name) {
				found = n.Name
			}
		}
		return true
	}
	ast.Inspect(x, visit)
	if found != "" {
		return s.fail("expression refers to reserved name " + found)
	}
	return nil
}

// takeLine consumes up to and including the next newline and returns the trimmed line.
func (s *scanner) takeLine() string {
	r := s.rest()
	idx := strings.IndexByte(r, '\n')
	if idx < 0 {
		s.advance(len(r))
		return strings.TrimSpace(r)
	}
	s.advance(idx + 1)
	return strings.TrimSpace(r[:idx])
}

// takeBalanced consumes a bracketed group starting at open and returns its inner text.
// Brackets inside string literals are ignored.
func (s *scanner) takeBalanced(open, closing byte) (string, error) {
	r := s.rest()
	if len(r) == 0 || r[0] != open {
		return "", s.fail("expected " + string(open))
	}
	depth := 0
	var quote byte
	for i := 0; i < len(r); i++ {
		c := r[i]
		if quote != 0 {
			switch {
			case c == '\\' && quote != '`':
				i++
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				s.advance(i + 1)
				return r[1:i], nil
			}
		}
	}
	return "", s.fail("unterminated " + string(open))
}

func (s *scanner) skipSpaces() {
	r := s.rest()
	n := len(r) - len(strings.TrimLeft(r, " \t\r\n"))
	s.advance(n)
}

func (s *scanner) skipNewline() {
	r := s.rest()
	switch {
	case strings.HasPrefix(r, "\r\n"):
		s.advance(2)
	case strings.HasPrefix(r, "\n"):
		s.advance(1)
	}
}

// params parses a comma-separated list of "Type name" pairs.
func (s *scanner) params(list string) ([]ports.Param, error) {
	var out []ports.Param
	for _, item := range splitTopLevel(list) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		idx := strings.LastIndexAny(item, " \t")
		if idx < 0 {
			return nil, s.fail("argument declaration needs a type and a name: " + item)
		}
		out = append(out, ports.Param{
			Type: strings.TrimSpace(item[:idx]),
			Name: strings.TrimSpace(item[idx+1:]),
		})
	}
	return out, nil
}

// splitTopLevel splits on commas outside brackets.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// identPath returns the leading identifier or dotted identifier path of s.
func identPath(s string) string {
	end := 0
	expectIdent := true
	for i, r := range s {
		switch {
		case expectIdent && (r == '_' || unicode.IsLetter(r)):
			expectIdent = false
			end = i + len(string(r))
		case !expectIdent && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)):
			end = i + len(string(r))
		case !expectIdent && r == '.':
			expectIdent = true
		default:
			return s[:end]
		}
	}
	return s[:end]
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
