package domain

import "strings"

// TypeKind classifies a declared argument type by how it is defaulted and bound.
type TypeKind uint8

const (
	// KindReference is any type without a builtin default; it defaults to nil.
	KindReference TypeKind = iota
	// KindString is a string-like type.
	KindString
	// KindBool is a boolean.
	KindBool
	// KindChar is a single character.
	KindChar
	// KindInt is a signed integer of any width.
	KindInt
	// KindFloat is a single or double precision float.
	KindFloat
)

// String returns the name of the kind.
func (k TypeKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "reference"
	}
}

// ArgType is a declared argument type resolved to its Go representation.
type ArgType struct {
	// Declared is the type as written in the template.
	Declared string
	// GoType is the Go type expression used for the generated field.
	GoType string
	// Kind drives default derivation and positional coercion.
	Kind TypeKind
}

type builtinType struct {
	goType string
	kind   TypeKind
}

var builtinTypes = map[string]builtinType{
	"String":  {"string", KindString},
	"string":  {"string", KindString},
	"boolean": {"bool", KindBool},
	"bool":    {"bool", KindBool},
	"char":    {"rune", KindChar},
	"rune":    {"rune", KindChar},
	"byte":    {"int8", KindInt},
	"int8":    {"int8", KindInt},
	"short":   {"int16", KindInt},
	"int16":   {"int16", KindInt},
	"int":     {"int", KindInt},
	"int32":   {"int32", KindInt},
	"long":    {"int64", KindInt},
	"int64":   {"int64", KindInt},
	"float":   {"float32", KindFloat},
	"float32": {"float32", KindFloat},
	"double":  {"float64", KindFloat},
	"float64": {"float64", KindFloat},
}

// ParseType resolves a declared type name. Unknown names are kept verbatim as
// Go type expressions of reference kind.
func ParseType(declared string) ArgType {
	declared = strings.TrimSpace(declared)
	if b, ok := builtinTypes[declared]; ok {
		return ArgType{Declared: declared, GoType: b.goType, Kind: b.kind}
	}
	return ArgType{Declared: declared, GoType: declared, Kind: KindReference}
}

// IsStringLike reports whether positional binding converts values to text.
func (t ArgType) IsStringLike() bool {
	return t.Kind == KindString
}

// DefaultLiteral returns the Go literal for the type-derived default.
// The empty string means the default is nil and no initialiser is emitted.
func (t ArgType) DefaultLiteral() string {
	switch t.Kind {
	case KindString:
		return `""`
	case KindBool:
		return "false"
	case KindChar:
		return "rune(0)"
	case KindInt:
		return "0"
	case KindFloat:
		return "0.0"
	default:
		return ""
	}
}

// DefaultValue returns the type-derived default as a Go value.
func (t ArgType) DefaultValue() any {
	switch t.Kind {
	case KindString:
		return ""
	case KindBool:
		return false
	case KindChar:
		return rune(0)
	case KindInt:
		return 0
	case KindFloat:
		return 0.0
	default:
		return nil
	}
}

// ArgumentDeclaration is one entry of a unit's argument table.
type ArgumentDeclaration struct {
	Name string
	Type ArgType
}

// DefaultArg is an engine-supplied default argument merged into every unit.
type DefaultArg struct {
	Name string
	Type string
}
