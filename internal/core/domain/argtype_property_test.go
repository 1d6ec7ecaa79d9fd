//go:build property

package domain_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.trai.ch/quill/internal/core/domain"
)

func TestArgTypeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("unknown types default to nil and keep their spelling", prop.ForAll(
		func(name string) bool {
			typ := domain.ParseType("T" + name)
			return typ.Kind == domain.KindReference &&
				typ.GoType == "T"+name &&
				typ.DefaultLiteral() == "" &&
				typ.DefaultValue() == nil
		},
		gen.AlphaString(),
	))

	properties.Property("builtin defaults are deterministic", prop.ForAll(
		func(declared string) bool {
			a, b := domain.ParseType(declared), domain.ParseType(declared)
			return a == b && a.DefaultLiteral() != "" && a.DefaultValue() != nil
		},
		gen.OneConstOf("String", "string", "boolean", "bool", "char", "rune", "byte",
			"short", "int", "int32", "long", "float", "double"),
	))

	properties.TestingRun(t)
}
