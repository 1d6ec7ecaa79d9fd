package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/quill/internal/core/domain"
)

func TestParseType_Defaults(t *testing.T) {
	tests := []struct {
		declared string
		goType   string
		literal  string
		value    any
	}{
		{"String", "string", `""`, ""},
		{"boolean", "bool", "false", false},
		{"char", "rune", "rune(0)", rune(0)},
		{"byte", "int8", "0", 0},
		{"short", "int16", "0", 0},
		{"int", "int", "0", 0},
		{"long", "int64", "0", 0},
		{"float", "float32", "0.0", 0.0},
		{"double", "float64", "0.0", 0.0},
		{"[]string", "[]string", "", nil},
		{"map[string]any", "map[string]any", "", nil},
		{"User", "User", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			typ := domain.ParseType(tt.declared)
			assert.Equal(t, tt.goType, typ.GoType)
			assert.Equal(t, tt.literal, typ.DefaultLiteral())
			assert.Equal(t, tt.value, typ.DefaultValue())
		})
	}
}

func TestParseType_StringLike(t *testing.T) {
	assert.True(t, domain.ParseType("String").IsStringLike())
	assert.True(t, domain.ParseType(" string ").IsStringLike())
	assert.False(t, domain.ParseType("int").IsStringLike())
	assert.False(t, domain.ParseType("any").IsStringLike())
}
