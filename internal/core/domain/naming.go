package domain

import (
	"go/token"
	"go/types"
	"path"
	"slices"
	"strconv"
	"strings"
)

const (
	// UnitSuffix disambiguates unit identities from user-chosen names.
	UnitSuffix = "__qu"

	// TemplateBase is the resolved base of a page unit without a parent.
	TemplateBase = "TemplateBase"

	// TagBase is the resolved base of a tag unit.
	TagBase = "TagBase"

	// InnerSeparator joins a root unit's versioned name and an inner unit's local name.
	InnerSeparator = "$"

	// DefaultPackage is the package clause used for units without a namespace.
	DefaultPackage = "main"

	// InnerMarker prefixes the line that separates inner units in generated code.
	InnerMarker = "//quill:inner "
)

// Identity derives a unit identity from a suggested unit name.
func Identity(suggested string) string {
	return suggested + UnitSuffix
}

// VersionedName joins an identity and a version.
func VersionedName(identity string, version int64) string {
	return identity + "v" + strconv.FormatInt(version, 10)
}

// InnerName returns the versioned name of an inner unit of root.
func InnerName(rootName, local string) string {
	return rootName + InnerSeparator + local
}

// SuggestName maps a slash-separated template path to a dotted unit name.
// Each segment keeps only identifier characters; everything else becomes '_'.
func SuggestName(path string) string {
	path = strings.Trim(path, "/")
	segments := strings.Split(path, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		out = append(out, sanitizeSegment(seg))
	}
	return strings.Join(out, ".")
}

func sanitizeSegment(seg string) string {
	var b strings.Builder
	for i, r := range seg {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// SplitName splits a unit name into its namespace and simple name at the last '.'.
func SplitName(name string) (namespace, simple string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}

// PackageName returns the Go package clause for a namespace.
func PackageName(namespace string) string {
	if namespace == "" {
		return DefaultPackage
	}
	if idx := strings.LastIndexByte(namespace, '.'); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	if token.IsKeyword(namespace) {
		return namespace + "_"
	}
	return namespace
}

// IsArgumentName reports whether name can be used as a generated field and local variable.
func IsArgumentName(name string) bool {
	if !token.IsIdentifier(name) || name == "_" {
		return false
	}
	if _, reserved := reservedLocals[name]; reserved {
		return false
	}
	return types.Universe.Lookup(name) == nil
}

// IsBuildLocal reports whether name is a variable of the generated body-construction
// routine. Template expressions must not refer to them.
func IsBuildLocal(name string) bool {
	return slices.Contains(buildLocals, name)
}

var buildLocals = []string{"t", "v", "w", "body", "call", "err"}

// ImportName returns the package name an import path is referred to by: its last
// element, or the one before a major version suffix.
func ImportName(importPath string) string {
	dir, name := path.Split(strings.TrimSuffix(importPath, "/"))
	if len(name) > 1 && name[0] == 'v' && dir != "" {
		if _, err := strconv.Atoi(name[1:]); err == nil {
			return path.Base(dir)
		}
	}
	return name
}

// reservedLocals are identifiers the generated body-construction routine uses itself.
var reservedLocals = map[string]struct{}{
	"t":    {},
	"v":    {},
	"w":    {},
	"body": {},
	"call": {},
	"err":  {},
	"fmt":  {},
	"io":   {},
	"html": {},
	"unit": {},
	"toS":  {},
}
