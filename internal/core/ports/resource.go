// Package ports defines the core interfaces for the application.
package ports

//go:generate mockgen -source=resource.go -destination=mocks/mock_resource.go -package=mocks

// Resource supplies template text and change detection for one template.
type Resource interface {
	// HasChanged reports whether the content changed since the previous call.
	// The first call always returns true.
	HasChanged() bool
	// Content returns the current template text.
	Content() (string, error)
	// SuggestedUnitName returns the dotted unit name derived from the resource.
	SuggestedUnitName() string
	// StableKey returns the version-independent key of the resource.
	StableKey() string
	// TagName returns the tag name when the resource is a tag template.
	TagName() string
}

// ResourceLocator resolves template identifiers to resources.
type ResourceLocator interface {
	// Open returns the template file at the slash path relative to the template root.
	Open(path string) (Resource, error)
	// Get returns the template file named by identifier, or an inline
	// resource holding identifier as template text.
	Get(identifier string) (Resource, error)
	// FindTag looks up a tag template by name.
	FindTag(name string) (Resource, bool)
	// KeyFor maps an absolute file path to the stable key of its resource.
	KeyFor(path string) (string, bool)
	// MarkDirty forces the next HasChanged of the resource with key to re-check its content.
	MarkDirty(key string)
}
