package resource

import (
	"sync/atomic"

	"go.trai.ch/quill/internal/core/ports"
)

// InlinePrefix starts the stable key of every inline template.
const InlinePrefix = "inline:"

var _ ports.Resource = (*Inline)(nil)

// Inline is template text passed directly instead of a file. Its content never changes.
type Inline struct {
	text   string
	digest string
	seen   atomic.Bool
}

// NewInline creates an inline resource keyed by the digest of text.
func NewInline(text, digest string) *Inline {
	return &Inline{text: text, digest: digest}
}

// HasChanged returns true on the first call only.
func (r *Inline) HasChanged() bool {
	return !r.seen.Swap(true)
}

// Content returns the template text.
func (r *Inline) Content() (string, error) { return r.text, nil }

// SuggestedUnitName returns a unit name derived from the digest.
func (r *Inline) SuggestedUnitName() string { return "inline_" + r.digest }

// StableKey returns the inline prefix followed by the digest.
func (r *Inline) StableKey() string { return InlinePrefix + r.digest }

// TagName returns the empty string; inline templates are pages.
func (r *Inline) TagName() string { return "" }

func (r *Inline) markDirty() {
	r.seen.Store(false)
}
