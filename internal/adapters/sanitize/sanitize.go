// Package sanitize post-processes rendered output with bluemonday policies.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Sanitizer = (*Sanitizer)(nil)

// Sanitizer applies one bluemonday policy to rendered output.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New returns the sanitizer for policy. SanitizeNone and the empty policy yield nil,
// which the lifecycle manager treats as no sanitising.
func New(policy domain.SanitizePolicy) (*Sanitizer, error) {
	switch policy {
	case "", domain.SanitizeNone:
		return nil, nil
	case domain.SanitizeUGC:
		return &Sanitizer{policy: bluemonday.UGCPolicy()}, nil
	case domain.SanitizeStrict:
		return &Sanitizer{policy: bluemonday.StrictPolicy()}, nil
	}
	return nil, zerr.With(domain.ErrInvalidSanitizePolicy, "policy", string(policy))
}

// Sanitize implements ports.Sanitizer.
func (s *Sanitizer) Sanitize(rendered string) string {
	return s.policy.Sanitize(rendered)
}
