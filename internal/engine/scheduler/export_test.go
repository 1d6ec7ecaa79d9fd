package scheduler

import "go.trai.ch/quill/internal/core/domain"

// GetUnitStatus returns the status recorded for key.
// This is exported for testing purposes only.
func (p *Precompiler) GetUnitStatus(key string) domain.RunStatus {
	return p.getStatus(key)
}
