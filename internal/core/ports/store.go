package ports

import "go.trai.ch/quill/internal/core/domain"

// ArtifactStore defines the interface for persisting compiled artifacts.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Get retrieves the artifact stored under key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.StoredArtifact, error)

	// Put stores the artifact.
	Put(artifact domain.StoredArtifact) error
}
