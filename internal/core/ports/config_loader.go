package ports

import "go.trai.ch/quill/internal/core/domain"

// ConfigLoader defines the interface for loading the engine configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the nearest config file at or above cwd and resolves it.
	// Without a config file it returns defaults rooted at cwd.
	Load(cwd string) (*domain.Config, error)
}
