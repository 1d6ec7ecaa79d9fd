// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/quill/internal/adapters/config"
	_ "go.trai.ch/quill/internal/adapters/fs"
	_ "go.trai.ch/quill/internal/adapters/gosrc"
	_ "go.trai.ch/quill/internal/adapters/loader"
	_ "go.trai.ch/quill/internal/adapters/logger"
	_ "go.trai.ch/quill/internal/adapters/markup"
	_ "go.trai.ch/quill/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/quill/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/quill/internal/app"
	_ "go.trai.ch/quill/internal/engine/scheduler"
)
