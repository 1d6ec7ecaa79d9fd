package tui

import "go.trai.ch/quill/internal/core/domain"

// MsgWatching is sent once the watcher observes the template root.
type MsgWatching struct {
	Home string
}

// MsgReport is sent after every precompile or reload run.
type MsgReport struct {
	// Order lists the processed keys, parents first.
	Order []string
	// Status maps each processed key to its final status.
	Status map[string]domain.RunStatus
	// Err is the run error, if any.
	Err error
}
