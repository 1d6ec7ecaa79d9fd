package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetOutput redirects log output; nil restores stderr.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
	// SetLevel sets the minimum level by name (debug, info, warn, error).
	SetLevel(level string)
}
