package domain

// SanitizePolicy selects how rendered output is sanitised.
type SanitizePolicy string

const (
	// SanitizeNone leaves rendered output untouched.
	SanitizeNone SanitizePolicy = "none"
	// SanitizeUGC keeps user-generated-content safe markup.
	SanitizeUGC SanitizePolicy = "ugc"
	// SanitizeStrict strips all markup.
	SanitizeStrict SanitizePolicy = "strict"
)

// Config is the resolved engine configuration.
type Config struct {
	// Root is the directory holding the config file, or the working directory.
	Root string
	// Home is the absolute template root.
	Home string
	// TagDir is the tag directory relative to Home.
	TagDir string
	// Extensions lists the recognised template file extensions.
	Extensions []string
	// DefaultArgs is the ordered engine default-argument registry.
	DefaultArgs []DefaultArg
	// Enhancers lists enhancer plugin names in chain order.
	Enhancers []string
	// Sanitize is the output sanitising policy.
	Sanitize SanitizePolicy
	// Cache enables the on-disk artifact store.
	Cache bool
	// LogLevel is the minimum log level name.
	LogLevel string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
}
