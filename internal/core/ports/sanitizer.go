package ports

// Sanitizer post-processes rendered output.
//
//go:generate mockgen -source=sanitizer.go -destination=mocks/mock_sanitizer.go -package=mocks
type Sanitizer interface {
	Sanitize(rendered string) string
}
