package ports

import "iter"

// TemplateWalker enumerates template files.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type TemplateWalker interface {
	// Walk yields the slash paths, relative to root, of files with one of exts.
	Walk(root string, exts []string) iter.Seq2[string, error]
}
