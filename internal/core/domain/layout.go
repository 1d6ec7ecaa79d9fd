package domain

import "path/filepath"

const (
	// QuillDirName is the name of the internal workspace directory.
	QuillDirName = ".quill"

	// StoreDirName is the name of the artifact store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "quill.yaml"

	// DefaultHome is the template root used when the configuration omits one.
	DefaultHome = "templates"

	// DefaultTagDir is the tag directory, relative to the template root.
	DefaultTagDir = "tags"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultExtensions are the template file extensions recognised without configuration.
func DefaultExtensions() []string {
	return []string{".html", ".txt", ".md"}
}

// DefaultStorePath returns the default path for the artifact store.
// It joins .quill and store.
func DefaultStorePath() string {
	return filepath.Join(QuillDirName, StoreDirName)
}
