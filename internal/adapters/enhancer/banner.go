package enhancer

import (
	"bytes"
	"context"
	"go/ast"
	"go/token"
)

// BannerName is the configuration name of the banner enhancer.
const BannerName = "banner"

const bannerPrefix = "// Enhanced by quill for "

// Banner stamps a provenance comment at the top of the artifact. Stamping twice is a no-op.
type Banner struct{}

// Name implements ports.Enhancer.
func (Banner) Name() string { return BannerName }

// Transform implements ports.Enhancer.
func (Banner) Transform(ctx context.Context, identity string, artifact []byte) ([]byte, error) {
	if bytes.Contains(artifact, []byte(bannerPrefix)) {
		return artifact, nil
	}
	stamped := make([]byte, 0, len(bannerPrefix)+len(identity)+2+len(artifact))
	stamped = append(stamped, bannerPrefix...)
	stamped = append(stamped, identity...)
	stamped = append(stamped, ".\n"...)
	stamped = append(stamped, artifact...)
	return rewrite(ctx, identity, stamped, func(*token.FileSet, *ast.File) {})
}
