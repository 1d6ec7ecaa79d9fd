package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/config"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

func TestLoader_Load_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, filepath.Join(dir, domain.DefaultHome), cfg.Home)
	assert.Equal(t, domain.DefaultTagDir, cfg.TagDir)
	assert.Equal(t, domain.DefaultExtensions(), cfg.Extensions)
	assert.Equal(t, domain.SanitizeNone, cfg.Sanitize)
	assert.Empty(t, cfg.DefaultArgs)
	assert.False(t, cfg.Cache)
}

func TestLoader_Load_FullFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "views"), domain.DirPerm))
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
home: views
tagDir: partials
extensions: [html, .tmpl]
defaultArgs:
  user: String
  count: int
  admin: boolean
enhancers: [escape, banner]
sanitize: ugc
cache: true
log:
  level: debug
  json: true
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "views"), cfg.Home)
	assert.Equal(t, "partials", cfg.TagDir)
	assert.Equal(t, []string{".html", ".tmpl"}, cfg.Extensions)
	want := []domain.DefaultArg{
		{Name: "user", Type: "String"},
		{Name: "count", Type: "int"},
		{Name: "admin", Type: "boolean"},
	}
	if diff := cmp.Diff(want, cfg.DefaultArgs); diff != "" {
		t.Errorf("default args mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"escape", "banner"}, cfg.Enhancers)
	assert.Equal(t, domain.SanitizeUGC, cfg.Sanitize)
	assert.True(t, cfg.Cache)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoader_Load_WalksUp(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "home: site\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "site"), cfg.Home)
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown enhancer", "enhancers: [minify]\n", domain.ErrUnknownEnhancer},
		{"bad argument name", "defaultArgs:\n  func: String\n", domain.ErrInvalidArgumentName},
		{"bad policy", "sanitize: loose\n", domain.ErrInvalidSanitizePolicy},
		{"defaultArgs not a mapping", "defaultArgs: [a, b]\n", domain.ErrConfigParseFailed},
		{"duplicate argument", "defaultArgs:\n  a: int\n  a: String\n", domain.ErrConfigParseFailed},
		{"malformed yaml", "home: [\n", domain.ErrConfigParseFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFile(t, dir, domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(dir)
			require.Error(t, err)
			assert.True(t, domain.HasKind(err, tt.want), "%v", err)
		})
	}
}

func TestLoader_Load_WarnsOnUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.DefaultHome), domain.DirPerm))
	createFile(t, dir, domain.ConfigFileName, "version: \"9\"\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewLoader(mockLogger).Load(dir)
	require.NoError(t, err)
}
