// Package config provides the configuration loader for quill.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/quill/internal/adapters/enhancer"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest quill.yaml at or above cwd and resolves it into a domain.Config.
// Without a config file it returns defaults rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return defaults(cwd), nil
	}

	var file Quillfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, file.Version, SupportedVersion))
	}

	cfg := defaults(filepath.Dir(configPath))
	if err := l.apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func defaults(root string) *domain.Config {
	return &domain.Config{
		Root:       root,
		Home:       filepath.Join(root, domain.DefaultHome),
		TagDir:     domain.DefaultTagDir,
		Extensions: domain.DefaultExtensions(),
		Sanitize:   domain.SanitizeNone,
		LogLevel:   "info",
	}
}

func (l *Loader) apply(cfg *domain.Config, file *Quillfile) error {
	if file.Home != "" {
		cfg.Home = resolveHome(cfg.Root, file.Home)
	}
	if file.TagDir != "" {
		cfg.TagDir = filepath.Clean(file.TagDir)
	}
	if len(file.Extensions) > 0 {
		cfg.Extensions = normalizeExtensions(file.Extensions)
	}

	args, err := decodeDefaultArgs(&file.DefaultArgs)
	if err != nil {
		return err
	}
	cfg.DefaultArgs = args

	for _, name := range file.Enhancers {
		if !enhancer.Known(name) {
			return zerr.With(zerr.With(domain.ErrUnknownEnhancer, "enhancer", name), "known", strings.Join(enhancer.Names(), ","))
		}
	}
	cfg.Enhancers = file.Enhancers

	policy, err := parsePolicy(file.Sanitize)
	if err != nil {
		return err
	}
	cfg.Sanitize = policy

	cfg.Cache = file.Cache
	if file.Log.Level != "" {
		cfg.LogLevel = file.Log.Level
	}
	cfg.LogJSON = file.Log.JSON

	if info, statErr := os.Stat(cfg.Home); statErr != nil || !info.IsDir() {
		l.Logger.Warn(fmt.Sprintf("template home %s is not a directory", cfg.Home))
	}
	return nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// decodeDefaultArgs reads the ordered name: Type mapping of the defaultArgs key.
func decodeDefaultArgs(node *yaml.Node) ([]domain.DefaultArg, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrConfigParseFailed, "line", node.Line)
	}

	args := make([]domain.DefaultArg, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode || strings.TrimSpace(value.Value) == "" {
			return nil, zerr.With(zerr.With(domain.ErrConfigParseFailed, "argument", key.Value), "line", value.Line)
		}
		if !domain.IsArgumentName(key.Value) {
			return nil, zerr.With(domain.ErrInvalidArgumentName, "argument", key.Value)
		}
		if seen[key.Value] {
			return nil, zerr.With(zerr.With(domain.ErrConfigParseFailed, "duplicate_argument", key.Value), "line", key.Line)
		}
		seen[key.Value] = true
		args = append(args, domain.DefaultArg{Name: key.Value, Type: strings.TrimSpace(value.Value)})
	}
	return args, nil
}

func parsePolicy(raw string) (domain.SanitizePolicy, error) {
	switch policy := domain.SanitizePolicy(raw); policy {
	case "":
		return domain.SanitizeNone, nil
	case domain.SanitizeNone, domain.SanitizeUGC, domain.SanitizeStrict:
		return policy, nil
	default:
		return "", zerr.With(domain.ErrInvalidSanitizePolicy, "sanitize", raw)
	}
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func resolveHome(root, home string) string {
	if filepath.IsAbs(home) {
		return filepath.Clean(home)
	}
	return filepath.Join(root, home)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
