package config

import "gopkg.in/yaml.v3"

// Quillfile represents the structure of the quill.yaml configuration file.
type Quillfile struct {
	Version    string   `yaml:"version"`
	Home       string   `yaml:"home"`
	TagDir     string   `yaml:"tagDir"`
	Extensions []string `yaml:"extensions"`
	// DefaultArgs is kept as a node so the mapping order survives decoding.
	DefaultArgs yaml.Node `yaml:"defaultArgs"`
	Enhancers   []string  `yaml:"enhancers"`
	Sanitize    string    `yaml:"sanitize"`
	Cache       bool      `yaml:"cache"`
	Log         LogDTO    `yaml:"log"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}
