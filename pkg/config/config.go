// Package config loads the optional cmsgen.yaml workspace configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace config file looked up in the working directory.
const FileName = "cmsgen.yaml"

// Config carries workspace-level generation settings. Every field is
// optional; flags override config values and config values override the
// built-in defaults.
type Config struct {
	Out              string `yaml:"out,omitempty"`
	ContentTypesFile string `yaml:"content_types_file,omitempty"`
	SectionsFile     string `yaml:"sections_file,omitempty"`
	PackageVersion   string `yaml:"package_version,omitempty"`
	ZodVersion       string `yaml:"zod_version,omitempty"`
}

// LoadWorkspace reads cmsgen.yaml from dir. A missing file is not an error:
// it returns (nil, nil) and the caller falls back to defaults.
func LoadWorkspace(dir string) (*Config, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", FileName, err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a config document with strict unknown-field rejection.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
