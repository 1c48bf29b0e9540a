// Package config loads readmegen settings from .readmegen.yml.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".readmegen.yml"

// Config is the top-level readmegen configuration.
type Config struct {
	Workflows WorkflowsConfig `yaml:"workflows"`
	Node      NodeConfig      `yaml:"node"`

	// GitRemoteFallback takes the GitHub URL from the origin remote when
	// the manifest does not name a GitHub repository.
	GitRemoteFallback bool `yaml:"git_remote_fallback"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns defaults if the default file doesn't exist; an explicitly named
// file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML configuration on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Workflows: DefaultWorkflowsConfig(),
		Node:      DefaultNodeConfig(),
	}
}
