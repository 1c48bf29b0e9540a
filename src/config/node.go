package config

import "github.com/sofmeright/readmegen/src/manifest"

// NodeConfig holds package.json specific settings.
type NodeConfig struct {
	// PlaceholderTestScripts are scaffolded "test" scripts that do not
	// count as a test suite.
	PlaceholderTestScripts []string `yaml:"placeholder_test_scripts"`
}

// DefaultNodeConfig returns the npm init scaffold default.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		PlaceholderTestScripts: []string{manifest.NpmPlaceholderTestScript},
	}
}
