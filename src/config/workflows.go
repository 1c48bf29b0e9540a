package config

// WorkflowsConfig controls CI workflow badge discovery.
type WorkflowsConfig struct {
	// Sort orders badges by workflow filename. When false, badges follow
	// directory listing order, which varies by platform.
	Sort bool `yaml:"sort"`
}

// DefaultWorkflowsConfig returns defaults for workflow discovery.
func DefaultWorkflowsConfig() WorkflowsConfig {
	return WorkflowsConfig{Sort: true}
}
