// Package forge knows how git forges name repositories and CI workflows.
// Only GitHub produces badges; the other providers are recognized so a
// remote can be rejected rather than misread.
package forge

// Provider identifies a git forge platform.
type Provider string

const (
	GitLab  Provider = "gitlab"
	GitHub  Provider = "github"
	Gitea   Provider = "gitea"
	Unknown Provider = "unknown"
)

const githubBaseURL = "https://github.com/"
