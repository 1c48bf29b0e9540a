package forge

import "strings"

// GitHubURL derives the canonical https://github.com/<owner>/<repo> URL from
// a package.json "repository" value. Recognized forms, first match wins:
//
//	{"type": "git", "url": "git+https://github.com/owner/repo.git"}
//	"github:owner/repo"
//	"owner/repo"
//
// Anything else, including a missing value, yields "".
func GitHubURL(repository any) string {
	switch v := repository.(type) {
	case map[string]any:
		kind, _ := v["type"].(string)
		url, _ := v["url"].(string)
		if kind == "git" && strings.Contains(url, "github.com") {
			return strings.TrimSuffix(strings.TrimPrefix(url, "git+"), ".git")
		}
	case string:
		if strings.HasPrefix(v, "github:") && strings.Contains(v, "/") {
			return shortcutURL(strings.TrimPrefix(v, "github:"))
		}
		if !strings.Contains(v, ":") && strings.Contains(v, "/") {
			return shortcutURL(v)
		}
	}
	return ""
}

// shortcutURL expands "owner/repo[/...]" using the first two path components.
func shortcutURL(shortcut string) string {
	parts := strings.SplitN(shortcut, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return githubBaseURL + parts[0] + "/" + parts[1]
}

// GitHubRemoteURL converts a git remote of a GitHub-hosted repository into
// its canonical URL. Remotes on other forges yield "".
func GitHubRemoteURL(remote string) string {
	if DetectProvider(remote) != GitHub {
		return ""
	}
	https := RemoteToHTTPS(remote)
	idx := strings.Index(https, "github.com/")
	if idx < 0 {
		return ""
	}
	return shortcutURL(strings.TrimSuffix(https[idx+len("github.com/"):], "/"))
}
