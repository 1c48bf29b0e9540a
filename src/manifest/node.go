package manifest

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/sofmeright/readmegen/src/forge"
	"github.com/sofmeright/readmegen/src/readme"
)

// Node interprets package.json.
type Node struct {
	fs   billy.Filesystem
	opts Options
}

// NewNode creates a package.json interpreter for the project in fs.
func NewNode(fs billy.Filesystem, opts Options) *Node {
	if opts.PlaceholderTestScripts == nil {
		opts.PlaceholderTestScripts = []string{NpmPlaceholderTestScript}
	}
	return &Node{fs: fs, opts: opts}
}

func (n *Node) Filename() string { return "package.json" }

// Parse decodes package.json. Valid JSON whose top level is not an object
// yields an empty manifest, so every field takes its default.
func (n *Node) Parse(data []byte) (Manifest, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Manifest{}, nil
	}
	return m, nil
}

// Build assembles the README. Missing or mistyped fields fall back to
// defaults; it does not fail on manifest content.
func (n *Node) Build(m Manifest) (*readme.Readme, error) {
	name := stringOr(m["name"], PackagePlaceholder)
	private, _ := m["private"].(bool)
	description := stringOr(m["description"], "")
	license := stringOr(m["license"], "")
	warnVersion(m["version"])

	if badges := n.badges(m["repository"]); badges != "" {
		description = withBadges(badges, description)
	}

	doc := readme.New(readme.Section{
		Title: readme.H1(name),
		Body:  description,
	})

	if !private {
		doc.Add(readme.Section{
			Title: readme.H2("Install"),
			Body:  readme.FencedShell("npm install " + name),
		})
	}

	doc.Add(readme.Section{
		Title: readme.H2("Usage"),
		Body:  readme.FencedJavaScript("// To be documented."),
	})

	if n.hasTestScript(m) {
		doc.Add(readme.Section{
			Title: readme.H2("Testing"),
			Body:  readme.FencedShell("npm test"),
		})
	}

	if license != "" {
		doc.Add(readme.Section{
			Title: readme.H2("License"),
			Body:  nodeLicenseBody(license),
		})
	}

	return doc, nil
}

func (n *Node) badges(repository any) string {
	workflows := forge.Workflows(n.fs, n.opts.SortWorkflows)
	if len(workflows) == 0 {
		return ""
	}

	url := forge.GitHubURL(repository)
	if url == "" {
		url = n.opts.remoteURL()
	}
	slog.Debug("workflow badges", "workflows", workflows, "repository", url)
	if url == "" {
		return ""
	}
	return forge.WorkflowBadges(url, workflows)
}

func (n *Node) hasTestScript(m Manifest) bool {
	scripts, _ := m["scripts"].(map[string]any)
	test := stringOr(scripts["test"], "")
	return test != "" && !slices.Contains(n.opts.PlaceholderTestScripts, test)
}

func nodeLicenseBody(license string) string {
	if strings.EqualFold(license, "UNLICENSED") {
		return "This is unlicensed proprietary software."
	}
	return "The " + license + " License. See the license file(s) for details."
}

// stringOr returns v if it is a string, otherwise fallback.
func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}
