package manifest

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-git/go-billy/v5"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/sofmeright/readmegen/src/forge"
	"github.com/sofmeright/readmegen/src/project"
	"github.com/sofmeright/readmegen/src/readme"
)

// binaryEntryPoint marks a Cargo package as an application.
const binaryEntryPoint = "src/main.rs"

// Rust interprets Cargo.toml.
type Rust struct {
	fs   billy.Filesystem
	opts Options
}

// NewRust creates a Cargo.toml interpreter for the project in fs.
func NewRust(fs billy.Filesystem, opts Options) *Rust {
	return &Rust{fs: fs, opts: opts}
}

func (r *Rust) Filename() string { return "Cargo.toml" }

// Parse decodes Cargo.toml.
func (r *Rust) Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// cargoPackage holds the [package] fields the README uses.
type cargoPackage struct {
	Name        string
	Description string
	License     string
	Repository  string
}

// Build assembles the README. Absent fields take defaults, but a field of
// the wrong type (or a [package] that is not a table) is an error.
func (r *Rust) Build(m Manifest) (*readme.Readme, error) {
	pkg, err := readCargoPackage(m)
	if err != nil {
		return nil, err
	}

	description := pkg.Description
	if badges := r.badges(pkg.Repository); badges != "" {
		description = withBadges(badges, description)
	}

	application := project.IsFile(r.fs, binaryEntryPoint)
	slog.Debug("cargo package", "name", pkg.Name, "application", application)

	installVerb := "add"
	usage := readme.FencedRust("// To be documented.")
	if application {
		installVerb = "install"
		usage = readme.FencedShell("# To be documented.")
	}

	doc := readme.New(
		readme.Section{
			Title: readme.H1(pkg.Name),
			Body:  description,
		},
		readme.Section{
			Title: readme.H2("Install"),
			Body:  readme.FencedShell("cargo " + installVerb + " " + pkg.Name),
		},
		readme.Section{
			Title: readme.H2("Usage"),
			Body:  usage,
		},
	)

	if pkg.License != "" {
		doc.Add(readme.Section{
			Title: readme.H2("License"),
			Body:  RustLicenseBody(r.fs, pkg.License),
		})
	}

	return doc, nil
}

// badges renders workflow badges when the repository is hosted on GitHub.
// Cargo stores a full URL, so it is used as is.
func (r *Rust) badges(repository string) string {
	workflows := forge.Workflows(r.fs, r.opts.SortWorkflows)
	if len(workflows) == 0 {
		return ""
	}

	if !strings.Contains(repository, "github.com") {
		repository = r.opts.remoteURL()
	}
	slog.Debug("workflow badges", "workflows", workflows, "repository", repository)
	if repository == "" {
		return ""
	}
	return forge.WorkflowBadges(repository, workflows)
}

func readCargoPackage(m Manifest) (cargoPackage, error) {
	pkg := cargoPackage{Name: PackagePlaceholder}

	raw, ok := m["package"]
	if !ok {
		return pkg, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return pkg, fmt.Errorf("package must be a table, got %T", raw)
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"name", &pkg.Name},
		{"description", &pkg.Description},
		{"license", &pkg.License},
		{"repository", &pkg.Repository},
	}
	for _, f := range fields {
		v, ok := table[f.key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return pkg, fmt.Errorf("package.%s must be a string, got %T", f.key, v)
		}
		*f.dst = s
	}

	warnVersion(table["version"])
	return pkg, nil
}
