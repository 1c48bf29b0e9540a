// Package manifest turns a project manifest (package.json or Cargo.toml)
// into a README. Each ecosystem has its own interpreter with its own field
// and section rules.
package manifest

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"

	"github.com/sofmeright/readmegen/src/project"
	"github.com/sofmeright/readmegen/src/readme"
)

// PackagePlaceholder stands in for a missing package name.
const PackagePlaceholder = "<PACKAGE NAME>"

// NpmPlaceholderTestScript is the test script `npm init` scaffolds.
const NpmPlaceholderTestScript = `echo "Error: no test specified" && exit 1`

// Manifest is a decoded manifest tree.
type Manifest map[string]any

// Interpreter produces a README from one ecosystem's manifest.
type Interpreter interface {
	// Filename is the manifest file at the project root, e.g. "package.json".
	Filename() string
	Parse(data []byte) (Manifest, error)
	Build(m Manifest) (*readme.Readme, error)
}

// Options tune interpreters beyond what the manifest says.
type Options struct {
	// SortWorkflows orders badges by workflow filename instead of
	// directory listing order.
	SortWorkflows bool

	// PlaceholderTestScripts are test scripts that do not count as tests.
	// Nil means NpmPlaceholderTestScript only.
	PlaceholderTestScripts []string

	// Remote, when set, supplies a canonical GitHub URL for projects
	// whose manifest does not name one. It returns "" when unknown.
	Remote func() string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SortWorkflows:          true,
		PlaceholderTestScripts: []string{NpmPlaceholderTestScript},
	}
}

func (o Options) remoteURL() string {
	if o.Remote == nil {
		return ""
	}
	return o.Remote()
}

// Interpreters returns the supported interpreters in detection order.
// package.json is checked before Cargo.toml.
func Interpreters(fs billy.Filesystem, opts Options) []Interpreter {
	return []Interpreter{
		NewNode(fs, opts),
		NewRust(fs, opts),
	}
}

// Detect returns the first interpreter whose manifest exists in fs.
func Detect(fs billy.Filesystem, opts Options) (Interpreter, error) {
	for _, in := range Interpreters(fs, opts) {
		if project.IsFile(fs, in.Filename()) {
			return in, nil
		}
	}
	return nil, ErrNoManifest
}

// Generate detects the project's manifest, parses it and builds its README.
// Errors are ErrNoManifest, *ParseError or *BuildError.
func Generate(fs billy.Filesystem, opts Options) (*readme.Readme, error) {
	in, err := Detect(fs, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("manifest detected", "file", in.Filename())

	data, err := project.ReadFile(fs, in.Filename())
	if err != nil {
		return nil, &ParseError{File: in.Filename(), Err: err}
	}

	m, err := in.Parse(data)
	if err != nil {
		return nil, &ParseError{File: in.Filename(), Err: err}
	}

	doc, err := in.Build(m)
	if err != nil {
		return nil, &BuildError{Err: err}
	}
	return doc, nil
}

// withBadges prefixes description with workflow badges, separated by a blank line.
func withBadges(badges, description string) string {
	return badges + "\n\n" + description
}
