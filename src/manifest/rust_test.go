package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRustLibrary(t *testing.T) {
	in := NewRust(projectFS(t, map[string]string{"src/lib.rs": ""}), DefaultOptions())

	doc := build(t, in, "[package]\nname = \"bar\"\n")

	want := "# bar\n\n\n" +
		"## Install\n```sh\ncargo add bar\n```\n\n" +
		"## Usage\n```rs\n// To be documented.\n```"
	assert.Equal(t, want, doc.String())
}

func TestRustApplication(t *testing.T) {
	in := NewRust(projectFS(t, map[string]string{"src/main.rs": "fn main() {}"}), DefaultOptions())

	doc := build(t, in, `
[package]
name = "bar"
description = "A tool."
license = "MIT"
`)

	assert.Equal(t, []string{"# bar", "## Install", "## Usage", "## License"}, titles(doc))
	assert.Equal(t, "A tool.", section(t, doc, "# bar").Body)
	assert.Equal(t, "```sh\ncargo install bar\n```", section(t, doc, "## Install").Body)
	assert.Equal(t, "```sh\n# To be documented.\n```", section(t, doc, "## Usage").Body)
	assert.Equal(t, "The MIT License.", section(t, doc, "## License").Body)
}

func TestRustWithoutPackageTable(t *testing.T) {
	in := NewRust(projectFS(t, nil), DefaultOptions())

	doc := build(t, in, "[workspace]\nmembers = [\"crates/*\"]\n")

	assert.Equal(t, []string{"# <PACKAGE NAME>", "## Install", "## Usage"}, titles(doc))
	assert.Equal(t, "```sh\ncargo add <PACKAGE NAME>\n```", section(t, doc, "## Install").Body)
}

func TestRustBadges(t *testing.T) {
	fs := projectFS(t, map[string]string{
		".github/workflows/build-release.yaml": "",
	})
	in := NewRust(fs, DefaultOptions())

	doc := build(t, in, `
[package]
name = "bar"
description = "d"
repository = "https://github.com/o/bar/"
`)

	want := "[![Build Release](https://github.com/o/bar/actions/workflows/build-release.yaml/badge.svg)]" +
		"(https://github.com/o/bar/actions/workflows/build-release.yaml)\n\nd"
	assert.Equal(t, want, section(t, doc, "# bar").Body)
}

func TestRustBadgesSkippedOffGitHub(t *testing.T) {
	fs := projectFS(t, map[string]string{".github/workflows/ci.yml": ""})

	doc := build(t, NewRust(fs, DefaultOptions()), `
[package]
name = "bar"
description = "d"
repository = "https://gitlab.com/o/bar"
`)
	assert.Equal(t, "d", section(t, doc, "# bar").Body)
}

func TestRustRemoteFallback(t *testing.T) {
	fs := projectFS(t, map[string]string{".github/workflows/ci.yml": ""})
	opts := DefaultOptions()
	opts.Remote = func() string { return "https://github.com/o/bar" }

	doc := build(t, NewRust(fs, opts), "[package]\nname = \"bar\"\ndescription = \"d\"\n")

	assert.Equal(t,
		"[![CI](https://github.com/o/bar/actions/workflows/ci.yml/badge.svg)](https://github.com/o/bar/actions/workflows/ci.yml)\n\nd",
		section(t, doc, "# bar").Body)
}

func TestRustBuildRejectsMistypedFields(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{"package not a table", `package = "bar"`, "package must be a table"},
		{"name not a string", "[package]\nname = 3\n", "package.name must be a string"},
		{"inherited license", "[package]\nname = \"bar\"\nlicense.workspace = true\n", "package.license must be a string"},
		{"repository array", "[package]\nrepository = [\"a\"]\n", "package.repository must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewRust(projectFS(t, nil), DefaultOptions())
			m, err := in.Parse([]byte(tt.manifest))
			require.NoError(t, err)

			_, err = in.Build(m)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRustInheritedVersionIsIgnored(t *testing.T) {
	doc := build(t, NewRust(projectFS(t, nil), DefaultOptions()), "[package]\nname = \"bar\"\nversion.workspace = true\n")
	assert.Equal(t, "# bar", doc.Sections()[0].Title)
}

func TestRustParseRejectsInvalidTOML(t *testing.T) {
	_, err := NewRust(projectFS(t, nil), DefaultOptions()).Parse([]byte("[package\nname = "))
	assert.Error(t, err)
}
