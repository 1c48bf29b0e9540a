package manifest

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/readmegen/src/readme"
)

// projectFS builds an in-memory project from path → content pairs.
func projectFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for path, content := range files {
		require.NoError(t, util.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func titles(doc *readme.Readme) []string {
	var out []string
	for _, s := range doc.Sections() {
		out = append(out, s.Title)
	}
	return out
}

func section(t *testing.T, doc *readme.Readme, title string) readme.Section {
	t.Helper()
	for _, s := range doc.Sections() {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("section %q not found in %v", title, titles(doc))
	return readme.Section{}
}

func build(t *testing.T, in Interpreter, manifest string) *readme.Readme {
	t.Helper()
	m, err := in.Parse([]byte(manifest))
	require.NoError(t, err)
	doc, err := in.Build(m)
	require.NoError(t, err)
	return doc
}
