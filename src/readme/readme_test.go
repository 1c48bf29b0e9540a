package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionString(t *testing.T) {
	s := Section{Title: H2("Usage"), Body: "body"}
	assert.Equal(t, "## Usage\nbody", s.String())
}

func TestReadmeJoinsSectionsWithBlankLine(t *testing.T) {
	a := Section{Title: "# A", Body: "a body"}
	b := Section{Title: "## B", Body: "b body"}

	r := New(a, b)

	assert.Equal(t, a.Title+"\n"+a.Body+"\n\n"+b.Title+"\n"+b.Body, r.String())
}

func TestReadmeAddKeepsInsertionOrder(t *testing.T) {
	r := New(Section{Title: "# one"})
	r.Add(Section{Title: "## two"})
	r.Add(Section{Title: "## three"})

	var titles []string
	for _, s := range r.Sections() {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"# one", "## two", "## three"}, titles)
}

func TestEmptyBodyRendersTitleAndNewline(t *testing.T) {
	assert.Equal(t, "# pkg\n", New(Section{Title: H1("pkg")}).String())
}

func TestFencedCodeBlock(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"shell", FencedShell("npm test"), "```sh\nnpm test\n```"},
		{"javascript", FencedJavaScript("// To be documented."), "```js\n// To be documented.\n```"},
		{"rust", FencedRust("// To be documented."), "```rs\n// To be documented.\n```"},
		{"no language", FencedCodeBlock("", "x"), "```\nx\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
