// Package readme models a generated README as an ordered list of titled
// markdown sections.
package readme

import "strings"

// Section is one titled block of a README. Title is already a formatted
// markdown heading.
type Section struct {
	Title string
	Body  string
}

// String renders the title line followed by the body.
func (s Section) String() string {
	return s.Title + "\n" + s.Body
}

// Readme is an ordered list of sections. Insertion order is presentation order.
type Readme struct {
	sections []Section
}

// New creates a README from sections in the order given.
func New(sections ...Section) *Readme {
	return &Readme{sections: sections}
}

// Add appends a section to the end of the document.
func (r *Readme) Add(s Section) {
	r.sections = append(r.sections, s)
}

// Sections returns a copy of the sections in presentation order.
func (r *Readme) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// String renders every section, separated by a blank line.
func (r *Readme) String() string {
	rendered := make([]string, 0, len(r.sections))
	for _, s := range r.sections {
		rendered = append(rendered, s.String())
	}
	return strings.Join(rendered, "\n\n")
}
