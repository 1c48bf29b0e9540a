// Package narrator composes inline markdown modules (badges, text) into
// multi-line blocks.
//
// Items within a row are space-joined (inline).
// Rows are newline-joined (line breaks).
// Break modules force a new row.
package narrator

import "strings"

// Module produces inline markdown content for a single item.
type Module interface {
	Render() string
}

// BreakModule forces a line break in composition.
// Items before the break are on one line, items after start a new line.
type BreakModule struct{}

// Render returns empty; breaks are handled by Compose, not rendered.
func (BreakModule) Render() string { return "" }

// Compose takes a flat list of modules. Items are space-joined until a
// BreakModule forces a new line. Returns the composed content string.
func Compose(modules []Module) string {
	var lines []string
	var current []string

	for _, m := range modules {
		if _, isBreak := m.(BreakModule); isBreak {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		if s := m.Render(); s != "" {
			current = append(current, s)
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}

// Stack composes modules one per line.
func Stack(modules []Module) string {
	withBreaks := make([]Module, 0, 2*len(modules))
	for i, m := range modules {
		if i > 0 {
			withBreaks = append(withBreaks, BreakModule{})
		}
		withBreaks = append(withBreaks, m)
	}
	return Compose(withBreaks)
}
