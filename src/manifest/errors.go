package manifest

import (
	"errors"
	"fmt"
)

// ErrNoManifest is returned when no supported manifest exists in the project root.
var ErrNoManifest = errors.New("no supported project type found")

// ParseError reports a manifest that exists but is not valid JSON or TOML.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BuildError reports a manifest whose content could not be turned into a README.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build readme: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
