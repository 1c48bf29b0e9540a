// Package project inspects a project directory through a billy filesystem,
// so the same probes run against the working directory or an in-memory
// fixture.
package project

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Open returns a filesystem rooted at dir.
func Open(dir string) billy.Filesystem {
	return osfs.New(dir)
}

// IsFile reports whether path exists and is a regular file.
func IsFile(fs billy.Basic, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads a whole file from fs.
func ReadFile(fs billy.Basic, path string) ([]byte, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// licenseFiles are the general license filenames probed at the project root.
var licenseFiles = []string{"LICENSE", "LICENSE.md", "LICENSE.txt"}

// LicenseFiles returns which of LICENSE, LICENSE.md and LICENSE.txt exist
// at the root, in that order.
func LicenseFiles(fs billy.Basic) []string {
	var found []string
	for _, name := range licenseFiles {
		if IsFile(fs, name) {
			found = append(found, name)
		}
	}
	return found
}

// WriteFile replaces path with data, creating it if needed.
func WriteFile(fs billy.Basic, path string, data []byte) error {
	if err := util.WriteFile(fs, path, data, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
