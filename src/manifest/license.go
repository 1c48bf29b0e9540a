package manifest

import (
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/sofmeright/readmegen/src/project"
)

// RustLicenseBody describes an SPDX license expression for a Cargo package.
// Compound expressions point at the license files in general; a single
// license links its file when exactly one LICENSE, LICENSE.md or
// LICENSE.txt exists.
func RustLicenseBody(fs billy.Basic, spdx string) string {
	switch {
	case strings.Contains(spdx, " AND "):
		return "The " + spdx + " Licenses. See the license files for details"
	case strings.Contains(spdx, " OR "):
		return "The " + spdx + " License. See the license files for details"
	case strings.EqualFold(spdx, "UNLICENSED"):
		return "This is unlicensed proprietary software."
	}

	if files := project.LicenseFiles(fs); len(files) == 1 {
		return "The " + spdx + " License. See the [license file](" + files[0] + ") for details."
	}
	return "The " + spdx + " License."
}
