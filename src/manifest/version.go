package manifest

import (
	"log/slog"

	"github.com/Masterminds/semver/v3"
)

// warnVersion logs a warning when a manifest version is not strict semver.
// Both npm and Cargo require semver versions; the README does not use the
// version, so this never fails the run.
func warnVersion(v any) {
	s, ok := v.(string)
	if !ok {
		return
	}
	if _, err := semver.StrictNewVersion(s); err != nil {
		slog.Warn("manifest version is not valid semver", "version", s, "error", err)
	}
}
