package forge

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// ErrNoOrigin is returned when the repository has no usable origin remote.
var ErrNoOrigin = errors.New("no origin remote")

// OriginURL returns the first URL of the "origin" remote of the git
// repository containing dir. Parent directories are searched for .git.
func OriginURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repository: %w", err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoOrigin
		}
		return "", fmt.Errorf("reading origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", ErrNoOrigin
	}
	return urls[0], nil
}
