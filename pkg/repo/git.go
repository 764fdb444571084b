package repo

import (
	stderrors "errors"

	"github.com/go-git/go-git/v5"

	"github.com/matzehuels/badgegen/pkg/errors"
)

// DefaultRemote is the remote consulted by [FromGitDir].
const DefaultRemote = "origin"

// FromGitDir opens the git repository containing dir and parses the first
// URL of the named remote. An empty remote means [DefaultRemote].
func FromGitDir(dir, remote string) (Repo, error) {
	if remote == "" {
		remote = DefaultRemote
	}

	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return Repo{}, errors.New(errors.ErrCodeInvalidRepo, "%s is not inside a git repository", dir)
		}
		return Repo{}, errors.Wrap(errors.ErrCodeInternal, err, "open git repository at %s", dir)
	}

	rem, err := r.Remote(remote)
	if err != nil {
		if stderrors.Is(err, git.ErrRemoteNotFound) {
			return Repo{}, errors.New(errors.ErrCodeInvalidRepo, "git remote %q not found", remote)
		}
		return Repo{}, errors.Wrap(errors.ErrCodeInternal, err, "read git remote %q", remote)
	}

	urls := rem.Config().URLs
	if len(urls) == 0 {
		return Repo{}, errors.New(errors.ErrCodeInvalidRepo, "git remote %q has no URL", remote)
	}
	return Parse(urls[0])
}
