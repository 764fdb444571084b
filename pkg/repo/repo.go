// Package repo identifies the GitHub repository a badge describes.
//
// Dynamic shields (package.json dependency versions, go.mod Go versions) read
// files straight from a GitHub repository, so every such badge needs an
// owner/name pair. [Parse] accepts the shorthand and the common URL forms:
//
//	repo.Parse("MichaelCurrin/badge-generator")
//	repo.Parse("https://github.com/MichaelCurrin/badge-generator.git")
//	repo.Parse("git@github.com:MichaelCurrin/badge-generator.git")
//
// [FromGitDir] reads the origin remote of a local checkout instead.
package repo

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/matzehuels/badgegen/pkg/errors"
)

const githubHost = "github.com"

// Regex patterns for GitHub resource validation.
var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validName = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// Repo is a GitHub repository reference.
type Repo struct {
	Owner string // user or organization login
	Name  string // repository name without .git
}

// New validates owner and name and returns the Repo.
func New(owner, name string) (Repo, error) {
	r := Repo{Owner: owner, Name: name}
	if err := r.Validate(); err != nil {
		return Repo{}, err
	}
	return r, nil
}

// Validate checks both parts against GitHub's naming rules.
// Empty parts are INVALID_ARGUMENT; malformed parts are INVALID_REPO.
func (r Repo) Validate() error {
	if err := errors.ValidateRequired("repository owner", r.Owner); err != nil {
		return err
	}
	if err := errors.ValidateRequired("repository name", r.Name); err != nil {
		return err
	}
	if !validOwner.MatchString(r.Owner) {
		return errors.New(errors.ErrCodeInvalidRepo,
			"invalid owner %q: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen", r.Owner)
	}
	if !validName.MatchString(r.Name) || r.Name == "." || r.Name == ".." {
		return errors.New(errors.ErrCodeInvalidRepo,
			"invalid repo name %q: must be 1-100 alphanumeric characters, hyphens, underscores, or dots", r.Name)
	}
	return nil
}

// IsZero reports whether r is the zero value.
func (r Repo) IsZero() bool { return r.Owner == "" && r.Name == "" }

// String returns "owner/name".
func (r Repo) String() string { return r.Owner + "/" + r.Name }

// URL returns the repository's GitHub web URL.
func (r Repo) URL() string { return "https://" + githubHost + "/" + r.String() }

var remoteReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
	"ssh://git@github.com/", "https://github.com/",
)

// Parse reads an "owner/name" reference or a GitHub URL in https, ssh, or
// git form. Hosts other than github.com are rejected with INVALID_REPO.
func Parse(ref string) (Repo, error) {
	s := strings.TrimSpace(ref)
	if err := errors.ValidateRequired("repository", s); err != nil {
		return Repo{}, err
	}

	s = strings.TrimPrefix(s, "git+")
	s = remoteReplacer.Replace(s)

	path := s
	switch {
	case strings.Contains(s, "://"):
		u, err := url.Parse(s)
		if err != nil {
			return Repo{}, errors.Wrap(errors.ErrCodeInvalidRepo, err, "parse repository URL %q", ref)
		}
		if !strings.EqualFold(strings.TrimPrefix(u.Hostname(), "www."), githubHost) {
			return Repo{}, errors.New(errors.ErrCodeInvalidRepo, "unsupported repository host %q: only %s is supported", u.Host, githubHost)
		}
		path = u.Path
	case strings.HasPrefix(s, githubHost+"/"):
		path = strings.TrimPrefix(s, githubHost+"/")
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 {
		return Repo{}, errors.New(errors.ErrCodeInvalidRepo, "invalid repository %q: use owner/repo", ref)
	}
	return New(parts[0], parts[1])
}
