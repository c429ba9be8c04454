package githubapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rabierabit/githubapi/errors"
)

// Repository identifies a repository by owner and name.
// It is derived once from a URL and never changes afterwards.
type Repository struct {
	Owner string
	Name  string
}

// ParseRepositoryURL extracts the owner and name from a repository URL such as
// https://github.com/octo/hello.git. Only the first two path segments are used;
// a trailing ".git" is stripped from the name.
//
// Returns an error with CodeInvalidRepositoryURL if the URL cannot be parsed or
// its path has fewer than two non-empty segments.
func ParseRepositoryURL(rawURL string) (Repository, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		err := errors.Wrap(err, errors.CodeInvalidRepositoryURL, "invalid repository URL")
		return Repository{}, errors.WithContext(err, "url", rawURL)
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		err := errors.New(errors.CodeInvalidRepositoryURL, fmt.Sprintf("invalid repository URL: %s", rawURL))
		return Repository{}, errors.WithContext(err, "url", rawURL)
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		err := errors.New(errors.CodeInvalidRepositoryURL, fmt.Sprintf("could not extract owner/repo from: %s", rawURL))
		return Repository{}, errors.WithContext(err, "url", rawURL)
	}

	owner := parts[0]
	name := strings.TrimSuffix(parts[1], ".git")
	if owner == "" || name == "" {
		err := errors.New(errors.CodeInvalidRepositoryURL, fmt.Sprintf("could not extract owner/repo from: %s", rawURL))
		return Repository{}, errors.WithContext(err, "url", rawURL)
	}

	return Repository{Owner: owner, Name: name}, nil
}

// FullName returns "owner/name".
func (r Repository) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// String implements fmt.Stringer.
func (r Repository) String() string {
	return r.FullName()
}

// apiPath returns the API path of a repository sub-resource. Segments are
// joined with "/" as given; callers escape them.
func (r Repository) apiPath(segments ...string) string {
	parts := append([]string{"repos", url.PathEscape(r.Owner), url.PathEscape(r.Name)}, segments...)
	return strings.Join(parts, "/")
}
