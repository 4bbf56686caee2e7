package giturl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrMalformedURL means the input could not be parsed as a URL at all.
	ErrMalformedURL = errors.New("malformed repository URL")

	// ErrMissingHost means the URL parsed but carries no host, as with
	// path-only or scheme-relative inputs.
	ErrMissingHost = errors.New("repository URL has no host")

	// ErrMissingPathSegment means the URL path is too short to name an
	// owner and a project.
	ErrMissingPathSegment = errors.New("repository URL path must contain owner and project")
)

// Resolve parses a remote repository URL into its Location. The URL must be
// absolute (scheme and host present) with at least two path segments; extra
// segments, queries, and fragments are ignored. Scp-like syntax
// (git@github.com:owner/repo) is not accepted; use an ssh:// URL instead.
func Resolve(rawURL string) (Location, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}

	host := strings.ToLower(u.Hostname())
	if u.Scheme == "" || host == "" {
		return Location{}, fmt.Errorf("%w: %q", ErrMissingHost, rawURL)
	}

	// Segment the escaped path, so an encoded slash is data, not a
	// separator.
	segments := pathSegments(u.EscapedPath())
	if len(segments) < 2 {
		return Location{}, fmt.Errorf("%w: %q", ErrMissingPathSegment, rawURL)
	}

	// The first ".git" occurrence is removed wherever it sits, which also
	// covers the usual trailing clone suffix.
	project := strings.Replace(segments[1], ".git", "", 1)
	if project == "" {
		return Location{}, fmt.Errorf("%w: %q", ErrMissingPathSegment, rawURL)
	}

	return Location{
		Host:    host,
		Owner:   segments[0],
		Project: project,
	}, nil
}

// pathSegments splits a URL path on "/" and drops empty segments.
func pathSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
