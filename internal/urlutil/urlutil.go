// Package urlutil extracts the OWNER/REPO slug from git remote URLs.
//
// It handles three URL formats:
//   - HTTPS: https://github.com/owner/repo(.git)
//   - SSH colon: git@github.com:owner/repo(.git)
//   - SSH protocol: ssh://git@github.com/owner/repo(.git)
package urlutil

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// slugParts is the number of path components of an OWNER/REPO slug.
	slugParts = 2
	// minColonParts is the minimum number of parts when splitting SSH colon format URLs.
	minColonParts = 2
)

var errInvalidRemoteURL = errors.New("invalid GitHub remote URL")

// ErrInvalidRemoteURL is returned when no OWNER/REPO slug can be extracted.
var ErrInvalidRemoteURL = errInvalidRemoteURL

// RepositorySlug returns the OWNER/REPO slug of a git remote URL.
//
// Examples:
//
//	RepositorySlug("git@github.com:owner/repo.git")       → "owner/repo"
//	RepositorySlug("https://github.com/owner/repo")       → "owner/repo"
//	RepositorySlug("ssh://git@github.com/owner/repo.git") → "owner/repo"
func RepositorySlug(remoteURL string) (string, error) {
	url := strings.TrimSuffix(strings.TrimSpace(remoteURL), "/")
	url = strings.TrimSuffix(url, ".git")

	path := extractPath(url)
	parts := strings.Split(path, "/")
	if len(parts) < slugParts {
		return "", fmt.Errorf("%w: %q", errInvalidRemoteURL, remoteURL)
	}

	owner, repo := parts[len(parts)-2], parts[len(parts)-1]
	if owner == "" || repo == "" || strings.Contains(owner, ":") {
		return "", fmt.Errorf("%w: %q", errInvalidRemoteURL, remoteURL)
	}
	return owner + "/" + repo, nil
}

// extractPath returns the part of url that holds the repository path.
func extractPath(url string) string {
	if strings.HasPrefix(url, "ssh://") {
		rest := strings.TrimPrefix(url, "ssh://")
		if i := strings.Index(rest, "/"); i >= 0 {
			return rest[i+1:]
		}
		return ""
	}

	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		if len(parts) >= minColonParts {
			return parts[len(parts)-1]
		}
		return ""
	}

	if i := strings.Index(url, "://"); i >= 0 {
		rest := url[i+len("://"):]
		if j := strings.Index(rest, "/"); j >= 0 {
			return rest[j+1:]
		}
		return ""
	}
	return ""
}
