package release

import "errors"

// Error definitions for the release workflows.
var (
	errTagNameRequired    = errors.New("tag name is required")
	errRepositoryRequired = errors.New("owner and repo are required (set them or GITHUB_REPOSITORY)")
	errInvalidReleaseID   = errors.New("invalid release id")
	errOverwriteDeclined  = errors.New("overwrite of the existing release was declined")
	errRemoteCall         = errors.New("GitHub API call failed")

	// ErrTagNameRequired is returned when Create is called without a tag name.
	ErrTagNameRequired = errTagNameRequired
	// ErrRepositoryRequired is returned when neither options nor ambient context name a repository.
	ErrRepositoryRequired = errRepositoryRequired
	// ErrInvalidReleaseID is returned when the id handed to Publish is not a positive integer.
	ErrInvalidReleaseID = errInvalidReleaseID
	// ErrOverwriteDeclined is returned when the confirmation hook refuses to delete a release.
	ErrOverwriteDeclined = errOverwriteDeclined
	// ErrRemoteCall wraps every terminal non-success response.
	// The *github.GitHubError is also in the chain.
	ErrRemoteCall = errRemoteCall
)
