// Package fixtures provides common test data structures for testing.
package fixtures

import (
	"net/http"

	ghpkg "github.com/sgaunet/create-release/pkg/github"
)

// Test constants for GitHub fixtures.
const (
	DefaultReleaseID = 123
	DefaultTagName   = "v1.0.0"
	DefaultCommitish = "deadbeef"
	DefaultHTMLURL   = "http://x/html"
	DefaultUploadURL = "http://x/upload"
)

// ValidRelease returns a release as returned by the create and update endpoints.
func ValidRelease() *ghpkg.Release {
	return &ghpkg.Release{
		ID:        DefaultReleaseID,
		TagName:   DefaultTagName,
		HTMLURL:   DefaultHTMLURL,
		UploadURL: DefaultUploadURL,
		Draft:     true,
	}
}

// ExistingRelease returns a release as returned by the lookup endpoint.
func ExistingRelease() *ghpkg.Release {
	return &ghpkg.Release{
		ID:              DefaultReleaseID,
		TagName:         DefaultTagName,
		TargetCommitish: DefaultCommitish,
	}
}

// GeneratedNotes returns notes as returned by the generate-notes endpoint.
func GeneratedNotes() *ghpkg.ReleaseNotes {
	return &ghpkg.ReleaseNotes{
		Name: "v1.0.0",
		Body: "## What's Changed\n* Add widgets by @octocat in #1",
	}
}

// NotFoundError returns the error of a 404 response.
func NotFoundError() *ghpkg.GitHubError {
	return &ghpkg.GitHubError{
		StatusCode: http.StatusNotFound,
		Body: ghpkg.ErrorBody{
			Message:          "Not Found",
			DocumentationURL: "https://docs.github.com/rest/releases/releases#get-a-release-by-tag-name",
		},
	}
}

// ValidationFailedError returns the error of a 422 response.
func ValidationFailedError() *ghpkg.GitHubError {
	return &ghpkg.GitHubError{
		StatusCode: http.StatusUnprocessableEntity,
		Body: ghpkg.ErrorBody{
			Message:          "Validation Failed",
			DocumentationURL: "https://docs.github.com/rest/releases/releases#create-a-release",
			Errors: []ghpkg.FieldError{
				{Resource: "Release", Field: "tag_name", Code: "already_exists"},
			},
		},
	}
}

// ForbiddenError returns the error of a 403 response.
func ForbiddenError() *ghpkg.GitHubError {
	return &ghpkg.GitHubError{
		StatusCode: http.StatusForbidden,
		Body: ghpkg.ErrorBody{
			Message:          "Resource not accessible by integration",
			DocumentationURL: "https://docs.github.com/rest",
		},
	}
}
