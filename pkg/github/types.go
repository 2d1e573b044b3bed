package github

import (
	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
)

// Constants for GitHub API operations.
const (
	// DefaultAPIURL is the public GitHub REST API origin.
	DefaultAPIURL = "https://api.github.com"
	// APIVersion is the REST API version sent with every request.
	APIVersion = "2022-11-28"

	mediaTypeJSON    = "application/vnd.github+json"
	headerAPIVersion = "X-GitHub-Api-Version"
	userAgent        = "sgaunet-create-release/v1"
	tagRefPrefix     = "tags/"
)

// Client represents a GitHub API client wrapper limited to the release endpoints.
type Client struct {
	client *github.Client
	log    *bullets.Logger
}

// Release is the subset of a GitHub release this tool reads back.
type Release struct {
	ID                     int64
	TagName                string
	TargetCommitish        string
	Name                   string
	Body                   string
	HTMLURL                string
	UploadURL              string
	Draft                  bool
	Prerelease             bool
	DiscussionCategoryName string
	MakeLatest             string
}

// ReleaseNotes is the output of the generate-notes endpoint.
type ReleaseNotes struct {
	Name string
	Body string
}

// GetReleaseByTagNameParams identifies a release by its tag.
type GetReleaseByTagNameParams struct {
	Owner string
	Repo  string
	Tag   string
}

// CreateReleaseParams holds the fields of a new release.
// Empty strings and nil pointers are left out of the request body.
type CreateReleaseParams struct {
	Owner                  string
	Repo                   string
	TagName                string
	TargetCommitish        string
	Name                   *string
	Body                   *string
	Draft                  *bool
	Prerelease             *bool
	DiscussionCategoryName string
	GenerateReleaseNotes   bool
}

// UpdateReleaseParams holds the fields sent when publishing a release.
// DiscussionCategoryName and MakeLatest are only sent when set.
type UpdateReleaseParams struct {
	Owner                  string
	Repo                   string
	ID                     int64
	Draft                  bool
	DiscussionCategoryName string
	MakeLatest             MakeLatest
}

// DeleteReleaseParams identifies a release to delete.
type DeleteReleaseParams struct {
	Owner string
	Repo  string
	ID    int64
}

// DeleteTagParams identifies a tag to delete.
type DeleteTagParams struct {
	Owner string
	Repo  string
	Tag   string
}

// GenerateReleaseNotesParams holds the inputs of the generate-notes endpoint.
type GenerateReleaseNotesParams struct {
	Owner           string
	Repo            string
	TagName         string
	TargetCommitish string
	PreviousTagName string
}

// newRelease converts a go-github release into a [Release].
func newRelease(r *github.RepositoryRelease) *Release {
	if r == nil {
		return nil
	}
	return &Release{
		ID:                     r.GetID(),
		TagName:                r.GetTagName(),
		TargetCommitish:        r.GetTargetCommitish(),
		Name:                   r.GetName(),
		Body:                   r.GetBody(),
		HTMLURL:                r.GetHTMLURL(),
		UploadURL:              r.GetUploadURL(),
		Draft:                  r.GetDraft(),
		Prerelease:             r.GetPrerelease(),
		DiscussionCategoryName: r.GetDiscussionCategoryName(),
		MakeLatest:             r.GetMakeLatest(),
	}
}
