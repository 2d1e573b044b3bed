package github

import (
	"context"

	"github.com/sgaunet/create-release/pkg/result"
)

// APIClient defines the release operations the workflows need.
// Each method performs exactly one HTTP round trip. A response with an
// unexpected status is reported as a failed Result; the error return is
// reserved for transport and decoding failures.
type APIClient interface {
	// GetReleaseByTagName looks a release up by tag. A 404 failure means no such release.
	GetReleaseByTagName(ctx context.Context, params GetReleaseByTagNameParams) (
		result.Result[*Release, *GitHubError], error)

	// CreateRelease creates a release and expects 201.
	CreateRelease(ctx context.Context, params CreateReleaseParams) (
		result.Result[*Release, *GitHubError], error)

	// UpdateRelease edits a release and expects 200.
	UpdateRelease(ctx context.Context, params UpdateReleaseParams) (
		result.Result[*Release, *GitHubError], error)

	// DeleteRelease deletes a release and expects 204.
	DeleteRelease(ctx context.Context, params DeleteReleaseParams) (
		result.Result[struct{}, *GitHubError], error)

	// DeleteTag deletes refs/tags/<tag> and expects 204.
	DeleteTag(ctx context.Context, params DeleteTagParams) (
		result.Result[struct{}, *GitHubError], error)

	// GenerateReleaseNotes asks the platform to compose notes and expects 200.
	GenerateReleaseNotes(ctx context.Context, params GenerateReleaseNotesParams) (
		result.Result[*ReleaseNotes, *GitHubError], error)
}

// Ensure Client implements APIClient interface at compile time.
var _ APIClient = (*Client)(nil)
