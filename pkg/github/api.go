package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/create-release/pkg/result"
)

// GetReleaseByTagName fetches a release by tag name.
// https://docs.github.com/en/rest/releases/releases?apiVersion=2022-11-28#get-a-release-by-tag-name
func (c *Client) GetReleaseByTagName(
	ctx context.Context, params GetReleaseByTagNameParams,
) (result.Result[*Release, *GitHubError], error) {
	c.log.Debug(fmt.Sprintf("Getting release by tag %s in %s/%s", params.Tag, params.Owner, params.Repo))

	rel, resp, err := c.client.Repositories.GetReleaseByTag(ctx, params.Owner, params.Repo, params.Tag)
	return toResult("get release by tag name", newRelease(rel), resp, err, http.StatusOK)
}

// CreateRelease creates a new release.
// https://docs.github.com/en/rest/releases/releases?apiVersion=2022-11-28#create-a-release
func (c *Client) CreateRelease(
	ctx context.Context, params CreateReleaseParams,
) (result.Result[*Release, *GitHubError], error) {
	c.log.Debug(fmt.Sprintf("Creating release for tag %s in %s/%s", params.TagName, params.Owner, params.Repo))

	req := &github.RepositoryRelease{
		TagName:    github.Ptr(params.TagName),
		Name:       params.Name,
		Body:       params.Body,
		Draft:      params.Draft,
		Prerelease: params.Prerelease,
	}
	if params.TargetCommitish != "" {
		req.TargetCommitish = github.Ptr(params.TargetCommitish)
	}
	if params.DiscussionCategoryName != "" {
		req.DiscussionCategoryName = github.Ptr(params.DiscussionCategoryName)
	}
	if params.GenerateReleaseNotes {
		req.GenerateReleaseNotes = github.Ptr(true)
	}

	rel, resp, err := c.client.Repositories.CreateRelease(ctx, params.Owner, params.Repo, req)
	return toResult("create release", newRelease(rel), resp, err, http.StatusCreated)
}

// UpdateRelease edits an existing release.
// https://docs.github.com/en/rest/releases/releases?apiVersion=2022-11-28#update-a-release
func (c *Client) UpdateRelease(
	ctx context.Context, params UpdateReleaseParams,
) (result.Result[*Release, *GitHubError], error) {
	c.log.Debug(fmt.Sprintf("Updating release %d in %s/%s", params.ID, params.Owner, params.Repo))

	req := &github.RepositoryRelease{
		Draft: github.Ptr(params.Draft),
	}
	if params.DiscussionCategoryName != "" {
		req.DiscussionCategoryName = github.Ptr(params.DiscussionCategoryName)
	}
	if params.MakeLatest.IsSet() {
		req.MakeLatest = github.Ptr(string(params.MakeLatest))
	}

	rel, resp, err := c.client.Repositories.EditRelease(ctx, params.Owner, params.Repo, params.ID, req)
	return toResult("update release", newRelease(rel), resp, err, http.StatusOK)
}

// DeleteRelease deletes a release.
// https://docs.github.com/en/rest/releases/releases?apiVersion=2022-11-28#delete-a-release
func (c *Client) DeleteRelease(
	ctx context.Context, params DeleteReleaseParams,
) (result.Result[struct{}, *GitHubError], error) {
	c.log.Debug(fmt.Sprintf("Deleting release %d in %s/%s", params.ID, params.Owner, params.Repo))

	resp, err := c.client.Repositories.DeleteRelease(ctx, params.Owner, params.Repo, params.ID)
	return toResult("delete release", struct{}{}, resp, err, http.StatusNoContent)
}

// DeleteTag deletes the git reference of a tag.
// https://docs.github.com/en/rest/git/refs?apiVersion=2022-11-28#delete-a-reference
func (c *Client) DeleteTag(
	ctx context.Context, params DeleteTagParams,
) (result.Result[struct{}, *GitHubError], error) {
	c.log.Debug(fmt.Sprintf("Deleting tag %s in %s/%s", params.Tag, params.Owner, params.Repo))

	resp, err := c.client.Git.DeleteRef(ctx, params.Owner, params.Repo, tagRefPrefix+params.Tag)
	return toResult("delete tag", struct{}{}, resp, err, http.StatusNoContent)
}

// GenerateReleaseNotes generates release notes content for a release.
// https://docs.github.com/en/rest/releases/releases?apiVersion=2022-11-28#generate-release-notes-content-for-a-release
func (c *Client) GenerateReleaseNotes(
	ctx context.Context, params GenerateReleaseNotesParams,
) (result.Result[*ReleaseNotes, *GitHubError], error) {
	c.log.Debug(fmt.Sprintf("Generating release notes for %s since %s", params.TagName, params.PreviousTagName))

	opts := &github.GenerateNotesOptions{
		TagName: params.TagName,
	}
	if params.TargetCommitish != "" {
		opts.TargetCommitish = github.Ptr(params.TargetCommitish)
	}
	if params.PreviousTagName != "" {
		opts.PreviousTagName = github.Ptr(params.PreviousTagName)
	}

	notes, resp, err := c.client.Repositories.GenerateReleaseNotes(ctx, params.Owner, params.Repo, opts)
	var out *ReleaseNotes
	if notes != nil {
		out = &ReleaseNotes{Name: notes.Name, Body: notes.Body}
	}
	return toResult("generate release notes", out, resp, err, http.StatusOK)
}

// toResult maps a go-github call outcome onto a Result.
// A missing response or a decoding failure on the expected status is
// returned as an error; any other status becomes a failed Result.
func toResult[T any](
	op string, value T, resp *github.Response, err error, expected int,
) (result.Result[T, *GitHubError], error) {
	if resp == nil || resp.Response == nil {
		if err == nil {
			err = errNoResponse
		}
		return result.Result[T, *GitHubError]{}, fmt.Errorf("failed to %s: %w", op, err)
	}

	if resp.StatusCode != expected {
		return result.Failure[T](newGitHubError(resp.StatusCode, err)), nil
	}

	if err != nil {
		return result.Result[T, *GitHubError]{}, fmt.Errorf("failed to %s: %w", op, err)
	}

	return result.Success[T, *GitHubError](value), nil
}
