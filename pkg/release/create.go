package release

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	ghclient "github.com/sgaunet/create-release/pkg/github"
)

// CreateOptions holds the inputs of [Releaser.Create].
type CreateOptions struct {
	Owner                  string
	Repo                   string
	TagName                string
	ReleaseName            string
	Body                   string
	BodyPath               string
	Commitish              string
	DiscussionCategoryName string
	Draft                  bool
	Prerelease             bool
	GenerateReleaseNotes   bool
	NotesStartTag          string
	Overwrite              bool
}

// CreateResult is the normalized outcome of [Releaser.Create].
type CreateResult struct {
	ID        string
	HTMLURL   string
	UploadURL string
}

// Create resolves the options, composes release notes, removes an existing
// release when Overwrite is set, and creates the new release.
//
// Remote failures are terminal and not retried. Deletions done before a
// failing step are not rolled back.
func (r *Releaser) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	if opts.TagName == "" {
		return nil, errTagNameRequired
	}

	owner, repo, err := resolveRepository(opts.Owner, opts.Repo, r.repository)
	if err != nil {
		return nil, err
	}

	body, err := resolveBody(opts.Body, opts.BodyPath, r.readFile)
	if err != nil {
		return nil, err
	}
	name := optionalString(opts.ReleaseName)

	generate := false
	switch resolveNotesMode(opts.GenerateReleaseNotes, opts.NotesStartTag) {
	case notesFromStartTag:
		body, name, err = r.generateNotes(ctx, owner, repo, opts, body, name)
		if err != nil {
			return nil, err
		}
	case notesServerSide:
		generate = true
	case notesNone:
	}

	if opts.Overwrite {
		if err := r.removeExisting(ctx, owner, repo, opts.TagName, opts.Commitish); err != nil {
			return nil, err
		}
	}

	r.log.Debug(fmt.Sprintf("Creating release %s in %s/%s (draft: %t, prerelease: %t)",
		opts.TagName, owner, repo, opts.Draft, opts.Prerelease))

	res, err := r.client.CreateRelease(ctx, ghclient.CreateReleaseParams{
		Owner:                  owner,
		Repo:                   repo,
		TagName:                opts.TagName,
		TargetCommitish:        opts.Commitish,
		Name:                   name,
		Body:                   body,
		Draft:                  &opts.Draft,
		Prerelease:             &opts.Prerelease,
		DiscussionCategoryName: opts.DiscussionCategoryName,
		GenerateReleaseNotes:   generate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}
	if res.IsFailure() {
		return nil, r.remoteFailure("create release", res.Err())
	}

	created := res.Value()
	r.log.Infof("Release created: %s", created.HTMLURL)

	return &CreateResult{
		ID:        strconv.FormatInt(created.ID, 10),
		HTMLURL:   created.HTMLURL,
		UploadURL: created.UploadURL,
	}, nil
}

// removeExisting deletes the release of tag, and its tag when commitish is
// explicit. Without an explicit commitish the tag is kept so the new
// release reuses it.
func (r *Releaser) removeExisting(ctx context.Context, owner, repo, tag, commitish string) error {
	r.log.Debug("Looking for an existing release with tag " + tag)

	res, err := r.client.GetReleaseByTagName(ctx, ghclient.GetReleaseByTagNameParams{
		Owner: owner,
		Repo:  repo,
		Tag:   tag,
	})
	if err != nil {
		return fmt.Errorf("failed to get release by tag name: %w", err)
	}
	if res.IsFailure() {
		if res.Err().StatusCode == http.StatusNotFound {
			r.log.Debug("No existing release for tag " + tag)
			return nil
		}
		return r.remoteFailure("get release by tag name", res.Err())
	}

	existing := res.Value()
	deleteTag := commitish != ""

	if r.confirm != nil {
		ok, err := r.confirm(existing, deleteTag)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", errOverwriteDeclined, existing.TagName)
		}
	}

	del, err := r.client.DeleteRelease(ctx, ghclient.DeleteReleaseParams{
		Owner: owner,
		Repo:  repo,
		ID:    existing.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete release: %w", err)
	}
	if del.IsFailure() {
		return r.remoteFailure("delete release", del.Err())
	}
	r.log.Infof("Existing release %d deleted", existing.ID)

	if !deleteTag {
		return nil
	}

	delTag, err := r.client.DeleteTag(ctx, ghclient.DeleteTagParams{
		Owner: owner,
		Repo:  repo,
		Tag:   existing.TagName,
	})
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if delTag.IsFailure() {
		return r.remoteFailure("delete tag", delTag.Err())
	}
	r.log.Infof("Existing tag %s deleted", existing.TagName)

	return nil
}
