package release

import (
	"context"
	"fmt"
	"strconv"

	ghclient "github.com/sgaunet/create-release/pkg/github"
)

// PublishOptions holds the inputs of [Releaser.Publish].
// DiscussionCategoryName and MakeLatest are only sent when non-empty.
type PublishOptions struct {
	Owner                  string
	Repo                   string
	ID                     string
	DiscussionCategoryName string
	MakeLatest             string
}

// Publish turns the draft release opts.ID into a published release with a
// single update call. An empty id means there is nothing to publish.
func (r *Releaser) Publish(ctx context.Context, opts PublishOptions) error {
	if opts.ID == "" {
		r.log.Debug("No release id, nothing to publish")
		return nil
	}

	makeLatest, err := ghclient.ParseMakeLatest(opts.MakeLatest)
	if err != nil {
		return fmt.Errorf("invalid make_latest: %w", err)
	}

	id, err := strconv.ParseInt(opts.ID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: %q", errInvalidReleaseID, opts.ID)
	}

	owner, repo, err := resolveRepository(opts.Owner, opts.Repo, r.repository)
	if err != nil {
		return err
	}

	r.log.Debug(fmt.Sprintf("Publishing release %d in %s/%s", id, owner, repo))

	res, err := r.client.UpdateRelease(ctx, ghclient.UpdateReleaseParams{
		Owner:                  owner,
		Repo:                   repo,
		ID:                     id,
		Draft:                  false,
		DiscussionCategoryName: opts.DiscussionCategoryName,
		MakeLatest:             makeLatest,
	})
	if err != nil {
		return fmt.Errorf("failed to publish release: %w", err)
	}
	if res.IsFailure() {
		return r.remoteFailure("publish release", res.Err())
	}

	r.log.Infof("Release published: %s", res.Value().HTMLURL)
	return nil
}
