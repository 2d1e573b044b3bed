package release

import (
	"context"
	"fmt"
	"net/http"

	ghclient "github.com/sgaunet/create-release/pkg/github"
)

// notesSeparator goes between a user supplied body and generated notes.
const notesSeparator = "\n\n"

// composeNotes merges generated notes into the body and name.
// An explicit name is kept; a missing one takes the generated title.
func composeNotes(body, name *string, notes *ghclient.ReleaseNotes) (*string, *string) {
	if notes == nil {
		return body, name
	}

	var newBody string
	if body != nil && *body != "" {
		newBody = *body + notesSeparator + notes.Body
	} else {
		newBody = notes.Body
	}

	if name == nil && notes.Name != "" {
		generated := notes.Name
		name = &generated
	}
	return &newBody, name
}

// generateNotes fetches notes since startTag and merges them into body and name.
// A 404 means the previous tag does not exist; body and name are returned unchanged.
func (r *Releaser) generateNotes(
	ctx context.Context, owner, repo string, opts CreateOptions, body, name *string,
) (*string, *string, error) {
	r.log.Debug("Generating release notes since " + opts.NotesStartTag)

	res, err := r.client.GenerateReleaseNotes(ctx, ghclient.GenerateReleaseNotesParams{
		Owner:           owner,
		Repo:            repo,
		TagName:         opts.TagName,
		TargetCommitish: opts.Commitish,
		PreviousTagName: opts.NotesStartTag,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate release notes: %w", err)
	}

	if res.IsFailure() {
		if res.Err().StatusCode == http.StatusNotFound {
			r.log.Warnf("Previous tag %s not found, creating the release without generated notes", opts.NotesStartTag)
			return body, name, nil
		}
		return nil, nil, r.remoteFailure("generate release notes", res.Err())
	}

	body, name = composeNotes(body, name, res.Value())
	return body, name, nil
}
