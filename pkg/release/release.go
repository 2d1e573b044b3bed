// Package release implements the two phases of a release: Create makes a
// (usually draft) release, optionally replacing an existing one, and
// Publish later turns that draft into a published release.
//
// Both phases share nothing but the release id returned by Create, which
// the caller persists and hands to Publish.
package release

import (
	"fmt"
	"os"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/create-release/internal/logger"
	"github.com/sgaunet/create-release/internal/security"
	ghclient "github.com/sgaunet/create-release/pkg/github"
)

// ConfirmFunc is asked before an existing release is deleted during overwrite.
// Returning false aborts Create with [ErrOverwriteDeclined].
type ConfirmFunc func(existing *ghclient.Release, deleteTag bool) (bool, error)

// Releaser runs the release workflows against a GitHub API client.
type Releaser struct {
	client     ghclient.APIClient
	repository string
	readFile   func(string) ([]byte, error)
	confirm    ConfirmFunc
	log        *bullets.Logger
}

// NewReleaser creates a Releaser. repository is the ambient OWNER/REPO slug
// used when options leave owner or repo empty.
func NewReleaser(client ghclient.APIClient, repository string) *Releaser {
	return &Releaser{
		client:     client,
		repository: repository,
		readFile:   os.ReadFile,
		log:        logger.NoLogger(),
	}
}

// SetLogger sets the logger for the workflows.
func (r *Releaser) SetLogger(logger *bullets.Logger) {
	r.log = logger
}

// SetConfirm installs a hook asked before deleting an existing release.
func (r *Releaser) SetConfirm(confirm ConfirmFunc) {
	r.confirm = confirm
}

// SetReadFile replaces the function used to read the body file.
func (r *Releaser) SetReadFile(readFile func(string) ([]byte, error)) {
	r.readFile = readFile
}

// remoteFailure logs a failed response and returns the terminal error for step.
func (r *Releaser) remoteFailure(step string, ghErr *ghclient.GitHubError) error {
	r.log.Error(fmt.Sprintf("failed to %s: unexpected status code: %d, error: %s",
		step, ghErr.StatusCode, security.SanitizeString(ghErr.RawBody())))
	return fmt.Errorf("%w: failed to %s: %w", errRemoteCall, step, ghErr)
}
