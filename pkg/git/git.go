// Package git inspects the local repository to fill in context that the
// Actions runner normally provides: the OWNER/REPO slug and the tag of HEAD.
package git

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/create-release/internal/logger"
	"github.com/sgaunet/create-release/internal/urlutil"
)

const defaultRemote = "origin"

var (
	errNoRemoteURL    = errors.New("no URLs found for remote")
	errNoTagAtHead    = errors.New("no tag points at HEAD")
	errManyTagsAtHead = errors.New("several tags point at HEAD")

	// ErrNoTagAtHead is returned by HeadTag when HEAD is not tagged.
	ErrNoTagAtHead = errNoTagAtHead
	// ErrManyTagsAtHead is returned by HeadTag when the tag is ambiguous.
	ErrManyTagsAtHead = errManyTagsAtHead
)

// Repository wraps a go-git repository.
type Repository struct {
	repo *git.Repository
	log  *bullets.Logger
}

// OpenRepository opens the repository containing path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo, log: logger.NoLogger()}, nil
}

// SetLogger sets the logger for the repository.
func (r *Repository) SetLogger(logger *bullets.Logger) {
	r.log = logger
}

// GetRemoteURL returns the first URL of the named remote.
func (r *Repository) GetRemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", errNoRemoteURL, remoteName)
	}

	return urls[0], nil
}

// RepositorySlug returns OWNER/REPO derived from the origin remote.
func (r *Repository) RepositorySlug() (string, error) {
	url, err := r.GetRemoteURL(defaultRemote)
	if err != nil {
		return "", err
	}

	slug, err := urlutil.RepositorySlug(url)
	if err != nil {
		return "", fmt.Errorf("failed to parse remote %s: %w", defaultRemote, err)
	}

	r.log.Debug("Repository derived from " + defaultRemote + " remote: " + slug)
	return slug, nil
}

// HeadTag returns the single tag pointing at HEAD. Lightweight and
// annotated tags are both considered.
func (r *Repository) HeadTag() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}

	tags, err := r.tagsAt(head.Hash())
	if err != nil {
		return "", err
	}

	switch len(tags) {
	case 0:
		return "", errNoTagAtHead
	case 1:
		r.log.Debug("Tag found at HEAD: " + tags[0])
		return tags[0], nil
	default:
		return "", fmt.Errorf("%w: %v", errManyTagsAtHead, tags)
	}
}

// tagsAt lists the names of tags whose target commit is hash, sorted.
func (r *Repository) tagsAt(hash plumbing.Hash) ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target, err := r.peel(ref)
		if err != nil {
			return err
		}
		if target == hash {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	sort.Strings(tags)
	return tags, nil
}

// peel resolves an annotated tag to the commit it points at.
func (r *Repository) peel(ref *plumbing.Reference) (plumbing.Hash, error) {
	tag, err := r.repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, err := tag.Commit()
		if err != nil {
			if errors.Is(err, object.ErrUnsupportedObject) {
				return plumbing.ZeroHash, nil
			}
			return plumbing.ZeroHash, fmt.Errorf("failed to resolve tag %s: %w", ref.Name().Short(), err)
		}
		return commit.Hash, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		// Lightweight tag: the reference points at the commit directly.
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, fmt.Errorf("failed to read tag %s: %w", ref.Name().Short(), err)
	}
}
