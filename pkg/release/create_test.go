package release_test

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	ghclient "github.com/sgaunet/create-release/pkg/github"
	"github.com/sgaunet/create-release/pkg/release"
	"github.com/sgaunet/create-release/pkg/result"
	"github.com/sgaunet/create-release/testing/fixtures"
	"github.com/sgaunet/create-release/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func lookupFinds(m *mocks.GitHubAPIClient) {
	m.GetReleaseByTagNameResponse = result.Success[*ghclient.Release, *ghclient.GitHubError](fixtures.ExistingRelease())
}

func createParams(t *testing.T, m *mocks.GitHubAPIClient) ghclient.CreateReleaseParams {
	t.Helper()
	call := m.GetLastCall(mocks.MethodCreateRelease)
	require.NotNil(t, call, "CreateRelease was not called")
	params, ok := call.Params.(ghclient.CreateReleaseParams)
	require.True(t, ok)
	return params
}

func TestCreate_WithoutOverwrite(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	r := release.NewReleaser(m, "acme/widgets")

	res, err := r.Create(context.Background(), release.CreateOptions{TagName: "v1.0.0"})
	require.NoError(t, err)

	assert.Equal(t, &release.CreateResult{
		ID:        "123",
		HTMLURL:   fixtures.DefaultHTMLURL,
		UploadURL: fixtures.DefaultUploadURL,
	}, res)
	assert.Equal(t, []string{mocks.MethodCreateRelease}, m.GetMethods())

	params := createParams(t, m)
	assert.Equal(t, "acme", params.Owner)
	assert.Equal(t, "widgets", params.Repo)
	assert.Equal(t, "v1.0.0", params.TagName)
	assert.Empty(t, params.TargetCommitish)
	assert.Nil(t, params.Name)
	assert.Nil(t, params.Body)
	assert.Equal(t, boolPtr(false), params.Draft)
	assert.Equal(t, boolPtr(false), params.Prerelease)
	assert.Empty(t, params.DiscussionCategoryName)
	assert.False(t, params.GenerateReleaseNotes)
}

func TestCreate_ForwardsOptions(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	r := release.NewReleaser(m, "")

	_, err := r.Create(context.Background(), release.CreateOptions{
		Owner:                  "acme",
		Repo:                   "widgets",
		TagName:                "v1.0.0",
		ReleaseName:            "Widgets 1.0",
		Body:                   "Bug fixes",
		Commitish:              "main",
		DiscussionCategoryName: "Announcements",
		Draft:                  true,
		Prerelease:             true,
	})
	require.NoError(t, err)

	params := createParams(t, m)
	assert.Equal(t, "main", params.TargetCommitish)
	assert.Equal(t, strPtr("Widgets 1.0"), params.Name)
	assert.Equal(t, strPtr("Bug fixes"), params.Body)
	assert.Equal(t, boolPtr(true), params.Draft)
	assert.Equal(t, boolPtr(true), params.Prerelease)
	assert.Equal(t, "Announcements", params.DiscussionCategoryName)
}

func TestCreate_Overwrite(t *testing.T) {
	tests := []struct {
		name        string
		existing    bool
		commitish   string
		wantMethods []string
	}{
		{
			name:     "no existing release",
			existing: false,
			wantMethods: []string{
				mocks.MethodGetReleaseByTagName,
				mocks.MethodCreateRelease,
			},
		},
		{
			name:     "existing release without commitish keeps the tag",
			existing: true,
			wantMethods: []string{
				mocks.MethodGetReleaseByTagName,
				mocks.MethodDeleteRelease,
				mocks.MethodCreateRelease,
			},
		},
		{
			name:      "existing release with commitish deletes the tag",
			existing:  true,
			commitish: fixtures.DefaultCommitish,
			wantMethods: []string{
				mocks.MethodGetReleaseByTagName,
				mocks.MethodDeleteRelease,
				mocks.MethodDeleteTag,
				mocks.MethodCreateRelease,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewGitHubAPIClient()
			if tt.existing {
				lookupFinds(m)
			}
			r := release.NewReleaser(m, "acme/widgets")

			res, err := r.Create(context.Background(), release.CreateOptions{
				TagName:   "v1.0.0",
				Commitish: tt.commitish,
				Overwrite: true,
			})
			require.NoError(t, err)
			assert.Equal(t, "123", res.ID)
			assert.Equal(t, tt.wantMethods, m.GetMethods())

			lookup := m.GetLastCall(mocks.MethodGetReleaseByTagName)
			require.NotNil(t, lookup)
			assert.Equal(t, ghclient.GetReleaseByTagNameParams{Owner: "acme", Repo: "widgets", Tag: "v1.0.0"},
				lookup.Params)
		})
	}
}

func TestCreate_OverwriteDeletesByLookupResult(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	m.GetReleaseByTagNameResponse = result.Success[*ghclient.Release, *ghclient.GitHubError](&ghclient.Release{
		ID:      42,
		TagName: "v1.0.0",
	})
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{
		TagName:   "v1.0.0",
		Commitish: "deadbeef",
		Overwrite: true,
	})
	require.NoError(t, err)

	del := m.GetLastCall(mocks.MethodDeleteRelease)
	require.NotNil(t, del)
	assert.Equal(t, ghclient.DeleteReleaseParams{Owner: "acme", Repo: "widgets", ID: 42}, del.Params)

	delTag := m.GetLastCall(mocks.MethodDeleteTag)
	require.NotNil(t, delTag)
	assert.Equal(t, ghclient.DeleteTagParams{Owner: "acme", Repo: "widgets", Tag: "v1.0.0"}, delTag.Params)

	assert.Equal(t, "deadbeef", createParams(t, m).TargetCommitish)
}

func TestCreate_TerminalFailures(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *mocks.GitHubAPIClient)
		wantStatus  int
		wantStep    string
		wantMethods []string
	}{
		{
			name: "lookup forbidden",
			setup: func(m *mocks.GitHubAPIClient) {
				m.GetReleaseByTagNameResponse = result.Failure[*ghclient.Release](fixtures.ForbiddenError())
			},
			wantStatus:  403,
			wantStep:    "get release by tag name",
			wantMethods: []string{mocks.MethodGetReleaseByTagName},
		},
		{
			name: "delete release fails",
			setup: func(m *mocks.GitHubAPIClient) {
				lookupFinds(m)
				m.DeleteReleaseResponse = result.Failure[struct{}](fixtures.ForbiddenError())
			},
			wantStatus:  403,
			wantStep:    "delete release",
			wantMethods: []string{mocks.MethodGetReleaseByTagName, mocks.MethodDeleteRelease},
		},
		{
			name: "delete tag fails",
			setup: func(m *mocks.GitHubAPIClient) {
				lookupFinds(m)
				m.DeleteTagResponse = result.Failure[struct{}](fixtures.ValidationFailedError())
			},
			wantStatus: 422,
			wantStep:   "delete tag",
			wantMethods: []string{
				mocks.MethodGetReleaseByTagName,
				mocks.MethodDeleteRelease,
				mocks.MethodDeleteTag,
			},
		},
		{
			name: "create fails",
			setup: func(m *mocks.GitHubAPIClient) {
				m.CreateReleaseResponse = result.Failure[*ghclient.Release](fixtures.ValidationFailedError())
			},
			wantStatus:  422,
			wantStep:    "create release",
			wantMethods: []string{mocks.MethodGetReleaseByTagName, mocks.MethodCreateRelease},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewGitHubAPIClient()
			tt.setup(m)
			r := release.NewReleaser(m, "acme/widgets")

			res, err := r.Create(context.Background(), release.CreateOptions{
				TagName:   "v1.0.0",
				Commitish: "deadbeef",
				Overwrite: true,
			})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, release.ErrRemoteCall)
			assert.Contains(t, err.Error(), tt.wantStep)

			var ghErr *ghclient.GitHubError
			require.ErrorAs(t, err, &ghErr)
			assert.Equal(t, tt.wantStatus, ghErr.StatusCode)

			assert.Equal(t, tt.wantMethods, m.GetMethods())
		})
	}
}

func TestCreate_FailureMessageCarriesStatusAndBody(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	m.CreateReleaseResponse = result.Failure[*ghclient.Release](fixtures.ValidationFailedError())
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{TagName: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 422")
	assert.Contains(t, err.Error(), "already_exists")
}

func TestCreate_TransportError(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	m.GetReleaseByTagNameError = errors.New("connection refused")
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{TagName: "v1.0.0", Overwrite: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, release.ErrRemoteCall)
	assert.Equal(t, 0, m.GetCallCount(mocks.MethodCreateRelease))
}

func TestCreate_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name       string
		repository string
		opts       release.CreateOptions
		wantErr    error
	}{
		{
			name:       "missing tag name",
			repository: "acme/widgets",
			opts:       release.CreateOptions{},
			wantErr:    release.ErrTagNameRequired,
		},
		{
			name:    "missing repository",
			opts:    release.CreateOptions{TagName: "v1.0.0"},
			wantErr: release.ErrRepositoryRequired,
		},
		{
			name:       "unreadable body file",
			repository: "acme/widgets",
			opts:       release.CreateOptions{TagName: "v1.0.0", BodyPath: "missing.md", Overwrite: true},
			wantErr:    os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewGitHubAPIClient()
			r := release.NewReleaser(m, tt.repository)
			r.SetReadFile(func(string) ([]byte, error) { return nil, os.ErrNotExist })

			_, err := r.Create(context.Background(), tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, m.GetCalls())
		})
	}
}

func TestCreate_BodyFileWinsOverInlineBody(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	r := release.NewReleaser(m, "acme/widgets")
	r.SetReadFile(func(path string) ([]byte, error) {
		assert.Equal(t, "CHANGELOG.md", path)
		return []byte("from file"), nil
	})

	_, err := r.Create(context.Background(), release.CreateOptions{
		TagName:  "v1.0.0",
		Body:     "inline",
		BodyPath: "CHANGELOG.md",
	})
	require.NoError(t, err)
	assert.Equal(t, strPtr("from file"), createParams(t, m).Body)
}

func TestCreate_ExplicitRepositoryOverridesAmbient(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{Owner: "fork", TagName: "v1.0.0"})
	require.NoError(t, err)

	params := createParams(t, m)
	assert.Equal(t, "fork", params.Owner)
	assert.Equal(t, "widgets", params.Repo)
}

func TestCreate_NotesFromStartTag(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{
		TagName:              "v1.0.0",
		Body:                 "Highlights",
		Commitish:            "main",
		NotesStartTag:        "v0.9.0",
		GenerateReleaseNotes: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{mocks.MethodGenerateReleaseNotes, mocks.MethodCreateRelease}, m.GetMethods())

	gen := m.GetLastCall(mocks.MethodGenerateReleaseNotes)
	require.NotNil(t, gen)
	assert.Equal(t, ghclient.GenerateReleaseNotesParams{
		Owner:           "acme",
		Repo:            "widgets",
		TagName:         "v1.0.0",
		TargetCommitish: "main",
		PreviousTagName: "v0.9.0",
	}, gen.Params)

	params := createParams(t, m)
	assert.Equal(t, strPtr("Highlights\n\n"+fixtures.GeneratedNotes().Body), params.Body)
	assert.Equal(t, strPtr(fixtures.GeneratedNotes().Name), params.Name)
	assert.False(t, params.GenerateReleaseNotes, "notes are already composed client side")
}

func TestCreate_NotesStartTagNotFound(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	m.GenerateReleaseNotesResponse = result.Failure[*ghclient.ReleaseNotes](fixtures.NotFoundError())
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{
		TagName:       "v1.0.0",
		ReleaseName:   "Widgets",
		Body:          "Highlights",
		NotesStartTag: "v0.0.1",
	})
	require.NoError(t, err)

	params := createParams(t, m)
	assert.Equal(t, strPtr("Highlights"), params.Body)
	assert.Equal(t, strPtr("Widgets"), params.Name)
}

func TestCreate_NotesFailureIsTerminal(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	m.GenerateReleaseNotesResponse = result.Failure[*ghclient.ReleaseNotes](fixtures.ForbiddenError())
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{
		TagName:       "v1.0.0",
		NotesStartTag: "v0.9.0",
		Overwrite:     true,
	})
	require.ErrorIs(t, err, release.ErrRemoteCall)
	assert.Equal(t, []string{mocks.MethodGenerateReleaseNotes}, m.GetMethods())
}

func TestCreate_ServerSideNotes(t *testing.T) {
	m := mocks.NewGitHubAPIClient()
	r := release.NewReleaser(m, "acme/widgets")

	_, err := r.Create(context.Background(), release.CreateOptions{
		TagName:              "v1.0.0",
		GenerateReleaseNotes: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, m.GetCallCount(mocks.MethodGenerateReleaseNotes))
	assert.True(t, createParams(t, m).GenerateReleaseNotes)
}

func TestCreate_ConfirmHook(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		m := mocks.NewGitHubAPIClient()
		lookupFinds(m)
		r := release.NewReleaser(m, "acme/widgets")

		var gotTag bool
		r.SetConfirm(func(existing *ghclient.Release, deleteTag bool) (bool, error) {
			assert.Equal(t, int64(fixtures.DefaultReleaseID), existing.ID)
			gotTag = deleteTag
			return false, nil
		})

		_, err := r.Create(context.Background(), release.CreateOptions{
			TagName:   "v1.0.0",
			Commitish: "deadbeef",
			Overwrite: true,
		})
		require.ErrorIs(t, err, release.ErrOverwriteDeclined)
		assert.True(t, gotTag)
		assert.Equal(t, []string{mocks.MethodGetReleaseByTagName}, m.GetMethods())
	})

	t.Run("prompt error", func(t *testing.T) {
		m := mocks.NewGitHubAPIClient()
		lookupFinds(m)
		r := release.NewReleaser(m, "acme/widgets")
		r.SetConfirm(func(*ghclient.Release, bool) (bool, error) {
			return false, errors.New("interrupt")
		})

		_, err := r.Create(context.Background(), release.CreateOptions{TagName: "v1.0.0", Overwrite: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interrupt")
		assert.Equal(t, 0, m.GetCallCount(mocks.MethodDeleteRelease))
	})

	t.Run("not asked without existing release", func(t *testing.T) {
		m := mocks.NewGitHubAPIClient()
		r := release.NewReleaser(m, "acme/widgets")
		r.SetConfirm(func(*ghclient.Release, bool) (bool, error) {
			t.Fatal("confirm must not be called")
			return false, nil
		})

		_, err := r.Create(context.Background(), release.CreateOptions{TagName: "v1.0.0", Overwrite: true})
		require.NoError(t, err)
	})
}

func TestCreate_OverwriteIsRepeatable(t *testing.T) {
	platform := newFakePlatform()
	r := release.NewReleaser(platform, "acme/widgets")
	opts := release.CreateOptions{TagName: "v1.0.0", Commitish: "deadbeef", Overwrite: true}

	first, err := r.Create(context.Background(), opts)
	require.NoError(t, err)

	second, err := r.Create(context.Background(), opts)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, platform.releases, 1)
	assert.Equal(t, second.ID, strconv.FormatInt(platform.releases["v1.0.0"].ID, 10))
	assert.Equal(t, 1, platform.deletedReleases)
	assert.Equal(t, 1, platform.deletedTags)
}

// fakePlatform keeps releases in memory, keyed by tag.
type fakePlatform struct {
	*mocks.GitHubAPIClient
	releases        map[string]*ghclient.Release
	nextID          int64
	deletedReleases int
	deletedTags     int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		GitHubAPIClient: mocks.NewGitHubAPIClient(),
		releases:        make(map[string]*ghclient.Release),
		nextID:          100,
	}
}

func (f *fakePlatform) GetReleaseByTagName(
	_ context.Context, params ghclient.GetReleaseByTagNameParams,
) (result.Result[*ghclient.Release, *ghclient.GitHubError], error) {
	if rel, ok := f.releases[params.Tag]; ok {
		return result.Success[*ghclient.Release, *ghclient.GitHubError](rel), nil
	}
	return result.Failure[*ghclient.Release](fixtures.NotFoundError()), nil
}

func (f *fakePlatform) CreateRelease(
	_ context.Context, params ghclient.CreateReleaseParams,
) (result.Result[*ghclient.Release, *ghclient.GitHubError], error) {
	if _, ok := f.releases[params.TagName]; ok {
		return result.Failure[*ghclient.Release](fixtures.ValidationFailedError()), nil
	}
	f.nextID++
	rel := &ghclient.Release{
		ID:              f.nextID,
		TagName:         params.TagName,
		TargetCommitish: params.TargetCommitish,
		HTMLURL:         "https://github.com/" + params.Owner + "/" + params.Repo + "/releases/tag/" + params.TagName,
	}
	f.releases[params.TagName] = rel
	return result.Success[*ghclient.Release, *ghclient.GitHubError](rel), nil
}

func (f *fakePlatform) DeleteRelease(
	_ context.Context, params ghclient.DeleteReleaseParams,
) (result.Result[struct{}, *ghclient.GitHubError], error) {
	for tag, rel := range f.releases {
		if rel.ID == params.ID {
			delete(f.releases, tag)
			f.deletedReleases++
			return result.Success[struct{}, *ghclient.GitHubError](struct{}{}), nil
		}
	}
	return result.Failure[struct{}](fixtures.NotFoundError()), nil
}

func (f *fakePlatform) DeleteTag(
	_ context.Context, params ghclient.DeleteTagParams,
) (result.Result[struct{}, *ghclient.GitHubError], error) {
	if strings.TrimSpace(params.Tag) == "" {
		return result.Failure[struct{}](fixtures.ValidationFailedError()), nil
	}
	f.deletedTags++
	return result.Success[struct{}, *ghclient.GitHubError](struct{}{}), nil
}
