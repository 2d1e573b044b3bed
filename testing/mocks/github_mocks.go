// Package mocks provides call-tracking test doubles.
package mocks

import (
	"context"
	"sync"

	ghpkg "github.com/sgaunet/create-release/pkg/github"
	"github.com/sgaunet/create-release/pkg/result"
	"github.com/sgaunet/create-release/testing/fixtures"
)

// Method names recorded by GitHubAPIClient.
const (
	MethodGetReleaseByTagName  = "GetReleaseByTagName"
	MethodCreateRelease        = "CreateRelease"
	MethodUpdateRelease        = "UpdateRelease"
	MethodDeleteRelease        = "DeleteRelease"
	MethodDeleteTag            = "DeleteTag"
	MethodGenerateReleaseNotes = "GenerateReleaseNotes"
)

type (
	releaseResult = result.Result[*ghpkg.Release, *ghpkg.GitHubError]
	emptyResult   = result.Result[struct{}, *ghpkg.GitHubError]
	notesResult   = result.Result[*ghpkg.ReleaseNotes, *ghpkg.GitHubError]
)

// GitHubAPIClient is a mock implementation of github.APIClient with call tracking.
// A new mock finds no existing release and succeeds on every other call.
type GitHubAPIClient struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	GetReleaseByTagNameResponse  releaseResult
	GetReleaseByTagNameError     error
	CreateReleaseResponse        releaseResult
	CreateReleaseError           error
	UpdateReleaseResponse        releaseResult
	UpdateReleaseError           error
	DeleteReleaseResponse        emptyResult
	DeleteReleaseError           error
	DeleteTagResponse            emptyResult
	DeleteTagError               error
	GenerateReleaseNotesResponse notesResult
	GenerateReleaseNotesError    error
}

// MethodCall represents a tracked method call with its parameters.
type MethodCall struct {
	Method string
	Params any
}

// NewGitHubAPIClient creates a new mock GitHub API client.
func NewGitHubAPIClient() *GitHubAPIClient {
	return &GitHubAPIClient{
		calls:                        make([]MethodCall, 0),
		GetReleaseByTagNameResponse:  result.Failure[*ghpkg.Release](fixtures.NotFoundError()),
		CreateReleaseResponse:        result.Success[*ghpkg.Release, *ghpkg.GitHubError](fixtures.ValidRelease()),
		UpdateReleaseResponse:        result.Success[*ghpkg.Release, *ghpkg.GitHubError](fixtures.ValidRelease()),
		DeleteReleaseResponse:        result.Success[struct{}, *ghpkg.GitHubError](struct{}{}),
		DeleteTagResponse:            result.Success[struct{}, *ghpkg.GitHubError](struct{}{}),
		GenerateReleaseNotesResponse: result.Success[*ghpkg.ReleaseNotes, *ghpkg.GitHubError](fixtures.GeneratedNotes()),
	}
}

// GetReleaseByTagName implements github.APIClient.
func (m *GitHubAPIClient) GetReleaseByTagName(
	_ context.Context, params ghpkg.GetReleaseByTagNameParams,
) (releaseResult, error) {
	m.trackCall(MethodGetReleaseByTagName, params)
	return m.GetReleaseByTagNameResponse, m.GetReleaseByTagNameError
}

// CreateRelease implements github.APIClient.
func (m *GitHubAPIClient) CreateRelease(
	_ context.Context, params ghpkg.CreateReleaseParams,
) (releaseResult, error) {
	m.trackCall(MethodCreateRelease, params)
	return m.CreateReleaseResponse, m.CreateReleaseError
}

// UpdateRelease implements github.APIClient.
func (m *GitHubAPIClient) UpdateRelease(
	_ context.Context, params ghpkg.UpdateReleaseParams,
) (releaseResult, error) {
	m.trackCall(MethodUpdateRelease, params)
	return m.UpdateReleaseResponse, m.UpdateReleaseError
}

// DeleteRelease implements github.APIClient.
func (m *GitHubAPIClient) DeleteRelease(
	_ context.Context, params ghpkg.DeleteReleaseParams,
) (emptyResult, error) {
	m.trackCall(MethodDeleteRelease, params)
	return m.DeleteReleaseResponse, m.DeleteReleaseError
}

// DeleteTag implements github.APIClient.
func (m *GitHubAPIClient) DeleteTag(
	_ context.Context, params ghpkg.DeleteTagParams,
) (emptyResult, error) {
	m.trackCall(MethodDeleteTag, params)
	return m.DeleteTagResponse, m.DeleteTagError
}

// GenerateReleaseNotes implements github.APIClient.
func (m *GitHubAPIClient) GenerateReleaseNotes(
	_ context.Context, params ghpkg.GenerateReleaseNotesParams,
) (notesResult, error) {
	m.trackCall(MethodGenerateReleaseNotes, params)
	return m.GenerateReleaseNotesResponse, m.GenerateReleaseNotesError
}

// GetCalls returns all tracked method calls.
func (m *GitHubAPIClient) GetCalls() []MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MethodCall{}, m.calls...)
}

// GetMethods returns the names of the tracked calls in order.
func (m *GitHubAPIClient) GetMethods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	methods := make([]string, len(m.calls))
	for i, call := range m.calls {
		methods[i] = call.Method
	}
	return methods
}

// GetCallCount returns the number of times a method was called.
func (m *GitHubAPIClient) GetCallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, call := range m.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// GetLastCall returns the last call to the specified method, or nil if not called.
func (m *GitHubAPIClient) GetLastCall(method string) *MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.calls) - 1; i >= 0; i-- {
		if m.calls[i].Method == method {
			return &m.calls[i]
		}
	}
	return nil
}

// trackCall records a method call with its parameters.
func (m *GitHubAPIClient) trackCall(method string, params any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MethodCall{
		Method: method,
		Params: params,
	})
}

// Ensure GitHubAPIClient implements github.APIClient interface.
var _ ghpkg.APIClient = (*GitHubAPIClient)(nil)
