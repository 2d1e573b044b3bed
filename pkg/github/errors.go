package github

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/go-github/v69/github"
)

// Error definitions for GitHub API operations.
var (
	errTokenRequired     = errors.New("GitHub token is required")
	errInvalidAPIURL     = errors.New("invalid GitHub API URL")
	errInvalidMakeLatest = errors.New("invalid make_latest value")
	errNoResponse        = errors.New("no response received")

	// ErrTokenRequired is returned when no credential is supplied to [NewClient].
	ErrTokenRequired = errTokenRequired
	// ErrInvalidAPIURL is returned when the API base URL cannot be parsed.
	ErrInvalidAPIURL = errInvalidAPIURL
	// ErrInvalidMakeLatest is returned by [ParseMakeLatest] for unknown values.
	ErrInvalidMakeLatest = errInvalidMakeLatest
)

// FieldError is one entry of the "errors" list of a GitHub error body.
type FieldError struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
}

// ErrorBody is the structured body of a non-2xx GitHub response.
type ErrorBody struct {
	Message          string       `json:"message"`
	DocumentationURL string       `json:"documentation_url"`
	Errors           []FieldError `json:"errors,omitempty"`
}

// GitHubError represents any response whose status differs from the one the
// operation expects. It is the failure variant of every client Result.
//
//nolint:revive // The name mirrors the API's own terminology.
type GitHubError struct {
	StatusCode int
	Body       ErrorBody
}

// Error implements error with the status code and the JSON-encoded body.
func (e *GitHubError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, error: %s", e.StatusCode, e.RawBody())
}

// RawBody returns the error body encoded as JSON.
func (e *GitHubError) RawBody() string {
	raw, err := json.Marshal(e.Body)
	if err != nil {
		return e.Body.Message
	}
	return string(raw)
}

// newGitHubError builds a GitHubError from a go-github error for the given status.
func newGitHubError(statusCode int, err error) *GitHubError {
	ghErr := &GitHubError{StatusCode: statusCode}

	var errResp *github.ErrorResponse
	switch {
	case errors.As(err, &errResp):
		ghErr.Body.Message = errResp.Message
		ghErr.Body.DocumentationURL = errResp.DocumentationURL
		for _, e := range errResp.Errors {
			ghErr.Body.Errors = append(ghErr.Body.Errors, FieldError{
				Resource: e.Resource,
				Field:    e.Field,
				Code:     e.Code,
				Message:  e.Message,
			})
		}
	case err != nil:
		ghErr.Body.Message = err.Error()
	default:
		ghErr.Body.Message = fmt.Sprintf("unexpected status %d", statusCode)
	}

	return ghErr
}
