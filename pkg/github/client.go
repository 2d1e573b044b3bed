// Package github provides a minimal GitHub REST client for release management.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/create-release/internal/logger"
	"github.com/sgaunet/create-release/internal/security"
	"golang.org/x/oauth2"
)

// NewClient creates a GitHub client authenticated with token against apiURL.
// An empty apiURL selects [DefaultAPIURL].
func NewClient(token security.SecureToken, apiURL string) (*Client, error) {
	if token.IsEmpty() {
		return nil, errTokenRequired
	}

	baseURL, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token.Value(), TokenType: "Bearer"},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Transport = &headerTransport{base: tc.Transport}

	client := github.NewClient(tc)
	client.BaseURL = baseURL
	client.UserAgent = userAgent

	return &Client{
		client: client,
		log:    logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the GitHub client.
func (c *Client) SetLogger(logger *bullets.Logger) {
	c.log = logger
	c.log.Debug("GitHub client logger configured, API: " + c.client.BaseURL.String())
}

// parseBaseURL validates apiURL and normalizes it with a trailing slash,
// which go-github requires to resolve relative endpoint paths.
func parseBaseURL(apiURL string) (*url.URL, error) {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidAPIURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", errInvalidAPIURL, apiURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// headerTransport sets the media type and API version headers on every request.
type headerTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Accept", mediaTypeJSON)
	r.Header.Set(headerAPIVersion, APIVersion)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r) //nolint:wrapcheck // Transport errors are wrapped by go-github.
}
