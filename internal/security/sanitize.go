package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	githubTokenRegex *regexp.Regexp
	githubPATRegex   *regexp.Regexp
	bearerTokenRegex *regexp.Regexp
	authHeaderRegex  *regexp.Regexp
	commitSHARegex   *regexp.Regexp
	regexOnce        sync.Once

	errSanitized = errors.New("sanitized error")
)

// compileRegexPatterns initializes all regex patterns once.
func compileRegexPatterns() {
	regexOnce.Do(func() {
		// Classic tokens: ghp_ (personal), gho_ (oauth), ghs_ (actions/app), ghu_ (user-to-server), ghr_ (refresh)
		githubTokenRegex = regexp.MustCompile(`gh[opsur]_[a-zA-Z0-9]{20,}`)

		// Fine-grained personal access tokens
		githubPATRegex = regexp.MustCompile(`github_pat_[a-zA-Z0-9_]{20,}`)

		// Generic bearer tokens: long base64-like strings (40-200 chars)
		bearerTokenRegex = regexp.MustCompile(`\b[A-Za-z0-9+/=]{40,200}\b`)

		authHeaderRegex = regexp.MustCompile(`(?i)authorization:\s*(?:bearer|token|basic)\s+[a-zA-Z0-9+/=_-]{10,}`)

		// SHA-1 and SHA-256 object names are kept readable.
		commitSHARegex = regexp.MustCompile(`^(?:[0-9a-f]{40}|[0-9a-f]{64})$`)
	})
}

// SanitizeString redacts GitHub tokens, authorization headers and long
// bearer-like strings from s. Commit SHAs are left intact. Safe for
// concurrent use.
func SanitizeString(s string) string {
	compileRegexPatterns()

	s = githubPATRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = githubTokenRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = authHeaderRegex.ReplaceAllString(s, "Authorization: [redacted]")

	// The generic pattern runs last and only when nothing specific matched.
	if strings.Contains(s, "[github-token-redacted]") {
		return s
	}
	return bearerTokenRegex.ReplaceAllStringFunc(s, func(match string) string {
		if commitSHARegex.MatchString(match) {
			return match
		}
		return "[token-redacted]"
	})
}

// SanitizeError returns an error whose message went through [SanitizeString].
// Returns nil if err is nil. The original chain is not preserved.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", errSanitized, SanitizeString(err.Error()))
}
