package github

import "fmt"

// MakeLatest is the "make latest" policy of a release.
// The empty value means the field is not sent.
type MakeLatest string

// Supported make_latest values.
const (
	MakeLatestTrue   MakeLatest = "true"
	MakeLatestFalse  MakeLatest = "false"
	MakeLatestLegacy MakeLatest = "legacy"
)

// ParseMakeLatest validates s. An empty string yields the unset policy.
func ParseMakeLatest(s string) (MakeLatest, error) {
	switch MakeLatest(s) {
	case "", MakeLatestTrue, MakeLatestFalse, MakeLatestLegacy:
		return MakeLatest(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected true, false or legacy)", errInvalidMakeLatest, s)
	}
}

// IsSet reports whether the policy should be sent.
func (m MakeLatest) IsSet() bool {
	return m != ""
}
