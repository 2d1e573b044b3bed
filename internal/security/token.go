// Package security keeps the GitHub credential out of logs and error messages.
package security

const (
	// visibleSuffix is the number of trailing characters a masked token shows.
	visibleSuffix = 4
	// minMaskableLength is the shortest token that shows its suffix.
	minMaskableLength = 2 * visibleSuffix
)

// SecureToken holds the GitHub token. Every fmt verb prints a mask:
//
//	token := NewSecureToken("ghp_secret123456")
//	fmt.Printf("%s %#v", token, token) // [token:****3456] [token:****3456]
type SecureToken struct {
	value string
}

// NewSecureToken wraps token.
func NewSecureToken(token string) SecureToken {
	return SecureToken{value: token}
}

// FirstToken returns the first non-empty candidate. Callers pass the
// sources in precedence order: flag, action input, environment.
func FirstToken(candidates ...string) SecureToken {
	for _, c := range candidates {
		if c != "" {
			return NewSecureToken(c)
		}
	}
	return SecureToken{}
}

// String implements fmt.Stringer.
func (t SecureToken) String() string {
	switch n := len(t.value); {
	case n == 0:
		return "[empty]"
	case n < minMaskableLength:
		return "[redacted]"
	default:
		return "[token:****" + t.value[n-visibleSuffix:] + "]"
	}
}

// GoString implements fmt.GoStringer so %#v prints the mask too.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the secret for the oauth2 token source. Never log it.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty reports whether no token was provided.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}
