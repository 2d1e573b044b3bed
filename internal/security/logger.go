package security

import (
	"fmt"

	"github.com/sgaunet/bullets"
)

// DebugAuth logs which API host is used and a masked form of the token.
func DebugAuth(logger *bullets.Logger, apiURL string, token SecureToken) {
	if logger == nil {
		return
	}
	logger.Debug(fmt.Sprintf("Using GitHub token %s against %s", token, SanitizeString(apiURL)))
}
