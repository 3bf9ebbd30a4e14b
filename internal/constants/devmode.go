package constants

import (
	"os"
	"strings"
)

// DevModeEnabled reports whether DevModeEnvVar is set to "true" or "1",
// ignoring case and surrounding whitespace.
func DevModeEnabled() bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(DevModeEnvVar)))

	return value == BooleanTrue || value == "1"
}
