package logging

import (
	"os"
)

// DebugEnvVar forces debug-level logging when set to any non-empty value.
const DebugEnvVar = "TODO_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}
