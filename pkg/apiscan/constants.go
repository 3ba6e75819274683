package apiscan

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Scan completed, whether or not files were skipped
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (unknown flag, unexpected argument)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration file or setting
	ExitRootNotFound = 11 // Scan root missing or not a directory
)

const (
	// DefaultRoot is the directory scanned when apiscan runs.
	// It is resolved relative to the working directory.
	DefaultRoot = "src"

	// MaxSamples is the maximum number of matched substrings kept per report.
	MaxSamples = 3
)

// SourceExtensions lists the file suffixes the scanner examines.
// Matching is case-sensitive: App.JS is not scanned.
func SourceExtensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx"}
}
