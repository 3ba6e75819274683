package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const rootLong = `apiscan walks the frontend source tree in ./src and lists, per file, the
first kind of HTTP client call it finds together with up to three samples.

Detection uses regular expressions, checked in this order:
  fetch      fetch(...)
  axios      axios.get|post|put|delete|patch(...)
  get        .get(...)
  post       .post(...)
  api-path   any "api/" substring

Only .js, .jsx, .ts and .tsx files are read. Files that cannot be read or are
not valid UTF-8 are skipped silently (listed with --verbose).

Matching is textual, not a parse: expect false positives such as Map.get()
and arguments cut at the first closing parenthesis.

Settings (highest priority first): flags, APISCAN_* environment variables,
a .env file, apiscan.yaml.

Exit Codes:
  0  - Scan completed
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - ./src not found or not a directory`

var rootCmd = newRootCmd()

// newRootCmd builds the command tree. Tests build a fresh tree per case so
// flag state does not leak between them.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "apiscan",
		Short:        "List HTTP client calls in a frontend source tree",
		Long:         rootLong,
		Args:         rejectArgs,
		RunE:         runScan,
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.String("format", "", "Output format: text or json (default text)")
	flags.String("color", "", "Colour output: auto, always or never (default auto)")
	flags.Bool("no-color", false, "Disable colour output (same as --color=never)")
	flags.String("config", "", "Path to a config file (default ./"+configFileHint+" if present)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output on stderr")

	registerCompletions(cmd)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
