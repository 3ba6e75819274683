package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rejectArgs refuses positional arguments. The scan root is always ./src.
func rejectArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf(`accepts 0 arg(s), received %d

%s scans ./src relative to the working directory; run it from the
project directory instead of passing a path.`, len(args), cmd.CommandPath())
	}
	return nil
}
