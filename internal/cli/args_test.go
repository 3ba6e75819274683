package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRejectArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "apiscan"}

	t.Run("returns nil when no args", func(t *testing.T) {
		if err := rejectArgs(cmd, []string{}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when args provided", func(t *testing.T) {
		err := rejectArgs(cmd, []string{"app", "lib"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.HasPrefix(err.Error(), "accepts 0 arg(s), received 2") {
			t.Errorf("unexpected error: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "./src") {
			t.Errorf("expected error to mention ./src, got: %s", err.Error())
		}
	})
}
