package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteFormats(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns all formats for empty input", func(t *testing.T) {
		completions, directive := completeFormats(cmd, nil, "")
		if len(completions) != len(outputFormats) {
			t.Errorf("expected %d completions, got %d", len(outputFormats), len(completions))
		}
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := completeFormats(cmd, nil, "j")
		if len(completions) != 1 || completions[0] != "json" {
			t.Errorf("expected [json], got %v", completions)
		}
	})

	t.Run("returns empty for non-matching prefix", func(t *testing.T) {
		completions, _ := completeFormats(cmd, nil, "xml")
		if len(completions) != 0 {
			t.Errorf("expected 0 completions, got %d", len(completions))
		}
	})
}

func TestCompleteColorModes(t *testing.T) {
	cmd := &cobra.Command{}

	completions, _ := completeColorModes(cmd, nil, "a")
	if len(completions) != 2 {
		t.Errorf("expected 2 completions (auto, always), got %v", completions)
	}
	for _, c := range completions {
		if c != "auto" && c != "always" {
			t.Errorf("unexpected completion: %s", c)
		}
	}
}

func TestCompleteConfigFiles(t *testing.T) {
	exts, directive := completeConfigFiles(&cobra.Command{}, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("expected ShellCompDirectiveFilterFileExt, got %v", directive)
	}
	if len(exts) != 2 {
		t.Errorf("expected yaml and yml, got %v", exts)
	}
}

func TestRegisterCompletions(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"format", "color", "config"} {
		if _, ok := cmd.GetFlagCompletionFunc(flag); !ok {
			t.Errorf("no completion registered for --%s", flag)
		}
	}
}
