package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/apiscan/internal/report"
	"github.com/vvka-141/apiscan/internal/style"
)

// outputFormats contains valid --format values for shell completion.
var outputFormats = []string{string(report.FormatText), string(report.FormatJSON)}

// colorModes contains valid --color values for shell completion.
var colorModes = []string{string(style.ColorAuto), string(style.ColorAlways), string(style.ColorNever)}

func completeFromList(values []string, toComplete string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeFormats provides shell completion for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(outputFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeColorModes provides shell completion for --color.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(colorModes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeConfigFiles offers YAML files for --config.
func completeConfigFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

func registerCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("color", completeColorModes)
	_ = cmd.RegisterFlagCompletionFunc("config", completeConfigFiles)
}
