package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/apiscan/internal/checksum"
	"github.com/vvka-141/apiscan/internal/config"
	"github.com/vvka-141/apiscan/internal/files/filesystem"
	"github.com/vvka-141/apiscan/internal/files/scanner"
	"github.com/vvka-141/apiscan/internal/logging"
	"github.com/vvka-141/apiscan/internal/patterns"
	"github.com/vvka-141/apiscan/internal/report"
	"github.com/vvka-141/apiscan/internal/style"
	"github.com/vvka-141/apiscan/pkg/apiscan"
)

const configFileHint = config.ConfigFileName

// settings is the resolved presentation configuration of one run.
type settings struct {
	format  report.Format
	color   style.ColorMode
	verbose bool
}

// scanOptions carries everything executeScan needs, so tests can swap the
// filesystem and the output streams.
type scanOptions struct {
	root   string
	format report.Format
	color  bool
	stdout io.Writer
	logger apiscan.Logger
	fs     filesystem.FileSystemProvider
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, os.LookupEnv)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), s.verbose, style.ShouldColor(s.color, cmd.ErrOrStderr()))

	_, err = executeScan(scanOptions{
		root:   apiscan.DefaultRoot,
		format: s.format,
		color:  style.ShouldColor(s.color, stdout),
		stdout: stdout,
		logger: logger,
		fs:     filesystem.NewOSFileSystem(),
	})
	if err != nil {
		// Reported through the logger; cobra would print it a second time.
		cmd.SilenceErrors = true
		logger.Error("%v", err)
	}
	return err
}

// resolveSettings merges configuration sources.
// Priority (highest to lowest): flags > environment > .env > apiscan.yaml > defaults
func resolveSettings(cmd *cobra.Command, lookup func(string) (string, bool)) (settings, error) {
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return settings{}, err
	}

	if err := config.LoadDotEnv(config.DotEnvFileName); err != nil {
		return settings{}, err
	}
	if err := config.ApplyEnv(cfg, lookup); err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetString("color")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Output.Color = string(style.ColorNever)
	}
	if flags.Changed("verbose") {
		v := getVerboseFlag(cmd)
		cfg.Verbose = &v
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return settings{}, err
	}
	color, err := style.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return settings{}, fmt.Errorf("%w: %v", apiscan.ErrInvalidConfig, err)
	}

	s := settings{format: format, color: color}
	if cfg.Verbose != nil {
		s.verbose = *cfg.Verbose
	}
	return s, nil
}

// loadProjectConfig reads --config when given, otherwise ./apiscan.yaml if it exists.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.LoadFile(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", apiscan.ErrInvalidConfig, path)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.ProjectConfig{}, nil
	}
	return cfg, err
}

// executeScan streams the scan of opts.root into the chosen renderer.
// The banner is written before the root is opened, so a missing root still
// shows the banner followed by the error.
func executeScan(opts scanOptions) (apiscan.ScanSummary, error) {
	var summary apiscan.ScanSummary

	renderer, err := report.New(opts.format, opts.stdout, opts.color)
	if err != nil {
		return summary, err
	}

	fileScanner := scanner.NewScannerWithFS(patterns.MustDefault(), checksum.New(), opts.fs)

	if err := renderer.Begin(); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}

	for outcome, err := range fileScanner.Scan(opts.root) {
		if err != nil {
			return summary, err
		}
		summary.Add(outcome)

		switch outcome.Kind {
		case apiscan.OutcomeReported:
			if err := renderer.Report(*outcome.Report); err != nil {
				return summary, fmt.Errorf("failed to write report: %w", err)
			}
			opts.logger.Verbose("%s: %s (%d match(es))", outcome.Path, outcome.Report.Category, outcome.Report.TotalMatches)
		case apiscan.OutcomeSkipped:
			opts.logger.Verbose("skipped %s (%s): %v", outcome.Path, outcome.SkipReason, outcome.Err)
		}
	}

	if err := renderer.End(summary); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}

	opts.logger.Verbose("scan of %s finished: %d examined, %d reported, %d without match, %d skipped",
		opts.root, summary.Examined, summary.Reported, summary.Unmatched, summary.Skipped)
	return summary, nil
}
