package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/vvka-141/apiscan/pkg/apiscan"
)

// Environment variables read by ApplyEnv.
const (
	EnvFormat  = "APISCAN_FORMAT"
	EnvColor   = "APISCAN_COLOR"
	EnvVerbose = "APISCAN_VERBOSE"
)

// DotEnvFileName is the optional env file loaded from the working directory.
const DotEnvFileName = ".env"

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %v", apiscan.ErrInvalidConfig, path, err)
	}
	return nil
}

// ApplyEnv overlays environment settings onto cfg.
// lookup is normally os.LookupEnv.
func ApplyEnv(cfg *ProjectConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.Output.Format = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		cfg.Output.Color = v
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", apiscan.ErrInvalidConfig, EnvVerbose, v)
		}
		cfg.Verbose = &b
	}
	return nil
}
