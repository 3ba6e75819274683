package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/apiscan/pkg/apiscan"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// OutputConfig controls how the report is presented.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

// ProjectConfig is the content of apiscan.yaml. It holds presentation
// settings only; the scan root and the pattern list are fixed.
type ProjectConfig struct {
	Output  OutputConfig `yaml:"output"`
	Verbose *bool        `yaml:"verbose,omitempty"`
}

const ConfigFileName = "apiscan.yaml"

// Load reads apiscan.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at path. Unknown keys are rejected so that
// a misspelt setting is not silently ignored.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", apiscan.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}
