package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "cmm.yaml"

// cliConfig mirrors the YAML config file. Every key is optional.
type cliConfig struct {
	Separator string `yaml:"separator"`
	StepQuota int    `yaml:"step_quota"`
	Color     *bool  `yaml:"color"`
}

func (c cliConfig) colorEnabled() bool {
	return c.Color == nil || *c.Color
}

// loadCLIConfig reads path, or ./cmm.yaml when path is empty. A missing
// default file is not an error; a missing explicit file is.
func loadCLIConfig(path string) (cliConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return cliConfig{}, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cliConfig{}, nil
		}
		return cliConfig{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	var cfg cliConfig
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cliConfig{}, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	if cfg.StepQuota < 0 {
		return cliConfig{}, fmt.Errorf("config: step_quota must not be negative, got %d", cfg.StepQuota)
	}
	return cfg, nil
}

var separatorEscapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\s`, " ")

func unescapeSeparator(sep string) string {
	return separatorEscapes.Replace(sep)
}
