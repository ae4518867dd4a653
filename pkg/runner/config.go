// Copyright 2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config configures a Runner for one suite directory.  The zero value runs
// the conventional suite: every *.yang file in the current directory is fed
// to pyang in tree format and the result compared to expect/ with diff -u.
type Config struct {
	// Dir is the suite directory.  Empty means the current directory.
	Dir string

	// Validator is the schema validator command.  Empty means pyang.
	Validator string

	// PluginDir is handed to the validator as --plugindir.  Empty omits
	// the flag entirely.
	PluginDir string

	// Format is handed to the validator as -f.  Empty means tree.
	Format string

	// Args are extra validator arguments, inserted between the format
	// selection and the flags derived from each test file name.
	Args []string

	// Diff is the command used to compare actual against expected
	// output.  Empty means golden.DefaultDiff.
	Diff []string

	// Stdout receives progress lines and diff output.  Nil means
	// os.Stdout.
	Stdout io.Writer

	// Stderr receives the validator's error output.  Nil means
	// os.Stderr.
	Stderr io.Writer
}

// configName is the optional per-suite configuration file, read by Load.
const configName = "yangtest.yaml"

// fileConfig mirrors the yangtest.yaml schema.  Every key is optional.
type fileConfig struct {
	Validator string   `yaml:"validator"`
	PluginDir string   `yaml:"plugindir"`
	Format    string   `yaml:"format"`
	Args      []string `yaml:"args"`
	Diff      []string `yaml:"diff"`
}

// Load verifies that cfg.Dir is an existing directory and returns cfg with
// every unset field filled in from the suite's yangtest.yaml, when present.
// A value already set in cfg wins over the file; defaults for anything
// still unset are applied by New.
func Load(cfg Config) (Config, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return cfg, fmt.Errorf("suite %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return cfg, fmt.Errorf("suite %s: not a directory", dir)
	}

	fc, err := loadFile(filepath.Join(dir, configName))
	if err != nil {
		return cfg, err
	}
	if cfg.Validator == "" {
		cfg.Validator = fc.Validator
	}
	if cfg.PluginDir == "" {
		cfg.PluginDir = fc.PluginDir
	}
	if cfg.Format == "" {
		cfg.Format = fc.Format
	}
	if cfg.Args == nil {
		cfg.Args = fc.Args
	}
	if cfg.Diff == nil {
		cfg.Diff = fc.Diff
	}
	return cfg, nil
}

// loadFile reads a yangtest.yaml.  A missing or empty file is not an
// error; an unknown key is, so a typo in a fixture tree fails loudly
// rather than silently running with defaults.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("parse %s: %v", path, err)
	}
	return fc, nil
}
