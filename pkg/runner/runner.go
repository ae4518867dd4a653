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

// Package runner drives an external YANG schema validator over a suite of
// test modules and compares what it produces against checked-in golden
// files.
//
// A suite is one directory:
//
//	foo--trim.yang        test module; the name encodes validator flags
//	expect/foo--trim.out  golden output for that module
//	out/                  working directory, recreated per run
//	yangtest.yaml         optional per-suite configuration
//
// Cases run strictly sequentially in lexicographic input order and the
// first failure of any kind aborts the run: a validator that exits
// non-zero surfaces as *ToolError, output that differs from its golden
// file as *MismatchError.  There are no retries and no timeouts; the
// validator is trusted to terminate.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/openconfig/yangtest/pkg/golden"
	"github.com/openconfig/yangtest/pkg/testname"
)

const (
	outDir    = "out"
	expectDir = "expect"

	defaultValidator = "pyang"
	defaultFormat    = "tree"
)

// Runner executes the test suite in one directory.
type Runner struct {
	cfg Config
}

// New returns a Runner for cfg with defaults applied to every unset
// field.  New does not consult the suite's configuration file; pass cfg
// through Load first when the file should be honored.
func New(cfg Config) *Runner {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Validator == "" {
		cfg.Validator = defaultValidator
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}
	if len(cfg.Diff) == 0 {
		cfg.Diff = golden.DefaultDiff
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &Runner{cfg: cfg}
}

// runTool makes testing of RunAll and Update easier.
var runTool = func(name string, args []string, dir string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// RunAll runs every case in the suite, stopping at the first failure.
// For each input it prints "trying <name>..." and, when the validator
// output matches the golden file, " ok".  On a mismatch the full diff is
// printed to Stdout and the per-case diff artifact is left behind for
// inspection; on a validator failure the validator's own diagnostics have
// already passed through to Stderr.  Either failure aborts the run with
// the remaining inputs unprocessed.
func (r *Runner) RunAll() error {
	if err := r.EnsureOutDir(); err != nil {
		return err
	}
	names, err := r.inputs()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(r.cfg.Stdout, "trying %s...", name)
		if err := r.runCase(name); err != nil {
			return err
		}
		fmt.Fprintln(r.cfg.Stdout, " ok")
	}
	return nil
}

// runCase validates one input and compares the result to its golden file.
func (r *Runner) runCase(name string) error {
	out := testname.OutName(name)
	if err := r.invoke(name, out); err != nil {
		fmt.Fprintln(r.cfg.Stdout)
		return err
	}

	actual := filepath.Join(r.cfg.Dir, outDir, out)
	expected := filepath.Join(r.cfg.Dir, expectDir, out)
	artifact := filepath.Join(r.cfg.Dir, out+".diff")
	ok, text, err := golden.Compare(r.cfg.Diff, actual, expected, artifact)
	if err != nil {
		fmt.Fprintln(r.cfg.Stdout)
		return fmt.Errorf("%s: %w", name, err)
	}
	if !ok {
		fmt.Fprintln(r.cfg.Stdout)
		r.cfg.Stdout.Write(text)
		return &MismatchError{Name: name, Diff: text}
	}
	os.Remove(artifact) // rm -f: an artifact left by an earlier run
	return nil
}

// invoke runs the validator over the named input with its output directed
// to out/<out>.  The argument order is fixed: plugin directory, output
// format, configured extra arguments, flags derived from the input name,
// the input itself, output redirection.
func (r *Runner) invoke(name, out string) error {
	var args []string
	if r.cfg.PluginDir != "" {
		args = append(args, "--plugindir", r.cfg.PluginDir)
	}
	args = append(args, "-f", r.cfg.Format)
	args = append(args, r.cfg.Args...)
	args = append(args, testname.Flags(name)...)
	args = append(args, name, "-o", outDir+"/"+out)
	if err := runTool(r.cfg.Validator, args, r.cfg.Dir, r.cfg.Stdout, r.cfg.Stderr); err != nil {
		return &ToolError{Name: name, Err: err}
	}
	return nil
}

// Update regenerates the suite's golden files: every input is validated
// exactly as RunAll would and the produced output is copied over
// expect/<base>.out, creating expect/ if necessary.  The first validator
// failure aborts the update.
func (r *Runner) Update() error {
	if err := r.EnsureOutDir(); err != nil {
		return err
	}
	edir := filepath.Join(r.cfg.Dir, expectDir)
	if err := os.MkdirAll(edir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", edir, err)
	}
	names, err := r.inputs()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(r.cfg.Stdout, "updating %s...", name)
		out := testname.OutName(name)
		if err := r.invoke(name, out); err != nil {
			fmt.Fprintln(r.cfg.Stdout)
			return err
		}
		if err := copyFile(filepath.Join(edir, out), filepath.Join(r.cfg.Dir, outDir, out)); err != nil {
			fmt.Fprintln(r.cfg.Stdout)
			return err
		}
		fmt.Fprintln(r.cfg.Stdout, " ok")
	}
	return nil
}

// EnsureOutDir creates the suite's working output directory if it does
// not already exist.
func (r *Runner) EnsureOutDir() error {
	dir := filepath.Join(r.cfg.Dir, outDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

// Clean removes the working output directory and any leftover per-case
// diff artifacts.  Cleaning an already clean suite succeeds.
func (r *Runner) Clean() error {
	dir := filepath.Join(r.cfg.Dir, outDir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read suite %s: %w", r.cfg.Dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".diff") {
			continue
		}
		p := filepath.Join(r.cfg.Dir, e.Name())
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}

// inputs returns the base names of the suite's *.yang files.  os.ReadDir
// sorts by name, which fixes the (lexicographic) case order.
func (r *Runner) inputs() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", r.cfg.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yang") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// copyFile replaces dst with a copy of src.
func copyFile(dst, src string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
