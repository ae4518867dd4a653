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

// Program yangtest runs an external YANG validator over directories of
// test modules and compares what it writes against checked-in golden files.
//
// Usage: yangtest [--validator CMD] [--plugindir DIR] [--format FORMAT]
//                 [--arg ARG,...] [--diff CMD,...] [COMMAND] [DIR ...]
//
// COMMAND, which defaults to "test", selects what to do with each DIR
// (default the current directory):
//
//   test    remove stale output, run the validator over every test module
//           and compare what it produces against the golden files
//   update  regenerate the golden files from current validator output
//   clean   remove generated output and leftover diff artifacts
//
// A test module is a file NAME[--FLAG...].yang: everything from the first
// "--" on is passed to the validator as flags for that module alone, so
// backup--trim--path.yang runs with --trim --path.  The validator's
// output for a module must match expect/NAME.out byte for byte.
//
// VALIDATOR defaults to pyang, FORMAT to tree, and the comparison to
// diff -u.  A suite directory may fix its own settings in yangtest.yaml;
// command line options win over the file.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/openconfig/yangtest/pkg/runner"
	"github.com/pborman/getopt"
)

// Each subcommand must register itself with register.  The selected
// command is run once the command line has been parsed, over every suite
// directory named on it.
type command struct {
	name string
	run  func(cfg runner.Config, dirs []string) []error
	help string
}

var commands = map[string]*command{}

func register(c *command) {
	commands[c.name] = c
}

// exitIfError writes errs to standard error and exits with an exit status of 1.
// If errs is empty then exitIfError does nothing and simply returns.
func exitIfError(errs []error) {
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func main() {
	var validator, plugindir, format string
	var extraArgs, diffCmd []string
	getopt.CommandLine.StringVarLong(&validator, "validator", 0, "validator command to run, default pyang")
	getopt.CommandLine.StringVarLong(&plugindir, "plugindir", 0, "directory the validator loads plugins from")
	getopt.CommandLine.StringVarLong(&format, "format", 'f', "validator output format, default tree")
	getopt.CommandLine.ListVarLong(&extraArgs, "arg", 0, "comma separated extra validator arguments")
	getopt.CommandLine.ListVarLong(&diffCmd, "diff", 0, "comma separated comparison command, default diff,-u")

	getopt.Parse()
	args := getopt.Args()

	name := "test"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	cmd := commands[name]
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "%s: unknown command.  Choices are:\n", name)
		var names []string
		for n := range commands {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(os.Stderr, "    %s - %s\n", n, commands[n].help)
		}
		os.Exit(1)
	}
	if len(args) == 0 {
		args = []string{"."}
	}

	cfg := runner.Config{
		Validator: validator,
		PluginDir: plugindir,
		Format:    format,
		Args:      extraArgs,
		Diff:      diffCmd,
	}
	exitIfError(cmd.run(cfg, args))
}

// banner writes a heading line for dir when a run covers more than one
// suite directory.
func banner(w io.Writer, dir string, dirs []string) {
	if len(dirs) > 1 {
		fmt.Fprintf(w, "%s:\n", dir)
	}
}
