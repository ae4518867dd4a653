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

// Package testname decodes the naming convention used by golden test
// suites for YANG tooling, in which a test module's file name carries the
// command line flags the validator must be invoked with.  A file named
//
//	prefix--flag1--flag2.yang
//
// asks for the validator to run with --flag1 --flag2.  The flag section
// starts at the first "--" in the name; everything before it is the module
// name proper and is ignored.  Single hyphens are ordinary name characters
// (ietf-interfaces.yang encodes no flags), both within the prefix and
// within a flag (a--tree-depth-3.yang encodes --tree-depth-3).
package testname

import (
	"path"
	"strings"
)

// Flags returns the validator flags encoded in the test file name, one
// argument per "--" group, in order of appearance.  A name with no "--"
// group yields no flags.
func Flags(name string) []string {
	stem := strings.TrimSuffix(name, path.Ext(name))
	i := strings.Index(stem, "--")
	if i < 0 {
		return nil
	}
	var flags []string
	for _, group := range strings.Split(stem[i:], "--") {
		if group == "" {
			continue
		}
		flags = append(flags, "--"+group)
	}
	return flags
}

// FlagString returns the flags encoded in name as a single space-separated
// string.  It is the display form of Flags.
func FlagString(name string) string {
	return strings.Join(Flags(name), " ")
}

// OutName returns the output file name for the test file name: name with
// its extension replaced by ".out".  A name without an extension simply
// gains the ".out" suffix.
func OutName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ".out"
}
