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

package main

import (
	"fmt"
	"os"

	"github.com/openconfig/yangtest/pkg/runner"
)

func init() {
	register(&command{
		name: "clean",
		run:  doClean,
		help: "remove generated output and leftover diff artifacts",
	})
}

// doClean removes what earlier runs left behind in each suite.  Failures
// are reported but never change the exit status: cleaning an already
// clean, or missing, suite is fine.
func doClean(cfg runner.Config, dirs []string) []error {
	for _, dir := range dirs {
		c := cfg
		c.Dir = dir
		if err := runner.New(c).Clean(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return nil
}
