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
	"os"

	"github.com/openconfig/yangtest/pkg/runner"
)

func init() {
	register(&command{
		name: "test",
		run:  doTest,
		help: "run every test module and compare against the golden files",
	})
}

// doTest reruns each suite from scratch: output of earlier runs is
// removed first so every golden comparison is against output produced
// now.  The first failing suite ends the run; suites after it are not
// touched.
func doTest(cfg runner.Config, dirs []string) []error {
	for _, dir := range dirs {
		c := cfg
		c.Dir = dir
		c, err := runner.Load(c)
		if err != nil {
			return []error{err}
		}
		banner(os.Stdout, dir, dirs)
		r := runner.New(c)
		if err := r.Clean(); err != nil {
			return []error{err}
		}
		if err := r.RunAll(); err != nil {
			return []error{err}
		}
	}
	return nil
}
