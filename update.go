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
		name: "update",
		run:  doUpdate,
		help: "regenerate the golden files from current validator output",
	})
}

// doUpdate rewrites each suite's golden files with what the validator
// produces today.  Inspect the change with the version control diff
// before committing it; an update blesses current behavior, wrong or
// not.
func doUpdate(cfg runner.Config, dirs []string) []error {
	for _, dir := range dirs {
		c := cfg
		c.Dir = dir
		c, err := runner.Load(c)
		if err != nil {
			return []error{err}
		}
		banner(os.Stdout, dir, dirs)
		if err := runner.New(c).Update(); err != nil {
			return []error{err}
		}
	}
	return nil
}
