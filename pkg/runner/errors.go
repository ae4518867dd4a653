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

import "fmt"

// ToolError reports a validator invocation that failed.  The validator's
// own diagnostics have already been streamed to the configured Stderr by
// the time a ToolError is returned.
type ToolError struct {
	Name string // input file the validator was run on
	Err  error  // the underlying execution error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: validator: %v", e.Name, e.Err)
}

// Unwrap returns the underlying execution error.
func (e *ToolError) Unwrap() error { return e.Err }

// MismatchError reports validator output that differs from the golden
// file.  Diff holds the diff output exactly as it was printed.
type MismatchError struct {
	Name string // input file whose output mismatched
	Diff []byte // the captured diff output
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: output does not match golden file", e.Name)
}
