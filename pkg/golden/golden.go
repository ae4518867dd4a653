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

// Package golden compares generated output files against checked-in golden
// files.  The comparison is delegated to an external diff utility so the
// bytes shown on a mismatch are exactly what the utility produced; when the
// utility is not installed the package falls back to comparing the bytes
// itself and rendering a line diff in-process.
package golden

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kylelemons/godebug/diff"
)

// DefaultDiff is the diff command used when none is configured.
var DefaultDiff = []string{"diff", "-u"}

// Compare diffs the file actual against the file expected using diffcmd,
// or DefaultDiff if diffcmd is empty.  It reports whether the two files are
// byte-for-byte identical.  On a mismatch the diff output is written to the
// file artifact and also returned; no artifact is created when the files
// match.  An error is returned only when the comparison itself could not be
// carried out, for example when an operand cannot be read.
func Compare(diffcmd []string, actual, expected, artifact string) (bool, []byte, error) {
	if len(diffcmd) == 0 {
		diffcmd = DefaultDiff
	}
	args := append(append([]string{}, diffcmd[1:]...), actual, expected)
	cmd := exec.Command(diffcmd[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return true, nil, nil
	}
	var exit *exec.ExitError
	if !errors.As(err, &exit) {
		// The diff utility could not be started at all; compare the
		// bytes in-process instead.
		return compareBytes(actual, expected, artifact)
	}
	if exit.ExitCode() != 1 {
		// diff exits 1 for "files differ"; anything else means the
		// utility itself failed.
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return false, nil, fmt.Errorf("%s %s %s: %s", diffcmd[0], actual, expected, msg)
	}
	text := stdout.Bytes()
	if err := os.WriteFile(artifact, text, 0644); err != nil {
		return false, nil, fmt.Errorf("write %s: %w", artifact, err)
	}
	return false, text, nil
}

// compareBytes decides equality by reading both files and, on a mismatch,
// renders the line diff itself.
func compareBytes(actual, expected, artifact string) (bool, []byte, error) {
	a, err := os.ReadFile(actual)
	if err != nil {
		return false, nil, fmt.Errorf("read %s: %w", actual, err)
	}
	e, err := os.ReadFile(expected)
	if err != nil {
		return false, nil, fmt.Errorf("read %s: %w", expected, err)
	}
	if bytes.Equal(a, e) {
		return true, nil, nil
	}
	text := []byte(diff.Diff(string(a), string(e)))
	if len(text) > 0 && text[len(text)-1] != '\n' {
		text = append(text, '\n')
	}
	if err := os.WriteFile(artifact, text, 0644); err != nil {
		return false, nil, fmt.Errorf("write %s: %w", artifact, err)
	}
	return false, text, nil
}
