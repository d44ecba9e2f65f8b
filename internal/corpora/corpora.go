// Copyright 2024-2026 The Veldt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// package corpora provides a mechanism for managing test corpora: a
// collection of files in testdata that each define one formatter test.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test data corpus: table-driven tests where the
// "table" is the file system.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable naming a glob of test cases whose outputs
	// should be regenerated in place instead of compared.
	Refresh string

	// The file extension (without a dot) of files which define a test
	// case.
	Extension string

	// Possible outputs of the test, found at the test case's path plus the
	// output's extension. A missing output file is treated as expecting
	// the empty string.
	Outputs []Output

	// Test executes one test case from the corpus, returning one string
	// per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output represents one output of a test case.
type Output struct {
	// The output's extension: for Corpus.Extension "veldt" and Extension
	// "golden", the runner pairs foo.veldt with foo.veldt.golden.
	Extension string

	// The comparison function. Nil means byte-for-byte equality with a
	// unified diff on mismatch.
	Compare Compare
}

// Compare compares a test's output against the want file's contents,
// returning an empty string on match and an error message otherwise.
type Compare func(got, want string) string

func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob %q in $%s", refresh, c.Refresh)
		}
	}
	if refresh != "" {
		// Refreshed outputs are not verified, so the run must not pass.
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, p := range tests {
		name, _ := filepath.Rel(testDir, p)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(p)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", p, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(p, ".", output.Extension)

				if refresh {
					if err := os.WriteFile(path, []byte(results[i]), 0o660); err != nil {
						t.Errorf("corpora: error while writing output file %q: %v", path, err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", path, err)
					continue
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = diffCompare
				}
				if msg := cmp(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", path, msg)
				}
			}
		})
	}
}

func diffCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// callerDir returns the directory of the file containing the calling test.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
