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

package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veldtlang/veldtfmt/internal/corpora"
	"github.com/veldtlang/veldtfmt/parser"
	"github.com/veldtlang/veldtfmt/printer"
)

// TestCorpus formats each signature file in testdata twice: once without
// wrapping (the .golden output) and once against a 40 column limit (the
// .wrapped output).
//
// To regenerate the outputs, run with VELDTFMT_REFRESH set to a glob of
// test case names, e.g. VELDTFMT_REFRESH='**'.
func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "VELDTFMT_REFRESH",
		Extension: "veldt",
		Outputs: []corpora.Output{
			{Extension: "golden"},
			{Extension: "wrapped"},
		},
		Test: func(t *testing.T, _, text string) []string {
			return []string{
				reformat(t, text, printer.Options{}),
				reformat(t, text, printer.Options{MaxWidth: 40}),
			}
		},
	}.Run(t)
}

// reformat rewrites each expression line of a signature file, the way the
// veldtfmt command does.
func reformat(t *testing.T, src string, options printer.Options) string {
	var out strings.Builder
	for i, line := range strings.Split(src, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out.WriteString(line)
			continue
		}

		ty, err := parser.ParseType(trimmed)
		require.NoError(t, err, "line %d: %q", i+1, trimmed)
		out.WriteString(printer.Type(options, ty))
	}
	return out.String()
}
