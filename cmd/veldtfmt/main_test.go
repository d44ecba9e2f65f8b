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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlang/veldtfmt/printer"
)

func TestFormatCanonicalizes(t *testing.T) {
	t.Parallel()

	src := "# registry types\n" +
		"\n" +
		"Map<Item = U, 'a, K>\n"

	got, err := format(src, printer.Options{})
	require.NoError(t, err)
	assert.Equal(t, "# registry types\n\nMap<'a, K, Item = U>\n", got)
}

func TestFormatWraps(t *testing.T) {
	t.Parallel()

	got, err := format("Registry<ConnectionId, HandlerTable>\n", printer.Options{MaxWidth: 20})
	require.NoError(t, err)
	assert.Equal(t, "Registry<\n    ConnectionId,\n    HandlerTable,\n>\n", got)
}

func TestFormatReportsLine(t *testing.T) {
	t.Parallel()

	_, err := format("A::B\nC::\n", printer.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
