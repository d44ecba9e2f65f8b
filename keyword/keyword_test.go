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

package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ColonColon, Lookup("::"))
	assert.Equal(t, Arrow, Lookup("->"))
	assert.Equal(t, As, Lookup("as"))
	assert.Equal(t, Under, Lookup("_"))
	assert.Equal(t, Unknown, Lookup("ident"))
	assert.Equal(t, Unknown, Lookup(""))

	// Every valid keyword round-trips through its text.
	for k := range Keyword(totalKeyword) {
		if k == Unknown {
			continue
		}
		assert.Equal(t, k, Lookup(k.String()), "keyword %v", k)
	}
}

func TestClasses(t *testing.T) {
	t.Parallel()

	assert.True(t, Langle.IsOpen())
	assert.True(t, Rangle.IsClose())
	assert.False(t, Rangle.IsOpen())

	assert.True(t, As.IsWordy())
	assert.True(t, Under.IsWordy())
	assert.False(t, ColonColon.IsWordy())

	assert.True(t, Comma.SpaceAfter())
	assert.False(t, Comma.SpaceBefore())
	assert.True(t, Arrow.SpaceBefore())
	assert.True(t, Arrow.SpaceAfter())

	assert.False(t, Unknown.IsValid())
	for k := Unknown + 1; k < totalKeyword; k++ {
		assert.True(t, k.IsValid(), "keyword %v", k)
	}

	// Every bracket opener has a closer right after it in the table.
	for k := range Keyword(totalKeyword) {
		if k.IsOpen() {
			assert.True(t, (k + 1).IsClose(), "keyword %v", k)
		}
	}
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "::", ColonColon.String())
	assert.Equal(t, "->", Arrow.String())
	assert.Equal(t, "as", As.String())
	assert.Contains(t, Keyword(200).String(), "200")
}
