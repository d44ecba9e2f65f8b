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

// package stringsx contains extensions to Go's package strings.
package stringsx

import (
	"iter"
	"strings"
)

// Every verifies that the string is nonempty and consists only of the given
// rune.
func Every(s string, r rune) bool {
	if s == "" {
		return false
	}
	for _, got := range s {
		if got != r {
			return false
		}
	}
	return true
}

// LastLine returns the text after the final newline in s, which is s itself
// if it contains no newlines.
func LastLine(s string) string {
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// Split is like [strings.Split], but returning an iterator instead of a slice.
func Split[Sep string | rune](s string, sep Sep) iter.Seq[string] {
	r := string(sep)
	return func(yield func(string) bool) {
		for {
			chunk, rest, found := strings.Cut(s, r)
			s = rest
			if !yield(chunk) || !found {
				return
			}
		}
	}
}
