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

// package iterx contains extensions to Go's package iter.
package iterx

import "iter"

// Enumerate adapts an iterator to include an incrementing index as its first
// yielded value.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var i int
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Delimited is an element of a sequence, tagged with its position within
// that sequence.
//
// It is yielded by [Delimit], and exists so that loops which must place
// delimiters between (or around) elements need not do their own index
// arithmetic.
type Delimited[T any] struct {
	Value T

	IsFirst, IsLast bool
}

// Delimit returns an iterator over the elements of s, tagged with whether
// each element is the first and/or last of the sequence.
//
// The length is captured once, so a one-element slice yields a value that is
// both first and last.
func Delimit[S ~[]E, E any](s S) iter.Seq[Delimited[E]] {
	last := len(s) - 1
	return func(yield func(Delimited[E]) bool) {
		for i, v := range s {
			if !yield(Delimited[E]{Value: v, IsFirst: i == 0, IsLast: i == last}) {
				return
			}
		}
	}
}
