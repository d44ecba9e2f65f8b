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

// Package printer renders [ast] nodes back into source text that a
// conforming parser re-accepts as the same structure.
//
// Printing happens in two stages. The print methods walk the tree and
// emit a flat token sequence, applying the grammar's canonicalization
// rules as they go: generic arguments are reordered into their mandatory
// phases (lifetimes, then types and consts, then bindings and
// constraints), unbracketed constant expressions are braced, and
// out-of-range qualified-self positions are clamped. The token sequence
// is then laid out against the configured column limit by the [dom]
// engine, which also decides the fate of the trailing separator every
// list emits: dropped when the list renders on one line, kept as a
// trailing comma when it breaks.
//
// Printing never fails: input is assumed to come from a conforming
// parser, and the printer corrects rather than reports.
package printer
