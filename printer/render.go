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

package printer

import (
	"fmt"

	"github.com/veldtlang/veldtfmt/dom"
	"github.com/veldtlang/veldtfmt/keyword"
)

// render converts the token buffer into its final textual form.
//
// This is where the deferred separator policy pays off: the print methods
// emit a separator after every list element, including the last, and
// rendering keeps a trailing separator only when its bracket group broke
// across lines, where it reads as a conventional trailing comma.
func (p *printer) render(options Options) string {
	options = options.withDefaults()
	return dom.Render(dom.Options{MaxWidth: options.MaxWidth}, func(push dom.Sink) {
		renderTokens(push, options, nil, p.toks)
	})
}

// renderTokens renders toks, a range within which brackets are balanced.
// prev is the token rendered immediately before the range, if any.
func renderTokens(push dom.Sink, options Options, prev *token, toks []token) {
	for i := 0; i < len(toks); i++ {
		tok := &toks[i]

		if tok.kind == tokSep {
			renderSep(push, tok.kw, trailingSep(toks, i))
			prev = tok
			continue
		}

		if needsSpace(prev, tok) {
			push(dom.Text(" "))
		}

		if tok.kind == tokWord && tok.kw.IsOpen() {
			closer := matchBracket(toks, i)
			open, closed := tok.kw, toks[closer].kw
			inner := toks[i+1 : closer]

			push(dom.Group(0, func(push dom.Sink) {
				push(dom.Text(open.String()))
				push(dom.Indent(options.Indent, func(push dom.Sink) {
					push(dom.TextIf(dom.Broken, "\n"))
					renderTokens(push, options, nil, inner)
				}))
				push(dom.TextIf(dom.Broken, "\n"))
				push(dom.Text(closed.String()))
			}))

			prev = &toks[closer]
			i = closer
			continue
		}
		if tok.kind == tokWord && tok.kw.IsClose() {
			panic(fmt.Sprintf("printer: unbalanced %q in token buffer", tok.kw))
		}

		push(dom.Text(tok.String()))
		prev = tok
	}
}

const (
	sepBetween trailing = iota // More list elements follow.
	sepTrailing                // Last separator of the range; elidable.
	sepDropped                 // Trailing, but shadowed by a later separator.
)

type trailing byte

// trailingSep classifies the separator at index i. A separator is trailing
// when no further non-separator token follows it in the range; of a run of
// trailing separators (a bound list's + followed by the argument list's
// comma), only the final one is kept in broken layout.
func trailingSep(toks []token, i int) trailing {
	for _, tok := range toks[i+1:] {
		if tok.kind != tokSep {
			return sepBetween
		}
	}
	if i == len(toks)-1 {
		return sepTrailing
	}
	return sepDropped
}

func renderSep(push dom.Sink, kw keyword.Keyword, t trailing) {
	switch t {
	case sepBetween:
		if kw.SpaceBefore() {
			push(dom.Text(" "))
		}
		push(dom.Text(kw.String()))
		if kw.SpaceAfter() {
			push(dom.TextIf(dom.Flat, " "))
		}
		push(dom.TextIf(dom.Broken, "\n"))

	case sepTrailing:
		// Survives only when the enclosing group breaks.
		if kw.SpaceBefore() {
			push(dom.TextIf(dom.Broken, " "))
		}
		push(dom.TextIf(dom.Broken, kw.String()))

	case sepDropped:
	}
}

// needsSpace decides whether a space goes between two adjacent tokens:
// between two word-like tokens, and around the particles marked as spaced
// in the keyword table.
func needsSpace(prev, next *token) bool {
	if prev == nil || prev.kind == tokSep {
		// A separator emits its own trailing spacing.
		return false
	}
	if next.kind == tokWord && next.kw == keyword.LBracket {
		// A slice type directly after a word reads as indexing: &'a [T].
		return prev.wordy()
	}
	return (prev.wordy() && next.wordy()) || prev.spaceAfter() || next.spaceBefore()
}

// matchBracket returns the index of the close bracket matching the open
// bracket at the given index.
func matchBracket(toks []token, open int) int {
	var depth int
	for i := open; i < len(toks); i++ {
		if toks[i].kind != tokWord {
			continue
		}
		switch {
		case toks[i].kw.IsOpen():
			depth++
		case toks[i].kw.IsClose():
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	panic(fmt.Sprintf("printer: unbalanced %q in token buffer", toks[open].kw))
}

func (t *token) String() string {
	if t.kind == tokIdent {
		return t.text
	}
	return t.kw.String()
}

func (t *token) wordy() bool {
	return t.kind == tokIdent || t.kw.IsWordy()
}

func (t *token) spaceAfter() bool {
	return t.kind == tokWord && t.kw.SpaceAfter()
}

func (t *token) spaceBefore() bool {
	return t.kind == tokWord && t.kw.SpaceBefore()
}
