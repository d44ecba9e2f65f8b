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

// Package dom is a small meta-formatting engine: a document is a sequence
// of [Tag]s (text, whitespace, groups, indentation), and [Render] lays the
// document out against a column limit.
//
// Each group in a document is rendered either "flat" (on one line) or
// "broken" (across several). Tags may be conditioned on the orientation of
// their enclosing group with [TextIf], which is how callers express
// break-only line feeds and flat-only spaces.
package dom

import (
	"iter"
	"math"

	"github.com/veldtlang/veldtfmt/internal/ext/stringsx"
)

const (
	kindNone kind = iota //nolint:unused

	kindText   // Ordinary text.
	kindSpace  // All spaces (U+0020).
	kindBreak  // All newlines (U+000A).
	kindGroup  // See [Group].
	kindIndent // See [Indent].
)

// kind is a kind of [tag].
type kind byte

const (
	Always Cond = iota
	Flat        // Render only in a flat group.
	Broken      // Render only in a broken group.
)

// Cond is a condition for a tag: whether it renders in a flat group, a
// broken group, or both. The outermost level of a document is treated as
// always broken.
type Cond byte

// Tag is one formatting directive appended to a document under
// construction.
//
// The factory functions in this package construct tags. The nil Tag is
// equivalent to Text("").
type Tag func(*dom)

// Sink is a place to append tags. Many functions in this package take a
// func(push Sink) callback, which is executed in the context of that tag
// and must not be used after the callback returns.
type Sink func(...Tag)

// dom is a flattened document tree: a tag's children are the tags that
// follow it, counted by tag.children.
type dom []tag

type tag struct {
	text  string
	limit int // Used by kind == kindGroup.

	kind kind
	cond Cond

	// Filled in by the layout pass. See layout.go.
	broken        bool
	width, column int

	children int // Number of children that follow in the dom.
}

// renderIf reports whether this tag renders when its enclosing group has
// the given orientation.
func (t *tag) renderIf(cond Cond) bool {
	return t.cond == Always || t.cond == cond
}

// cursor is a recursive iterator over a [dom], yielding each top-level tag
// along with a cursor over that tag's children.
type cursor iter.Seq2[*tag, cursor]

func (d dom) cursor() cursor {
	return func(yield func(*tag, cursor) bool) {
		for i := 0; i < len(d); i++ {
			t := &d[i]
			body := d[i+1 : i+1+t.children]
			if !yield(t, body.cursor()) {
				return
			}
			i += t.children
		}
	}
}

func (d *dom) add(tags ...Tag) {
	for _, tag := range tags {
		if tag != nil {
			tag(d)
		}
	}
}

// push appends a tag with children produced by body.
func (d *dom) push(t tag, body func(Sink)) {
	*d = append(*d, t)

	if body != nil {
		n := len(*d)
		body(d.add)
		(*d)[n-1].children = len(*d) - n
	}
}

// Text returns a tag that emits its text exactly.
//
// Text consisting only of spaces (U+0020) or only of newlines (U+000A) is
// treated as whitespace: spaces adjacent to a newline are deleted so that
// lines have no trailing whitespace, and adjacent runs of the same
// whitespace rune are merged, keeping the longer.
func Text(text string) Tag {
	return TextIf(Always, text)
}

// TextIf is like [Text], but with a condition attached.
func TextIf(cond Cond, text string) Tag {
	return func(d *dom) {
		if text == "" {
			return
		}

		var kind kind
		switch {
		case stringsx.Every(text, ' '):
			kind = kindSpace
		case stringsx.Every(text, '\n'):
			kind = kindBreak
		default:
			kind = kindText
		}

		d.push(tag{kind: kind, text: text, cond: cond}, nil)
	}
}

// Group returns a tag that groups together a collection of child tags.
//
// A group is broken when it contains unconditional newline text, when it
// contains a broken group, when its flat width exceeds maxWidth (zero
// means no own limit), or when laying it out flat would overflow the
// configured [Options].MaxWidth at its position in the document.
func Group(maxWidth int, content func(push Sink)) Tag {
	return func(d *dom) {
		if maxWidth == 0 {
			maxWidth = math.MaxInt
		}
		d.push(tag{kind: kindGroup, limit: maxWidth}, content)
	}
}

// Indent pushes by onto the indentation stack for all of the given tags.
// The indentation stack is printed at the start of each new, non-empty
// line.
func Indent(by string, content func(push Sink)) Tag {
	return func(d *dom) {
		if by == "" {
			content(d.add)
			return
		}
		d.push(tag{kind: kindIndent, text: by}, content)
	}
}

// Render renders a document consisting of the given sequence of tags.
func Render(options Options, content func(push Sink)) string {
	d := new(dom)
	content(d.add)
	return render(options, d)
}

// Options specifies configuration for [Render].
type Options struct {
	// The maximum number of columns to render before triggering a break.
	// A value of zero implies an infinite width.
	MaxWidth int
}

func (o Options) withDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = math.MaxInt
	}
	return o
}
