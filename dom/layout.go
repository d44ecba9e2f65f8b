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

package dom

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/veldtlang/veldtfmt/internal/ext/slicesx"
	"github.com/veldtlang/veldtfmt/internal/ext/stringsx"
)

// layout decides, for every group in a document, whether it is rendered
// flat or broken. It runs in two passes: the first computes the width each
// tag would occupy if laid out flat, and the second walks the document in
// its broken orientation, tracking the output column and breaking any
// group that would not fit.
type layout struct {
	Options

	indent []int
	column int
}

func (l *layout) layout(doc dom) {
	l.flat(doc.cursor())
	l.broken(doc.cursor())
}

// flat computes the flat width of every tag, returning the total width of
// the cursor's tags and whether any of them force a break.
func (l *layout) flat(cursor cursor) (total int, broken bool) {
	for tag, cursor := range cursor {
		if tag.kind == kindText || tag.kind == kindSpace || tag.kind == kindBreak {
			tag.broken = strings.Contains(tag.text, "\n")
			tag.width = uniseg.StringWidth(tag.text)
		}

		n, br := l.flat(cursor)
		tag.width += n
		tag.broken = tag.broken || br

		if tag.renderIf(Flat) {
			total += tag.width
			broken = broken || tag.broken
		}
	}
	return total, broken
}

// broken lays out a group we have decided to break.
func (l *layout) broken(cursor cursor) {
	for tag, cursor := range cursor {
		if !tag.renderIf(Broken) {
			continue
		}

		tag.column = l.column

		switch tag.kind {
		case kindText, kindSpace, kindBreak:
			last := stringsx.LastLine(tag.text)
			if len(last) < len(tag.text) {
				// The tag contains a newline; subsequent text starts on a
				// fresh, indented line.
				l.column, _ = slicesx.Last(l.indent)
			}
			l.column += uniseg.StringWidth(last)

		case kindGroup:
			tag.broken = tag.broken ||
				tag.column+tag.width > l.MaxWidth ||
				tag.width > tag.limit

			if !tag.broken {
				// Leaving this group flat; no need to recurse.
				l.column += tag.width
			} else {
				l.broken(cursor)
			}

		case kindIndent:
			prev, _ := slicesx.Last(l.indent)
			l.indent = append(l.indent, prev+uniseg.StringWidth(tag.text))
			l.broken(cursor)
			slicesx.Pop(&l.indent)
		}
	}
}
