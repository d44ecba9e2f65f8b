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

import "strings"

// printer holds state for converting a laid-out [dom] into a string.
type printer struct {
	out strings.Builder

	// Buffered spaces and newlines, for whitespace merging in write().
	spaces, newlines int

	// The indentation stack, joined and emitted after each newline.
	indent []string
}

// render renders a dom with the given options.
func render(options Options, doc *dom) string {
	l := layout{Options: options.withDefaults()}
	l.layout(*doc)

	var p printer
	// The top level is always broken.
	p.print(Broken, doc.cursor())
	return p.out.String()
}

// print prints all of the elements of a cursor that are conditioned on
// cond, i.e. on whether the containing group is broken.
func (p *printer) print(cond Cond, cursor cursor) {
	for tag, cursor := range cursor {
		if !tag.renderIf(cond) {
			continue
		}

		switch tag.kind {
		case kindText:
			p.write(tag.text)
			p.spaces = 0
			p.newlines = 0

		case kindSpace:
			p.spaces = max(p.spaces, len(tag.text))

		case kindBreak:
			p.newlines = max(p.newlines, len(tag.text))

		case kindGroup:
			ourCond := Flat
			if tag.broken {
				ourCond = Broken
			}
			p.print(ourCond, cursor)

		case kindIndent:
			p.indent = append(p.indent, tag.text)
			p.print(cond, cursor)
			p.indent = p.indent[:len(p.indent)-1]
		}
	}
}

// write appends text to the output buffer, flushing any buffered
// whitespace. Spaces buffered before a newline are discarded, so lines
// never carry trailing whitespace.
func (p *printer) write(text string) {
	if p.newlines > 0 {
		for range p.newlines {
			p.out.WriteByte('\n')
		}
		p.newlines = 0
		p.spaces = 0

		for _, by := range p.indent {
			p.out.WriteString(by)
		}
	}

	for range p.spaces {
		p.out.WriteByte(' ')
	}
	p.spaces = 0

	p.out.WriteString(text)
}
