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

	"github.com/petermattis/goid"

	"github.com/veldtlang/veldtfmt/ast"
	"github.com/veldtlang/veldtfmt/keyword"
)

// Options specifies configuration for the Print functions.
type Options struct {
	// The column limit to wrap argument lists against. A value of zero
	// disables wrapping.
	MaxWidth int

	// The string one level of indentation renders as. Defaults to four
	// spaces.
	Indent string
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = "    "
	}
	return o
}

// Path prints a path.
func Path(options Options, path ast.Path) string {
	p := newPrinter()
	p.path(path)
	return p.render(options)
}

// QualifiedPath prints a path together with its qualified-self prefix, if
// any.
func QualifiedPath(options Options, qself *ast.QSelf, path ast.Path) string {
	p := newPrinter()
	p.qpath(qself, path)
	return p.render(options)
}

// Type prints a type expression.
func Type(options Options, ty ast.Type) string {
	p := newPrinter()
	p.ty(ty)
	return p.render(options)
}

// Expr prints a constant expression.
func Expr(options Options, expr ast.Expr) string {
	p := newPrinter()
	p.expr(expr)
	return p.render(options)
}

const (
	tokWord tokenKind = iota + 1 // A grammar particle, rendered exactly.
	tokIdent                     // An identifier-like token: name, literal, lifetime.
	tokSep                       // A separator particle; elidable before a closing bracket.
)

type tokenKind byte

// token is one element of a printer's output buffer.
type token struct {
	kind tokenKind
	kw   keyword.Keyword // Set for tokWord and tokSep.
	text string          // Set for tokIdent.
}

// printer owns the output token buffer that the print methods fill by side
// effect. A printer is tied to the goroutine that created it: the buffer
// has exactly one owner for the duration of a print, and nested printing
// reuses the same buffer rather than allocating a new one.
type printer struct {
	owner int64
	toks  []token
}

func newPrinter() *printer {
	return &printer{owner: goid.Get()}
}

// check panics if the printer escaped the goroutine that owns it.
func (p *printer) check() {
	if id := goid.Get(); id != p.owner {
		panic(fmt.Sprintf("printer: buffer owned by goroutine %d used from goroutine %d", p.owner, id))
	}
}

// word appends a raw grammar particle.
func (p *printer) word(kw keyword.Keyword) {
	p.check()
	p.toks = append(p.toks, token{kind: tokWord, kw: kw})
}

// ident appends an identifier. Any escaping a name needs belongs here;
// Veldt identifiers require none.
func (p *printer) ident(name string) {
	p.check()
	p.toks = append(p.toks, token{kind: tokIdent, text: name})
}

// sep appends a separator particle. Unlike word, a separator that ends up
// immediately before a closing bracket survives only in broken layout; the
// print methods always emit trailing separators and leave the cleanup to
// rendering.
func (p *printer) sep(kw keyword.Keyword) {
	p.check()
	p.toks = append(p.toks, token{kind: tokSep, kw: kw})
}
