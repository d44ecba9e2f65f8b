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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veldtlang/veldtfmt/ast"
	"github.com/veldtlang/veldtfmt/keyword"
	"github.com/veldtlang/veldtfmt/printer"
)

// flat disables wrapping, so every assertion below is about token order
// and spacing alone.
var flat = printer.Options{}

func seg(name string) ast.PathSegment {
	return ast.PathSegment{Name: name}
}

func segArgs(name string, args ...ast.GenericArg) ast.PathSegment {
	return ast.PathSegment{Name: name, Args: &ast.AngleArgs{Args: args}}
}

func path(segments ...ast.PathSegment) ast.Path {
	return ast.Path{Segments: segments}
}

func named(name string) *ast.TypePath {
	return &ast.TypePath{Path: path(seg(name))}
}

func lit(text string) *ast.ExprLiteral {
	return &ast.ExprLiteral{Text: text}
}

func TestSeparators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", printer.Path(flat, path(seg("A"))))
	assert.Equal(t, "A::B::C", printer.Path(flat, path(seg("A"), seg("B"), seg("C"))))

	rooted := ast.Path{Rooted: true, Segments: []ast.PathSegment{seg("std"), seg("vec"), seg("Vec")}}
	assert.Equal(t, "::std::vec::Vec", printer.Path(flat, rooted))

	single := ast.Path{Rooted: true, Segments: []ast.PathSegment{seg("core")}}
	assert.Equal(t, "::core", printer.Path(flat, single))
}

func TestArgumentOrdering(t *testing.T) {
	t.Parallel()

	// Lifetimes first, then types and consts in their given order, then
	// bindings and constraints in their given order.
	scrambled := path(segArgs("X",
		&ast.ArgConst{Expr: lit("1")},
		&ast.ArgLifetime{Lifetime: ast.Lifetime{Name: "a"}},
		&ast.ArgType{Type: named("T")},
		&ast.ArgBinding{Name: "Item", Type: named("U")},
	))
	assert.Equal(t, "X<'a, 1, T, Item = U>", printer.Path(flat, scrambled))

	interleaved := path(segArgs("X",
		&ast.ArgBinding{Name: "Out", Type: named("V")},
		&ast.ArgLifetime{Lifetime: ast.Lifetime{Name: "a"}},
		&ast.ArgType{Type: named("T")},
		&ast.ArgConstraint{Name: "Item", Bounds: []ast.Bound{{Interface: named("Clone")}}},
		&ast.ArgLifetime{Lifetime: ast.Lifetime{Name: "b"}},
		&ast.ArgConst{Expr: lit("3")},
	))
	assert.Equal(t, "X<'a, 'b, T, 3, Out = V, Item: Clone>", printer.Path(flat, interleaved))
}

func TestEmptyAngleArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "X<>", printer.Path(flat, path(ast.PathSegment{
		Name: "X",
		Args: &ast.AngleArgs{},
	})))
}

func TestRootedAngleArgs(t *testing.T) {
	t.Parallel()

	collect := path(seg("iter"), ast.PathSegment{
		Name: "collect",
		Args: &ast.AngleArgs{
			Rooted: true,
			Args:   []ast.GenericArg{&ast.ArgType{Type: named("T")}},
		},
	})
	assert.Equal(t, "iter::collect::<T>", printer.Path(flat, collect))
}

func TestConstBracing(t *testing.T) {
	t.Parallel()

	array := func(arg ast.Expr) ast.Path {
		return path(segArgs("Array",
			&ast.ArgType{Type: named("T")},
			&ast.ArgConst{Expr: arg},
		))
	}

	// Literals and blocks stand on their own.
	assert.Equal(t, "Array<T, 64>", printer.Path(flat, array(lit("64"))))
	assert.Equal(t, "Array<T, {N}>", printer.Path(flat, array(
		&ast.ExprBlock{Body: &ast.ExprPath{Type: *named("N")}},
	)))

	// Anything else gets braced so the output re-parses as one argument.
	sum := &ast.ExprBinary{
		Op:  keyword.Plus,
		Lhs: &ast.ExprPath{Type: *named("N")},
		Rhs: lit("1"),
	}
	assert.Equal(t, "Array<T, {N + 1}>", printer.Path(flat, array(sum)))

	product := &ast.ExprBinary{
		Op:  keyword.Star,
		Lhs: &ast.ExprPath{Type: *named("PAGE")},
		Rhs: lit("4"),
	}
	assert.Equal(t, "Array<T, {PAGE * 4}>", printer.Path(flat, array(product)))
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	source := path(segArgs("Source",
		&ast.ArgConstraint{Name: "Item", Bounds: []ast.Bound{
			{Interface: named("Clone")},
			{Interface: named("Send")},
			{Lifetime: &ast.Lifetime{Name: "a"}},
		}},
	))
	assert.Equal(t, "Source<Item: Clone + Send + 'a>", printer.Path(flat, source))
}

func TestParenArgs(t *testing.T) {
	t.Parallel()

	fn := func(output ast.Type, inputs ...ast.Type) ast.Path {
		return path(ast.PathSegment{
			Name: "Fn",
			Args: &ast.ParenArgs{Inputs: inputs, Output: output},
		})
	}

	assert.Equal(t, "Fn()", printer.Path(flat, fn(nil)))
	assert.Equal(t, "Fn(A)", printer.Path(flat, fn(nil, named("A"))))
	assert.Equal(t, "Fn(A, B) -> C", printer.Path(flat, fn(named("C"), named("A"), named("B"))))
}

func TestQualifiedPath(t *testing.T) {
	t.Parallel()

	qself := &ast.QSelf{Type: named("T"), Position: 1}

	// Position zero: no interface, the bracket closes immediately.
	member := path(seg("Item"))
	assert.Equal(t, "<T>::Item", printer.QualifiedPath(flat, &ast.QSelf{Type: named("T")}, member))

	// Position equal to the segment count: no member tail.
	assert.Equal(t, "<T as Iterator>", printer.QualifiedPath(flat, qself, path(seg("Iterator"))))

	// The general shape, with the bracket bound to the interface name.
	assert.Equal(t, "<T as Iterator>::Item",
		printer.QualifiedPath(flat, qself, path(seg("Iterator"), seg("Item"))))

	// A rooted, multi-segment interface portion.
	deep := ast.Path{
		Rooted:   true,
		Segments: []ast.PathSegment{seg("veldt"), seg("net"), seg("Endpoint"), seg("Addr")},
	}
	assert.Equal(t, "<Beacon as ::veldt::net::Endpoint>::Addr",
		printer.QualifiedPath(flat, &ast.QSelf{Type: named("Beacon"), Position: 3}, deep))

	// A nil qualified self prints the bare path.
	assert.Equal(t, "A::B", printer.QualifiedPath(flat, nil, path(seg("A"), seg("B"))))
}

func TestQualifiedPathClamping(t *testing.T) {
	t.Parallel()

	segments := path(seg("Iterator"), seg("Item"))

	// Positions past the end clamp to the segment count.
	assert.Equal(t, "<T as Iterator::Item>",
		printer.QualifiedPath(flat, &ast.QSelf{Type: named("T"), Position: 99}, segments))

	// Negative positions clamp to zero.
	assert.Equal(t, "<T>::Iterator::Item",
		printer.QualifiedPath(flat, &ast.QSelf{Type: named("T"), Position: -3}, segments))
}

func TestGenericInterface(t *testing.T) {
	t.Parallel()

	iface := path(segArgs("Convert", &ast.ArgType{Type: named("U")}), seg("convert"))
	assert.Equal(t, "<T as Convert<U>>::convert",
		printer.QualifiedPath(flat, &ast.QSelf{Type: named("T"), Position: 1}, iface))
}
