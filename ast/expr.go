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

package ast

import "github.com/veldtlang/veldtfmt/keyword"

// Expr is any constant expression node. It is a closed sum: the only
// implementations are [*ExprLiteral], [*ExprBlock], [*ExprPath] and
// [*ExprBinary].
//
// Only literals and blocks are self-delimiting; the printer braces
// everything else when it appears as a generic argument.
type Expr interface {
	Kind() ExprKind
	isExpr()
}

// ExprLiteral is a literal token, stored verbatim: 5, -5, "five".
type ExprLiteral struct {
	Text string
}

// ExprBlock is an explicitly braced expression, e.g. {N + 1}.
type ExprBlock struct {
	Body Expr
}

// ExprPath is a path used in expression position, e.g. N or Self::LEN.
type ExprPath struct {
	Type TypePath
}

// ExprBinary is an infix application, e.g. N + 1.
type ExprBinary struct {
	Op       keyword.Keyword
	Lhs, Rhs Expr
}

func (*ExprLiteral) Kind() ExprKind { return ExprKindLiteral }
func (*ExprBlock) Kind() ExprKind   { return ExprKindBlock }
func (*ExprPath) Kind() ExprKind    { return ExprKindPath }
func (*ExprBinary) Kind() ExprKind  { return ExprKindBinary }

func (*ExprLiteral) isExpr() {}
func (*ExprBlock) isExpr()   {}
func (*ExprPath) isExpr()    {}
func (*ExprBinary) isExpr()  {}
