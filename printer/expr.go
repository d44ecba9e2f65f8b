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

	"github.com/veldtlang/veldtfmt/ast"
	"github.com/veldtlang/veldtfmt/keyword"
)

func (p *printer) expr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.ExprLiteral:
		p.exprLiteral(expr)
	case *ast.ExprBlock:
		p.exprBlock(expr)
	case *ast.ExprPath:
		p.qpath(expr.Type.QSelf, expr.Type.Path)
	case *ast.ExprBinary:
		p.expr(expr.Lhs)
		p.word(expr.Op)
		p.expr(expr.Rhs)
	default:
		panic(fmt.Sprintf("printer: unexpected expression %T", expr))
	}
}

func (p *printer) exprLiteral(expr *ast.ExprLiteral) {
	p.ident(expr.Text)
}

func (p *printer) exprBlock(expr *ast.ExprBlock) {
	p.word(keyword.LBrace)
	if expr.Body != nil {
		p.expr(expr.Body)
	}
	p.word(keyword.RBrace)
}
