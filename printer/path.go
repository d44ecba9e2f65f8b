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
	"github.com/veldtlang/veldtfmt/internal/ext/iterx"
	"github.com/veldtlang/veldtfmt/keyword"
)

func (p *printer) path(path ast.Path) {
	for segment := range iterx.Delimit(path.Segments) {
		if !segment.IsFirst || path.Rooted {
			p.word(keyword.ColonColon)
		}
		p.pathSegment(segment.Value)
	}
}

func (p *printer) pathSegment(segment ast.PathSegment) {
	p.ident(segment.Name)
	p.pathArgs(segment.Args)
}

func (p *printer) pathArgs(args ast.PathArgs) {
	switch args := args.(type) {
	case nil:
	case *ast.AngleArgs:
		p.angleArgs(args)
	case *ast.ParenArgs:
		p.parenArgs(args)
	default:
		panic(fmt.Sprintf("printer: unexpected argument form %T", args))
	}
}

func (p *printer) genericArg(arg ast.GenericArg) {
	switch arg := arg.(type) {
	case *ast.ArgLifetime:
		p.lifetime(arg.Lifetime)
	case *ast.ArgType:
		p.ty(arg.Type)
	case *ast.ArgBinding:
		p.binding(arg)
	case *ast.ArgConstraint:
		p.constraint(arg)
	case *ast.ArgConst:
		switch expr := arg.Expr.(type) {
		case *ast.ExprLiteral:
			p.exprLiteral(expr)
		case *ast.ExprBlock:
			p.exprBlock(expr)
		default:
			// ERROR CORRECTION: brace the expression to make sure that the
			// output re-parses as a single generic argument.
			p.word(keyword.LBrace)
			p.expr(arg.Expr)
			p.word(keyword.RBrace)
		}
	default:
		panic(fmt.Sprintf("printer: unexpected generic argument %T", arg))
	}
}

func (p *printer) angleArgs(args *ast.AngleArgs) {
	if args.Rooted {
		p.word(keyword.ColonColon)
	}
	p.word(keyword.Langle)

	// Print lifetimes before types and consts, all before bindings and
	// constraints, regardless of their order in args.Args. The relative
	// order within each phase is preserved: the grammar does not fix the
	// order of types against consts, so we must not reorder them either.
	for _, arg := range args.Args {
		if arg.Kind() == ast.ArgKindLifetime {
			p.genericArg(arg)
			p.sep(keyword.Comma)
		}
	}
	for _, arg := range args.Args {
		switch arg.Kind() {
		case ast.ArgKindType, ast.ArgKindConst:
			p.genericArg(arg)
			p.sep(keyword.Comma)
		}
	}
	for _, arg := range args.Args {
		switch arg.Kind() {
		case ast.ArgKindBinding, ast.ArgKindConstraint:
			p.genericArg(arg)
			p.sep(keyword.Comma)
		}
	}

	p.word(keyword.Rangle)
}

func (p *printer) binding(binding *ast.ArgBinding) {
	p.ident(binding.Name)
	p.word(keyword.Eq)
	p.ty(binding.Type)
}

func (p *printer) constraint(constraint *ast.ArgConstraint) {
	p.ident(constraint.Name)
	p.word(keyword.Colon)
	for _, bound := range constraint.Bounds {
		p.bound(bound)
		p.sep(keyword.Plus)
	}
}

func (p *printer) parenArgs(args *ast.ParenArgs) {
	p.word(keyword.LParen)
	for _, ty := range args.Inputs {
		p.ty(ty)
		p.sep(keyword.Comma)
	}
	p.word(keyword.RParen)
	p.returnType(args.Output)
}

func (p *printer) qpath(qself *ast.QSelf, path ast.Path) {
	if qself == nil {
		p.path(path)
		return
	}

	p.word(keyword.Langle)
	p.ty(qself.Type)

	// Out-of-range positions are tolerated, not reported: there is no
	// error channel at this layer.
	pos := min(max(qself.Position, 0), len(path.Segments))
	if pos > 0 {
		p.word(keyword.As)
		for segment := range iterx.Delimit(path.Segments[:pos]) {
			if !segment.IsFirst || path.Rooted {
				p.word(keyword.ColonColon)
			}
			p.pathSegment(segment.Value)
			if segment.IsLast {
				// The closing bracket binds to the interface name, before
				// any further separators.
				p.word(keyword.Rangle)
			}
		}
	} else {
		p.word(keyword.Rangle)
	}
	for _, segment := range path.Segments[pos:] {
		p.word(keyword.ColonColon)
		p.pathSegment(segment)
	}
}
