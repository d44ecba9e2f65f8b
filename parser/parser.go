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

// Package parser parses the path, type, and constant-expression grammar
// that the printer emits. It is deliberately tolerant of trailing
// separators inside bracketed lists, since wrapped output carries them.
package parser

import (
	"fmt"

	"github.com/veldtlang/veldtfmt/ast"
	"github.com/veldtlang/veldtfmt/keyword"
)

// ParseType parses src as a single type expression.
func ParseType(src string) (ast.Type, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	ty, err := p.ty()
	if err != nil {
		return nil, err
	}
	return ty, p.eof()
}

// ParsePath parses src as a single qualified path.
func ParsePath(src string) (*ast.TypePath, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	tp, err := p.typePath()
	if err != nil {
		return nil, err
	}
	return tp, p.eof()
}

// ParseExpr parses src as a single constant expression.
func ParseExpr(src string) (ast.Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	return expr, p.eof()
}

type parser struct {
	toks []token
	pos  int
}

func newParser(src string) (*parser, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &parser{toks: toks}, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

// peekKw reports whether the next token is the given particle.
func (p *parser) peekKw(kw keyword.Keyword) bool {
	tok := p.peek()
	return tok.kind == tokPunct && tok.kw == kw
}

// eat consumes the next token if it is the given particle.
func (p *parser) eat(kw keyword.Keyword) bool {
	if p.peekKw(kw) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(kw keyword.Keyword) error {
	if !p.eat(kw) {
		return p.errorf("expected %q", kw)
	}
	return nil
}

func (p *parser) eof() error {
	if p.peek().kind != tokEOF {
		return p.errorf("expected end of input")
	}
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.peek().offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) ty() (ast.Type, error) {
	switch tok := p.peek(); {
	case tok.kind == tokPunct && tok.kw == keyword.Amp:
		p.next()
		ref := new(ast.TypeRef)
		if lt := p.peek(); lt.kind == tokLifetime {
			p.next()
			ref.Lifetime = &ast.Lifetime{Name: lt.text}
		}
		elem, err := p.ty()
		if err != nil {
			return nil, err
		}
		ref.Elem = elem
		return ref, nil

	case tok.kind == tokPunct && tok.kw == keyword.LBracket:
		p.next()
		elem, err := p.ty()
		if err != nil {
			return nil, err
		}
		if err := p.expect(keyword.RBracket); err != nil {
			return nil, err
		}
		return &ast.TypeSlice{Elem: elem}, nil

	case tok.kind == tokPunct && tok.kw == keyword.LParen:
		p.next()
		tuple := new(ast.TypeTuple)
		for !p.peekKw(keyword.RParen) {
			elem, err := p.ty()
			if err != nil {
				return nil, err
			}
			tuple.Elems = append(tuple.Elems, elem)
			if !p.eat(keyword.Comma) {
				break
			}
		}
		if err := p.expect(keyword.RParen); err != nil {
			return nil, err
		}
		return tuple, nil

	case tok.kind == tokPunct && tok.kw == keyword.Under:
		p.next()
		return &ast.TypeInfer{}, nil

	default:
		return p.typePath()
	}
}

// typePath parses a path, with or without a <T as Interface> prefix.
func (p *parser) typePath() (*ast.TypePath, error) {
	if !p.eat(keyword.Langle) {
		path, err := p.path()
		if err != nil {
			return nil, err
		}
		return &ast.TypePath{Path: path}, nil
	}

	ty, err := p.ty()
	if err != nil {
		return nil, err
	}

	// The interface portion, if present, supplies the path's leading
	// segments; its length is the QSelf position.
	var path ast.Path
	if p.eat(keyword.As) {
		path, err = p.path()
		if err != nil {
			return nil, err
		}
	}
	qself := &ast.QSelf{Type: ty, Position: len(path.Segments)}

	if err := p.expect(keyword.Rangle); err != nil {
		return nil, err
	}
	for p.eat(keyword.ColonColon) {
		segment, err := p.segment()
		if err != nil {
			return nil, err
		}
		path.Segments = append(path.Segments, segment)
	}

	return &ast.TypePath{QSelf: qself, Path: path}, nil
}

func (p *parser) path() (ast.Path, error) {
	var path ast.Path
	path.Rooted = p.eat(keyword.ColonColon)

	for {
		segment, err := p.segment()
		if err != nil {
			return path, err
		}
		path.Segments = append(path.Segments, segment)

		if !p.eat(keyword.ColonColon) {
			break
		}
		if p.peekKw(keyword.Langle) {
			// The expression-position root marker: name::<T>.
			args, err := p.angleArgs(true)
			if err != nil {
				return path, err
			}
			path.Segments[len(path.Segments)-1].Args = args
			if !p.eat(keyword.ColonColon) {
				break
			}
		}
	}

	return path, nil
}

func (p *parser) segment() (ast.PathSegment, error) {
	tok := p.next()
	if tok.kind != tokIdent {
		return ast.PathSegment{}, &SyntaxError{Offset: tok.offset, Msg: "expected identifier"}
	}
	segment := ast.PathSegment{Name: tok.text}

	var err error
	switch {
	case p.peekKw(keyword.Langle):
		segment.Args, err = p.angleArgs(false)
	case p.peekKw(keyword.LParen):
		segment.Args, err = p.parenArgs()
	}
	return segment, err
}

func (p *parser) angleArgs(rooted bool) (*ast.AngleArgs, error) {
	if err := p.expect(keyword.Langle); err != nil {
		return nil, err
	}

	args := &ast.AngleArgs{Rooted: rooted}
	for !p.peekKw(keyword.Rangle) {
		arg, err := p.genericArg()
		if err != nil {
			return nil, err
		}
		args.Args = append(args.Args, arg)
		if !p.eat(keyword.Comma) {
			break
		}
	}
	return args, p.expect(keyword.Rangle)
}

func (p *parser) genericArg() (ast.GenericArg, error) {
	switch tok := p.peek(); {
	case tok.kind == tokLifetime:
		p.next()
		return &ast.ArgLifetime{Lifetime: ast.Lifetime{Name: tok.text}}, nil

	case tok.kind == tokNumber || tok.kind == tokString:
		p.next()
		return &ast.ArgConst{Expr: &ast.ExprLiteral{Text: tok.text}}, nil

	case tok.kind == tokPunct && tok.kw == keyword.LBrace:
		block, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.ArgConst{Expr: block}, nil

	case tok.kind == tokIdent && p.toks[p.pos+1].kind == tokPunct && p.toks[p.pos+1].kw == keyword.Eq:
		p.pos += 2
		ty, err := p.ty()
		if err != nil {
			return nil, err
		}
		return &ast.ArgBinding{Name: tok.text, Type: ty}, nil

	case tok.kind == tokIdent && p.toks[p.pos+1].kind == tokPunct && p.toks[p.pos+1].kw == keyword.Colon:
		p.pos += 2
		bounds, err := p.bounds()
		if err != nil {
			return nil, err
		}
		return &ast.ArgConstraint{Name: tok.text, Bounds: bounds}, nil

	default:
		// A bare path here could equally be a constant; it parses as a
		// type, which the printer keeps in the same emission phase.
		ty, err := p.ty()
		if err != nil {
			return nil, err
		}
		return &ast.ArgType{Type: ty}, nil
	}
}

func (p *parser) bounds() ([]ast.Bound, error) {
	var bounds []ast.Bound
	for {
		if tok := p.peek(); tok.kind == tokLifetime {
			p.next()
			bounds = append(bounds, ast.Bound{Lifetime: &ast.Lifetime{Name: tok.text}})
		} else {
			iface, err := p.typePath()
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, ast.Bound{Interface: iface})
		}

		if !p.eat(keyword.Plus) {
			return bounds, nil
		}
		// Tolerate a trailing + at the end of the list.
		if p.peekKw(keyword.Comma) || p.peekKw(keyword.Rangle) {
			return bounds, nil
		}
	}
}

func (p *parser) parenArgs() (*ast.ParenArgs, error) {
	if err := p.expect(keyword.LParen); err != nil {
		return nil, err
	}

	args := new(ast.ParenArgs)
	for !p.peekKw(keyword.RParen) {
		input, err := p.ty()
		if err != nil {
			return nil, err
		}
		args.Inputs = append(args.Inputs, input)
		if !p.eat(keyword.Comma) {
			break
		}
	}
	if err := p.expect(keyword.RParen); err != nil {
		return nil, err
	}

	if p.eat(keyword.Arrow) {
		output, err := p.ty()
		if err != nil {
			return nil, err
		}
		args.Output = output
	}
	return args, nil
}

// binaryPrec is the precedence of each infix operator; zero means the
// particle is not an operator.
func binaryPrec(kw keyword.Keyword) int {
	switch kw {
	case keyword.Plus, keyword.Minus:
		return 1
	case keyword.Star, keyword.Slash:
		return 2
	default:
		return 0
	}
}

func (p *parser) expr() (ast.Expr, error) {
	return p.binary(1)
}

func (p *parser) binary(minPrec int) (ast.Expr, error) {
	lhs, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.kind != tokPunct {
			return lhs, nil
		}
		prec := binaryPrec(tok.kw)
		if prec < minPrec || prec == 0 {
			return lhs, nil
		}
		p.next()

		rhs, err := p.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.ExprBinary{Op: tok.kw, Lhs: lhs, Rhs: rhs}
	}
}

func (p *parser) primary() (ast.Expr, error) {
	switch tok := p.peek(); {
	case tok.kind == tokNumber || tok.kind == tokString:
		p.next()
		return &ast.ExprLiteral{Text: tok.text}, nil

	case tok.kind == tokPunct && tok.kw == keyword.LBrace:
		return p.block()

	case tok.kind == tokIdent || tok.kind == tokPunct && (tok.kw == keyword.Langle || tok.kw == keyword.ColonColon):
		tp, err := p.typePath()
		if err != nil {
			return nil, err
		}
		return &ast.ExprPath{Type: *tp}, nil

	default:
		return nil, p.errorf("expected expression")
	}
}

func (p *parser) block() (*ast.ExprBlock, error) {
	if err := p.expect(keyword.LBrace); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.ExprBlock{Body: body}, p.expect(keyword.RBrace)
}
