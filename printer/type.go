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

func (p *printer) ty(ty ast.Type) {
	switch ty := ty.(type) {
	case *ast.TypePath:
		p.qpath(ty.QSelf, ty.Path)
	case *ast.TypeRef:
		p.word(keyword.Amp)
		if ty.Lifetime != nil {
			p.lifetime(*ty.Lifetime)
		}
		p.ty(ty.Elem)
	case *ast.TypeSlice:
		p.word(keyword.LBracket)
		p.ty(ty.Elem)
		p.word(keyword.RBracket)
	case *ast.TypeTuple:
		p.word(keyword.LParen)
		for _, elem := range ty.Elems {
			p.ty(elem)
			p.sep(keyword.Comma)
		}
		p.word(keyword.RParen)
	case *ast.TypeInfer:
		p.word(keyword.Under)
	default:
		panic(fmt.Sprintf("printer: unexpected type %T", ty))
	}
}

func (p *printer) lifetime(lifetime ast.Lifetime) {
	p.ident("'" + lifetime.Name)
}

func (p *printer) bound(bound ast.Bound) {
	switch {
	case bound.Interface != nil:
		p.qpath(bound.Interface.QSelf, bound.Interface.Path)
	case bound.Lifetime != nil:
		p.lifetime(*bound.Lifetime)
	default:
		panic("printer: bound with no interface or lifetime")
	}
}

// returnType prints -> T, or nothing at all for the implicit unit return.
func (p *printer) returnType(ty ast.Type) {
	if ty == nil {
		return
	}
	p.word(keyword.Arrow)
	p.ty(ty)
}
