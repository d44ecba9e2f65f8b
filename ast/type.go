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

// Type is any type expression node. It is a closed sum: the only
// implementations are [*TypePath], [*TypeRef], [*TypeSlice], [*TypeTuple]
// and [*TypeInfer].
type Type interface {
	Kind() TypeKind
	isType()
}

// TypePath is a type named by a qualified path, e.g. veldt::Vec<T> or
// <T as Iterator>::Item.
type TypePath struct {
	// The qualified-self prefix, if any.
	QSelf *QSelf

	Path Path
}

// TypeRef is a reference type, e.g. &T or &'a T.
type TypeRef struct {
	// The reference's lifetime, if written.
	Lifetime *Lifetime

	Elem Type
}

// TypeSlice is a slice type, e.g. [T].
type TypeSlice struct {
	Elem Type
}

// TypeTuple is a tuple type, e.g. (A, B). The empty tuple () is the unit
// type.
type TypeTuple struct {
	Elems []Type
}

// TypeInfer is the inferred-type placeholder _.
type TypeInfer struct{}

func (*TypePath) Kind() TypeKind  { return TypeKindPath }
func (*TypeRef) Kind() TypeKind   { return TypeKindRef }
func (*TypeSlice) Kind() TypeKind { return TypeKindSlice }
func (*TypeTuple) Kind() TypeKind { return TypeKindTuple }
func (*TypeInfer) Kind() TypeKind { return TypeKindInfer }

func (*TypePath) isType()  {}
func (*TypeRef) isType()   {}
func (*TypeSlice) isType() {}
func (*TypeTuple) isType() {}
func (*TypeInfer) isType() {}

// Lifetime is a named lifetime. The name does not include the leading
// apostrophe.
type Lifetime struct {
	Name string
}

// Bound is one element of a bound list, e.g. the Clone in T: Clone + 'a.
// Exactly one of Interface and Lifetime is set.
type Bound struct {
	Interface *TypePath
	Lifetime  *Lifetime
}
