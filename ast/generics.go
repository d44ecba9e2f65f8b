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

// GenericArg is one argument of an [AngleArgs] list. It is a closed sum:
// the only implementations are [*ArgLifetime], [*ArgType], [*ArgBinding],
// [*ArgConstraint] and [*ArgConst].
type GenericArg interface {
	Kind() ArgKind
	isGenericArg()
}

// ArgLifetime is a lifetime argument, e.g. the 'a in Ref<'a, T>.
type ArgLifetime struct {
	Lifetime Lifetime
}

// ArgType is a type argument.
type ArgType struct {
	Type Type
}

// ArgBinding is an associated-type equality constraint, e.g. Item = U.
type ArgBinding struct {
	Name string
	Type Type
}

// ArgConstraint is an associated-type bound constraint, e.g.
// Item: Clone + 'a.
type ArgConstraint struct {
	Name   string
	Bounds []Bound
}

// ArgConst is a constant argument, e.g. the 3 in Array<T, 3>.
type ArgConst struct {
	Expr Expr
}

func (*ArgLifetime) Kind() ArgKind   { return ArgKindLifetime }
func (*ArgType) Kind() ArgKind       { return ArgKindType }
func (*ArgBinding) Kind() ArgKind    { return ArgKindBinding }
func (*ArgConstraint) Kind() ArgKind { return ArgKindConstraint }
func (*ArgConst) Kind() ArgKind      { return ArgKindConst }

func (*ArgLifetime) isGenericArg()   {}
func (*ArgType) isGenericArg()       {}
func (*ArgBinding) isGenericArg()    {}
func (*ArgConstraint) isGenericArg() {}
func (*ArgConst) isGenericArg()      {}
