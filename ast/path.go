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

// Path is a sequence of name segments denoting a (possibly nested) entity
// reference, such as veldt::collections::Map<K, V>.
type Path struct {
	// Whether the path is written rooted, i.e. with a leading :: before the
	// first segment.
	Rooted bool

	// The path's segments. May be empty only when a [QSelf] supplies the
	// subject of the path.
	Segments []PathSegment
}

// PathSegment is one name component of a [Path], plus its optional generic
// arguments.
type PathSegment struct {
	Name string

	// The segment's argument list. Nil means no arguments at all, which is
	// distinct from an empty angle-bracketed list <>.
	Args PathArgs
}

// PathArgs is the argument list attached to a [PathSegment]: either
// [*AngleArgs] or [*ParenArgs]. A nil PathArgs means the segment has no
// argument list.
type PathArgs interface {
	isPathArgs()
}

// AngleArgs is an angle-bracketed generic argument list, e.g.
// <'a, T, Item = U>.
type AngleArgs struct {
	// Whether the list is written with a leading :: root marker, as
	// required in expression position: name::<T>.
	Rooted bool

	Args []GenericArg
}

// ParenArgs is the callable-type shorthand for a generic argument list,
// e.g. (A, B) -> C.
type ParenArgs struct {
	Inputs []Type

	// The return type. Nil means the implicit unit return, which prints
	// nothing at all.
	Output Type
}

func (*AngleArgs) isPathArgs() {}
func (*ParenArgs) isPathArgs() {}

// QSelf is the qualified-self prefix of a path: the concrete type and,
// optionally, the specific interface through which the path's leading
// segments are resolved.
//
// Position is the number of leading segments of the accompanying [Path]
// that name that interface. Positions outside [0, len(Segments)] are
// tolerated and clamped by the printer.
type QSelf struct {
	Type     Type
	Position int
}
