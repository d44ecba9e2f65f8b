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

// Package ast defines the syntax tree consumed by the printer: qualified
// paths with generic arguments, and the small type and constant-expression
// surface that can appear inside them.
//
// All nodes are plain immutable values; nothing in this package retains or
// mutates them after construction. The sum types ([GenericArg], [Type],
// [Expr]) are closed: user code must not define new implementations of
// their interfaces. Each sum carries a Kind method so that consumers can
// dispatch exhaustively and fail loudly on a variant they do not know
// about.
package ast

//go:generate go run github.com/veldtlang/veldtfmt/internal/enum kind.yaml
