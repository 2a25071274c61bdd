// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine implements the expression dispatch core: a recursive
// evaluator for tree-shaped JSON documents that embed operator calls.
//
// An expression node is a mapping with exactly one key beginning with
// "$", for example {"$get": "user.name"}. The key names an operator
// from the engine's registry; the value is the operand. Anything else
// is plain data: arrays and mappings recurse structurally, scalars pass
// through unchanged, and {"$literal": v} returns v verbatim even when v
// itself looks like an expression.
//
// The registry is assembled once per engine from operator packs, custom
// overrides and an exclusion list, and is immutable afterwards, so one
// engine may serve concurrent Apply calls without locking. Operator
// implementations live in the ops package; this package only knows how
// to dispatch to them, wrap them in middleware, attribute failures to a
// path, and statically validate trees for unknown operator references.
//
// Evaluation runs twice on failure: an optimistic pass with no path
// bookkeeping, then an exact re-run that reconstructs the dotted path
// to the failing node. This trades a second evaluation of failing trees
// for zero overhead on the common, successful case, and is sound
// because operators are contractually pure.
package engine
