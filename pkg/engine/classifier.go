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

package engine

import "strings"

// Sigil is the reserved prefix that marks a mapping key as an operator name.
const Sigil = "$"

// LiteralOperator is the reserved literal-escape operator. It is present
// in every registry and cannot be excluded or overridden.
const LiteralOperator = "$literal"

// LooksLikeExpression reports whether v has the shape of an expression
// node: a mapping with exactly one key, and that key starts with the
// operator sigil. Shape alone says nothing about whether the named
// operator is registered; see Engine.IsExpression for that.
func LooksLikeExpression(v any) bool {
	name, _, ok := expressionEntry(v)
	return ok && name != ""
}

// IsWrappedLiteral reports whether v is a literal-escape wrapper of the
// exact shape {"$literal": ...}.
func IsWrappedLiteral(v any) bool {
	name, _, ok := expressionEntry(v)
	return ok && name == LiteralOperator
}

// expressionEntry extracts the operator name and operand from an
// expression-shaped value. ok is false when v is not a single-entry
// mapping whose key starts with the sigil; such values are ordinary
// data, even when they look suspicious.
func expressionEntry(v any) (name string, operand any, ok bool) {
	m, isMap := v.(map[string]any)
	if !isMap || len(m) != 1 {
		return "", nil, false
	}
	for k, val := range m {
		if !strings.HasPrefix(k, Sigil) {
			return "", nil, false
		}
		return k, val, true
	}
	return "", nil, false
}
