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

import (
	"sort"
	"strings"
)

// ValidateExpression checks tree for unknown operator references
// without executing any operator. It returns one message per offending
// location, empty when the tree is valid. The whole tree is scanned in
// one pass; nothing short-circuits, so the caller sees every problem
// at once.
//
// Recursion skips the operand of an unknown operator (there is no
// registered contract to check it against) and the content of a
// $literal wrapper, which is data by definition.
func (e *Engine) ValidateExpression(tree any) []string {
	var problems []string
	e.validateWalk(tree, exactTrace{}, &problems)
	return problems
}

// EnsureValidExpression returns nil when tree is valid, else a
// ValidationError joining every problem with newlines.
func (e *Engine) EnsureValidExpression(tree any) error {
	problems := e.ValidateExpression(tree)
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func (e *Engine) validateWalk(node any, tr exactTrace, problems *[]string) {
	switch n := node.(type) {
	case map[string]any:
		if name, operand, ok := expressionEntry(n); ok {
			if _, registered := e.registry.lookup(name); !registered {
				err := e.unknownOperator(name)
				err.Path = tr.path()
				*problems = append(*problems, err.Error())
				return
			}
			if name == LiteralOperator {
				return
			}
			e.validateWalk(operand, tr.push(strings.TrimPrefix(name, Sigil)).(exactTrace), problems)
			return
		}

		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e.validateWalk(n[k], tr.push(k).(exactTrace), problems)
		}

	case []any:
		for i, elem := range n {
			e.validateWalk(elem, tr.push(i).(exactTrace), problems)
		}
	}
}
