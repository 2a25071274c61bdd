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
	"fmt"
	"sort"
	"strings"
)

// tracer is the path-tracking strategy for one evaluation pass. The
// optimistic and exact modes are the same walk instantiated with
// different tracers, so the two modes cannot drift apart.
type tracer interface {
	// push extends the path with one step: a string key, an int index,
	// or an operator name (sigil already trimmed).
	push(step any) tracer

	// annotate attributes err to the current path.
	annotate(err error) error

	// path renders the current location, e.g. "pipe[0].get".
	path() string
}

// noTrace is the optimistic strategy: no bookkeeping, no allocation.
type noTrace struct{}

func (noTrace) push(any) tracer          { return noTrace{} }
func (noTrace) annotate(err error) error { return err }
func (noTrace) path() string             { return "" }

// exactTrace accumulates steps so a failure can be attributed to the
// exact node that raised it. Each push copies the step slice; that cost
// is why the optimistic pass exists.
type exactTrace struct {
	steps []any
}

func (t exactTrace) push(step any) tracer {
	steps := make([]any, len(t.steps)+1)
	copy(steps, t.steps)
	steps[len(t.steps)] = step
	return exactTrace{steps: steps}
}

func (t exactTrace) annotate(err error) error {
	return annotate(err, t.path())
}

func (t exactTrace) path() string {
	var b strings.Builder
	for _, step := range t.steps {
		switch s := step.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", s)
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(&b, s)
		}
	}
	return b.String()
}

// walk is the recursive evaluator shared by both modes.
//
// Expression nodes dispatch to their operator; the operator decides
// when and whether to recurse into its own operand through ctx.Apply.
// Plain arrays and mappings that are not expressions recurse
// structurally, and scalars pass through unchanged.
func (e *Engine) walk(node, input any, tr tracer) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		if name, operand, ok := expressionEntry(n); ok {
			op, registered := e.registry.lookup(name)
			if !registered {
				return nil, tr.annotate(e.unknownOperator(name))
			}
			boundary := tr.push(strings.TrimPrefix(name, Sigil))
			out, err := e.invokeOperator(name, op, operand, input, boundary)
			if err != nil {
				return nil, boundary.annotate(err)
			}
			return out, nil
		}

		// Plain mapping: recurse value-wise. Keys evaluate in sorted
		// order so a failing tree always reports the same path.
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(n))
		for _, k := range keys {
			v, err := e.walk(n[k], input, tr.push(k))
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil

	case []any:
		out := make([]any, len(n))
		for i, elem := range n {
			v, err := e.walk(elem, input, tr.push(i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	default:
		return node, nil
	}
}

// invokeOperator runs one operator, through the middleware chain when
// one is configured.
func (e *Engine) invokeOperator(name string, op Operator, operand, input any, tr tracer) (any, error) {
	ctx := e.contextFor(tr)
	if e.invoke == nil {
		return op(operand, input, ctx)
	}

	inv := Invocation{
		Operator: name,
		Path:     tr.path(),
		Operand:  operand,
		Input:    input,
	}
	return e.invoke(inv, func(operand, input any) (any, error) {
		return op(operand, input, ctx)
	})
}

// contextFor builds the operator context for one boundary. The
// optimistic tracer carries no state, so its context is built once at
// construction and shared by every invocation.
func (e *Engine) contextFor(tr tracer) *Context {
	if _, bare := tr.(noTrace); bare && e.optimisticCtx != nil {
		return e.optimisticCtx
	}
	return &Context{
		Apply: func(tree, input any, steps ...any) (any, error) {
			child := tr
			for _, step := range steps {
				child = child.push(step)
			}
			return e.walk(tree, input, child)
		},
		IsExpression:     e.IsExpression,
		IsWrappedLiteral: IsWrappedLiteral,
	}
}
