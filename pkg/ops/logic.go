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

package ops

import "github.com/tombee/jsonexpr/pkg/engine"

// opAnd evaluates its clauses in order, short-circuiting on the first
// falsy result.
func opAnd(operand, input any, ctx *engine.Context) (any, error) {
	clauses, ok := operand.([]any)
	if !ok {
		return nil, operandErr("$and", "operand must be an array of expressions, got %s", typeName(operand))
	}
	for i, clause := range clauses {
		v, err := ctx.Apply(clause, input, i)
		if err != nil {
			return nil, err
		}
		if !truthy(v) {
			return false, nil
		}
	}
	return true, nil
}

// opOr evaluates its clauses in order, short-circuiting on the first
// truthy result.
func opOr(operand, input any, ctx *engine.Context) (any, error) {
	clauses, ok := operand.([]any)
	if !ok {
		return nil, operandErr("$or", "operand must be an array of expressions, got %s", typeName(operand))
	}
	for i, clause := range clauses {
		v, err := ctx.Apply(clause, input, i)
		if err != nil {
			return nil, err
		}
		if truthy(v) {
			return true, nil
		}
	}
	return false, nil
}

// opNot negates the truthiness of its evaluated operand.
func opNot(operand, input any, ctx *engine.Context) (any, error) {
	v, err := ctx.Apply(operand, input)
	if err != nil {
		return nil, err
	}
	return !truthy(v), nil
}

// opIf evaluates [condition, then, else?], only the branch that is
// taken. A missing else yields null.
func opIf(operand, input any, ctx *engine.Context) (any, error) {
	parts, ok := operand.([]any)
	if !ok || len(parts) < 2 || len(parts) > 3 {
		return nil, operandErr("$if", "operand must be [condition, then] or [condition, then, else]")
	}
	cond, err := ctx.Apply(parts[0], input, 0)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return ctx.Apply(parts[1], input, 1)
	}
	if len(parts) == 3 {
		return ctx.Apply(parts[2], input, 2)
	}
	return nil, nil
}

// opSwitch evaluates {"branches": [[cond, result], ...], "default": d}.
// Branch conditions evaluate in order; the first truthy one selects its
// result. Without a matching branch the default applies, or null when
// none is given.
func opSwitch(operand, input any, ctx *engine.Context) (any, error) {
	spec, ok := operand.(map[string]any)
	if !ok {
		return nil, operandErr("$switch", `operand must be an object with a "branches" entry`)
	}
	rawBranches, ok := spec["branches"].([]any)
	if !ok {
		return nil, operandErr("$switch", `"branches" must be an array of [condition, result] pairs`)
	}

	for i, rawBranch := range rawBranches {
		branch, ok := rawBranch.([]any)
		if !ok || len(branch) != 2 {
			return nil, operandErr("$switch", "branch %d is not a [condition, result] pair", i)
		}
		cond, err := ctx.Apply(branch[0], input, "branches", i, 0)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return ctx.Apply(branch[1], input, "branches", i, 1)
		}
	}

	if fallback, exists := spec["default"]; exists {
		return ctx.Apply(fallback, input, "default")
	}
	return nil, nil
}

// opEq compares [a, b] for structural equality.
func opEq(operand, input any, ctx *engine.Context) (any, error) {
	args, err := evalArgs(ctx, "$eq", operand, input, 2)
	if err != nil {
		return nil, err
	}
	return equal(args[0], args[1]), nil
}

// opNe is the negation of opEq.
func opNe(operand, input any, ctx *engine.Context) (any, error) {
	args, err := evalArgs(ctx, "$ne", operand, input, 2)
	if err != nil {
		return nil, err
	}
	return !equal(args[0], args[1]), nil
}

// compareOp builds a numeric comparison operator for [a, b].
func compareOp(name string, cmp func(a, b float64) bool) engine.Operator {
	return func(operand, input any, ctx *engine.Context) (any, error) {
		args, err := evalArgs(ctx, name, operand, input, 2)
		if err != nil {
			return nil, err
		}
		a, err := requireNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := requireNumber(name, args[1])
		if err != nil {
			return nil, err
		}
		return cmp(a, b), nil
	}
}
