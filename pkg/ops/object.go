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

import (
	"sort"

	"github.com/tombee/jsonexpr/pkg/engine"
)

func evalObject(ctx *engine.Context, op string, operand, input any) (map[string]any, error) {
	v, err := ctx.Apply(operand, input)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, operandErr(op, "operand must evaluate to an object, got %s", typeName(v))
	}
	return m, nil
}

// opKeys returns the object's keys, sorted for determinism.
func opKeys(operand, input any, ctx *engine.Context) (any, error) {
	m, err := evalObject(ctx, "$keys", operand, input)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out, nil
}

// opValues returns the object's values in sorted-key order.
func opValues(operand, input any, ctx *engine.Context) (any, error) {
	m, err := evalObject(ctx, "$values", operand, input)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out, nil
}

// opMerge shallow-merges a list of objects left to right, later keys
// winning.
func opMerge(operand, input any, ctx *engine.Context) (any, error) {
	args, err := evalArgs(ctx, "$merge", operand, input, -1)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	for i, arg := range args {
		m, ok := arg.(map[string]any)
		if !ok {
			return nil, operandErr("$merge", "argument %d must be an object, got %s", i, typeName(arg))
		}
		for k, v := range m {
			out[k] = v
		}
	}
	return out, nil
}

// keySelection implements $pick and $omit over [object, keys].
func keySelection(name string, keep bool) engine.Operator {
	return func(operand, input any, ctx *engine.Context) (any, error) {
		args, err := evalArgs(ctx, name, operand, input, 2)
		if err != nil {
			return nil, err
		}
		m, ok := args[0].(map[string]any)
		if !ok {
			return nil, operandErr(name, "first argument must be an object, got %s", typeName(args[0]))
		}
		rawKeys, ok := args[1].([]any)
		if !ok {
			return nil, operandErr(name, "second argument must be an array of keys, got %s", typeName(args[1]))
		}

		selected := make(map[string]bool, len(rawKeys))
		for i, rawKey := range rawKeys {
			k, ok := rawKey.(string)
			if !ok {
				return nil, operandErr(name, "key %d is not a string", i)
			}
			selected[k] = true
		}

		out := make(map[string]any)
		for k, v := range m {
			if selected[k] == keep {
				out[k] = v
			}
		}
		return out, nil
	}
}
