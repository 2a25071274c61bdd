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
	"github.com/tombee/jsonexpr/pkg/engine"
	"github.com/tombee/jsonexpr/pkg/pathutil"
)

// opValue returns the whole input when the operand is null, or resolves
// the operand as a property path against the input.
func opValue(operand, input any, ctx *engine.Context) (any, error) {
	if operand == nil {
		return input, nil
	}
	path, err := evalString(ctx, "$value", operand, input)
	if err != nil {
		return nil, err
	}
	return pathutil.Get(input, path)
}

// opGet resolves a property path against the input. Operand forms:
//
//	"a.b[0]"                              plain path, missing yields null
//	{"path": p, "default": d}             d when the path resolves to null
//	{"path": p, "wild": true}             wildcard expansion, yields an array
func opGet(operand, input any, ctx *engine.Context) (any, error) {
	if spec, ok := operand.(map[string]any); ok && !ctx.IsExpression(operand) {
		return getWithSpec(spec, input, ctx)
	}

	path, err := evalString(ctx, "$get", operand, input)
	if err != nil {
		return nil, err
	}
	out, err := pathutil.Get(input, path)
	if err != nil {
		return nil, operandErr("$get", "%s", err.Error())
	}
	return out, nil
}

func getWithSpec(spec map[string]any, input any, ctx *engine.Context) (any, error) {
	rawPath, ok := spec["path"]
	if !ok {
		return nil, operandErr("$get", `object operand requires a "path" entry`)
	}
	path, err := evalString(ctx, "$get", rawPath, input, "path")
	if err != nil {
		return nil, err
	}

	if wild, _ := spec["wild"].(bool); wild {
		out, err := pathutil.GetWild(input, path)
		if err != nil {
			return nil, operandErr("$get", "%s", err.Error())
		}
		if out == nil {
			out = []any{}
		}
		return out, nil
	}

	out, err := pathutil.Get(input, path)
	if err != nil {
		return nil, operandErr("$get", "%s", err.Error())
	}
	if out == nil {
		if fallback, exists := spec["default"]; exists {
			return ctx.Apply(fallback, input, "default")
		}
	}
	return out, nil
}

// opPipe threads the input through a list of expressions: the result of
// each becomes the input of the next. Failures are attributed to the
// stage index, e.g. "pipe[1].get".
func opPipe(operand, input any, ctx *engine.Context) (any, error) {
	stages, ok := operand.([]any)
	if !ok {
		return nil, operandErr("$pipe", "operand must be an array of expressions, got %s", typeName(operand))
	}
	value := input
	for i, stage := range stages {
		out, err := ctx.Apply(stage, value, i)
		if err != nil {
			return nil, err
		}
		value = out
	}
	return value, nil
}

// opDefault substitutes a fallback for null. Operand: [value, fallback];
// the fallback is only evaluated when needed.
func opDefault(operand, input any, ctx *engine.Context) (any, error) {
	pair, ok := operand.([]any)
	if !ok || len(pair) != 2 {
		return nil, operandErr("$default", "operand must be [value, fallback]")
	}
	v, err := ctx.Apply(pair[0], input, 0)
	if err != nil {
		return nil, err
	}
	if v != nil {
		return v, nil
	}
	return ctx.Apply(pair[1], input, 1)
}

// opType names the evaluated operand's JSON type.
func opType(operand, input any, ctx *engine.Context) (any, error) {
	v, err := ctx.Apply(operand, input)
	if err != nil {
		return nil, err
	}
	return typeName(v), nil
}

// opIsNull reports whether the evaluated operand is null.
func opIsNull(operand, input any, ctx *engine.Context) (any, error) {
	v, err := ctx.Apply(operand, input)
	if err != nil {
		return nil, err
	}
	return v == nil, nil
}
