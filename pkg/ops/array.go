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

// requireArrayInput guards the element-wise operators, which apply
// their operand expression to each element of an array input. Arrays
// reach them through composition, typically $pipe with $get.
func requireArrayInput(op string, input any) ([]any, error) {
	arr, ok := input.([]any)
	if !ok {
		return nil, operandErr(op, "input must be an array, got %s", typeName(input))
	}
	return arr, nil
}

// opMap applies the operand expression to each element of the input
// array, with the element as input.
func opMap(operand, input any, ctx *engine.Context) (any, error) {
	arr, err := requireArrayInput("$map", input)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(arr))
	for i, elem := range arr {
		v, err := ctx.Apply(operand, elem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// opFilter keeps the elements for which the operand expression is truthy.
func opFilter(operand, input any, ctx *engine.Context) (any, error) {
	arr, err := requireArrayInput("$filter", input)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(arr))
	for _, elem := range arr {
		v, err := ctx.Apply(operand, elem)
		if err != nil {
			return nil, err
		}
		if truthy(v) {
			out = append(out, elem)
		}
	}
	return out, nil
}

// opFind returns the first element for which the operand expression is
// truthy, or null.
func opFind(operand, input any, ctx *engine.Context) (any, error) {
	arr, err := requireArrayInput("$find", input)
	if err != nil {
		return nil, err
	}
	for _, elem := range arr {
		v, err := ctx.Apply(operand, elem)
		if err != nil {
			return nil, err
		}
		if truthy(v) {
			return elem, nil
		}
	}
	return nil, nil
}

// opSome reports whether the operand expression is truthy for at least
// one element.
func opSome(operand, input any, ctx *engine.Context) (any, error) {
	arr, err := requireArrayInput("$some", input)
	if err != nil {
		return nil, err
	}
	for _, elem := range arr {
		v, err := ctx.Apply(operand, elem)
		if err != nil {
			return nil, err
		}
		if truthy(v) {
			return true, nil
		}
	}
	return false, nil
}

// opEvery reports whether the operand expression is truthy for every
// element. True for the empty array.
func opEvery(operand, input any, ctx *engine.Context) (any, error) {
	arr, err := requireArrayInput("$every", input)
	if err != nil {
		return nil, err
	}
	for _, elem := range arr {
		v, err := ctx.Apply(operand, elem)
		if err != nil {
			return nil, err
		}
		if !truthy(v) {
			return false, nil
		}
	}
	return true, nil
}

// opArrayLength returns the length of the evaluated operand array.
func opArrayLength(operand, input any, ctx *engine.Context) (any, error) {
	v, err := ctx.Apply(operand, input)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, operandErr("$arrayLength", "operand must evaluate to an array, got %s", typeName(v))
	}
	return float64(len(arr)), nil
}

// opIn reports whether [needle, haystack] contains needle, by
// structural equality.
func opIn(operand, input any, ctx *engine.Context) (any, error) {
	args, err := evalArgs(ctx, "$in", operand, input, 2)
	if err != nil {
		return nil, err
	}
	haystack, ok := args[1].([]any)
	if !ok {
		return nil, operandErr("$in", "second argument must be an array, got %s", typeName(args[1]))
	}
	for _, elem := range haystack {
		if equal(args[0], elem) {
			return true, nil
		}
	}
	return false, nil
}
