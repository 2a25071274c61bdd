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
	"math"

	"github.com/tombee/jsonexpr/pkg/engine"
)

// variadicNumericOp builds an operator folding any number of numeric
// arguments, e.g. $add and $multiply.
func variadicNumericOp(name string, initial float64, fold func(acc, n float64) float64) engine.Operator {
	return func(operand, input any, ctx *engine.Context) (any, error) {
		args, err := evalArgs(ctx, name, operand, input, -1)
		if err != nil {
			return nil, err
		}
		acc := initial
		for _, arg := range args {
			n, err := requireNumber(name, arg)
			if err != nil {
				return nil, err
			}
			acc = fold(acc, n)
		}
		return acc, nil
	}
}

// binaryNumericOp builds an operator over exactly [a, b], e.g. $subtract.
func binaryNumericOp(name string, apply func(a, b float64) (float64, error)) engine.Operator {
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
		out, err := apply(a, b)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// unaryNumericOp builds an operator over a single numeric operand,
// e.g. $abs and $floor.
func unaryNumericOp(name string, apply func(n float64) float64) engine.Operator {
	return func(operand, input any, ctx *engine.Context) (any, error) {
		v, err := ctx.Apply(operand, input)
		if err != nil {
			return nil, err
		}
		n, err := requireNumber(name, v)
		if err != nil {
			return nil, err
		}
		return apply(n), nil
	}
}

// extremumOp builds $min/$max over a non-empty numeric list.
func extremumOp(name string, pick func(a, b float64) float64) engine.Operator {
	return func(operand, input any, ctx *engine.Context) (any, error) {
		args, err := evalArgs(ctx, name, operand, input, -1)
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, operandErr(name, "operand must not be empty")
		}
		best, err := requireNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		for _, arg := range args[1:] {
			n, err := requireNumber(name, arg)
			if err != nil {
				return nil, err
			}
			best = pick(best, n)
		}
		return best, nil
	}
}

func opDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, operandErr("$divide", "division by zero")
	}
	return a / b, nil
}

func opModulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, operandErr("$modulo", "division by zero")
	}
	return math.Mod(a, b), nil
}
