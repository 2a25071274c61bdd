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
	"regexp"
	"strings"

	"github.com/tombee/jsonexpr/pkg/engine"
)

// opConcat joins any number of evaluated string arguments.
func opConcat(operand, input any, ctx *engine.Context) (any, error) {
	args, err := evalArgs(ctx, "$concat", operand, input, -1)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, arg := range args {
		s, ok := arg.(string)
		if !ok {
			return nil, operandErr("$concat", "all arguments must be strings, got %s", typeName(arg))
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// unaryStringOp builds an operator transforming a single string operand,
// e.g. $upper and $trim.
func unaryStringOp(name string, apply func(s string) any) engine.Operator {
	return func(operand, input any, ctx *engine.Context) (any, error) {
		v, err := ctx.Apply(operand, input)
		if err != nil {
			return nil, err
		}
		s, ok := v.(string)
		if !ok {
			return nil, operandErr(name, "operand must evaluate to a string, got %s", typeName(v))
		}
		return apply(s), nil
	}
}

// binaryStringOp builds an operator over exactly [a, b] strings,
// e.g. $startsWith and $split.
func binaryStringOp(name string, apply func(a, b string) (any, error)) engine.Operator {
	return func(operand, input any, ctx *engine.Context) (any, error) {
		args, err := evalArgs(ctx, name, operand, input, 2)
		if err != nil {
			return nil, err
		}
		a, ok := args[0].(string)
		if !ok {
			return nil, operandErr(name, "first argument must be a string, got %s", typeName(args[0]))
		}
		b, ok := args[1].(string)
		if !ok {
			return nil, operandErr(name, "second argument must be a string, got %s", typeName(args[1]))
		}
		return apply(a, b)
	}
}

func opSplit(s, sep string) (any, error) {
	parts := strings.Split(s, sep)
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out, nil
}

// opJoin joins [array, separator] into a single string.
func opJoin(operand, input any, ctx *engine.Context) (any, error) {
	args, err := evalArgs(ctx, "$join", operand, input, 2)
	if err != nil {
		return nil, err
	}
	arr, ok := args[0].([]any)
	if !ok {
		return nil, operandErr("$join", "first argument must be an array, got %s", typeName(args[0]))
	}
	sep, ok := args[1].(string)
	if !ok {
		return nil, operandErr("$join", "second argument must be a string, got %s", typeName(args[1]))
	}
	parts := make([]string, len(arr))
	for i, elem := range arr {
		s, ok := elem.(string)
		if !ok {
			return nil, operandErr("$join", "array element %d is not a string", i)
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// opMatches tests [value, pattern] against a Go regular expression.
func opMatches(s, pattern string) (any, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, operandErr("$matches", "invalid pattern %q: %s", pattern, err.Error())
	}
	return re.MatchString(s), nil
}
