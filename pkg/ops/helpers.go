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
	"fmt"

	"github.com/tombee/jsonexpr/pkg/engine"
)

// operandErr builds the OperandError raised on contract violations.
func operandErr(op, format string, args ...any) *engine.OperandError {
	return &engine.OperandError{
		Operator: op,
		Message:  fmt.Sprintf(format, args...),
	}
}

// evalArgs evaluates an operand that must be a list of expressions and
// returns the evaluated elements. arity < 0 accepts any length;
// otherwise the list must have exactly arity elements. Nested failures
// are attributed to their list index by the evaluator's own array
// recursion.
func evalArgs(ctx *engine.Context, op string, operand, input any, arity int) ([]any, error) {
	list, ok := operand.([]any)
	if !ok {
		return nil, operandErr(op, "operand must be an array, got %s", typeName(operand))
	}
	if arity >= 0 && len(list) != arity {
		return nil, operandErr(op, "operand must have exactly %d elements, got %d", arity, len(list))
	}
	out, err := ctx.Apply(list, input)
	if err != nil {
		return nil, err
	}
	return out.([]any), nil
}

// evalString evaluates operand and requires a string result.
func evalString(ctx *engine.Context, op string, operand, input any, steps ...any) (string, error) {
	v, err := ctx.Apply(operand, input, steps...)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", operandErr(op, "operand must evaluate to a string, got %s", typeName(v))
	}
	return s, nil
}

// numberOf coerces JSON and Go numeric forms to float64. encoding/json
// produces float64, but embedded engines (gojq in particular) hand back
// int for whole numbers.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// requireNumber is numberOf with an OperandError on failure.
func requireNumber(op string, v any) (float64, error) {
	n, ok := numberOf(v)
	if !ok {
		return 0, operandErr(op, "expected a number, got %s", typeName(v))
	}
	return n, nil
}

// truthy implements the engine's truthiness rules: null, false, zero,
// the empty string and empty collections are falsy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		if n, ok := numberOf(v); ok {
			return n != 0
		}
		return true
	}
}

// equal compares two JSON values structurally, with numeric coercion so
// gojq's int results compare equal to encoding/json's float64.
func equal(a, b any) bool {
	if na, ok := numberOf(a); ok {
		nb, ok := numberOf(b)
		return ok && na == nb
	}

	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equal(av[i], bv[i]) {
				return false
			}
		}
		return true

	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, exists := bv[k]
			if !exists || !equal(v, bval) {
				return false
			}
		}
		return true

	default:
		return a == b
	}
}

// typeName names a JSON value's type for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		if _, ok := numberOf(v); ok {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}
