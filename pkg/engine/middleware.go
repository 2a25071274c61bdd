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
	"log/slog"
	"time"
)

// Invocation describes one operator call as seen by middleware.
type Invocation struct {
	// Operator is the operator name being invoked, sigil included.
	Operator string

	// Path locates the expression node, e.g. "pipe[0].get". It is only
	// populated during the exact evaluation pass; the optimistic pass
	// skips path bookkeeping and leaves it empty.
	Path string

	// Operand is the value paired with the operator's key.
	Operand any

	// Input is the current input data.
	Input any
}

// Next continues an intercepted invocation with possibly transformed
// operand and input.
type Next func(operand, input any) (any, error)

// Middleware wraps an operator invocation. It may observe the call,
// rewrite the operand or input before calling next, short-circuit by
// returning without calling next, or catch and transform an error
// returned by next.
type Middleware func(inv Invocation, next Next) (any, error)

// invoker is the composed middleware chain. nil means no middleware is
// configured and operators are called directly, with zero overhead.
type invoker func(inv Invocation, final Next) (any, error)

// composeMiddleware folds mws right-to-left into a single chain so the
// first-listed middleware is the outermost wrapper: it observes the
// call first and completes last.
func composeMiddleware(mws []Middleware) invoker {
	if len(mws) == 0 {
		return nil
	}
	return func(inv Invocation, final Next) (any, error) {
		next := final
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			inner := next
			next = func(operand, input any) (any, error) {
				call := inv
				call.Operand = operand
				call.Input = input
				return mw(call, inner)
			}
		}
		return next(inv.Operand, inv.Input)
	}
}

// LoggingMiddleware returns a middleware that logs every operator
// invocation with its duration. Successful calls log at debug level,
// failures at error level. The engine itself stays silent; callers opt
// in by listing this in Options.Middleware.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(inv Invocation, next Next) (any, error) {
		start := time.Now()
		out, err := next(inv.Operand, inv.Input)

		attrs := []any{
			"event", "operator_call",
			"operator", inv.Operator,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if inv.Path != "" {
			attrs = append(attrs, "path", inv.Path)
		}

		if err != nil {
			attrs = append(attrs, "error", err.Error())
			logger.Error("operator failed", attrs...)
			return nil, err
		}
		logger.Debug("operator evaluated", attrs...)
		return out, nil
	}
}
