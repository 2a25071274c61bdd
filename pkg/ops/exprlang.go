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
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tombee/jsonexpr/pkg/engine"
)

// Expr returns a pack with the $expr operator, which evaluates an
// expr-lang source string against the input data. The operand is the
// source; the input is exposed as "input", and when the input is an
// object its keys are additionally exposed as top-level identifiers:
//
//	{"$expr": "x * 2 + input.y"}  with input {"x": 10, "y": 1}  ->  21
//
// Compiled programs are cached per pack instance. Caching compilation
// is safe under the purity contract: it memoizes translation, never
// evaluation.
func Expr() engine.Pack {
	e := &exprOperator{cache: make(map[string]*vm.Program)}
	return engine.Pack{"$expr": e.evaluate}
}

type exprOperator struct {
	cache map[string]*vm.Program
	mu    sync.RWMutex
}

func (e *exprOperator) evaluate(operand, input any, ctx *engine.Context) (any, error) {
	source, err := evalString(ctx, "$expr", operand, input)
	if err != nil {
		return nil, err
	}

	program, err := e.compile(source)
	if err != nil {
		return nil, operandErr("$expr", "failed to compile %q: %s", source, err.Error())
	}

	env := map[string]any{"input": input}
	if m, ok := input.(map[string]any); ok {
		for k, v := range m {
			if k != "input" {
				env[k] = v
			}
		}
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, operandErr("$expr", "evaluation failed: %s", err.Error())
	}
	return out, nil
}

func (e *exprOperator) compile(source string) (*vm.Program, error) {
	e.mu.RLock()
	if prog, ok := e.cache[source]; ok {
		e.mu.RUnlock()
		return prog, nil
	}
	e.mu.RUnlock()

	prog, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[source] = prog
	e.mu.Unlock()

	return prog, nil
}
