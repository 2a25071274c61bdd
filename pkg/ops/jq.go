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

	"github.com/itchyny/gojq"

	"github.com/tombee/jsonexpr/pkg/engine"
)

// JQ returns a pack with the $jq operator, which runs a jq program
// against the input data:
//
//	{"$jq": ".items | map(.price) | add"}
//
// A program producing no output yields null, a single value yields that
// value, and multiple values yield an array. Compiled programs are
// cached per pack instance.
func JQ() engine.Pack {
	j := &jqOperator{cache: make(map[string]*gojq.Code)}
	return engine.Pack{"$jq": j.evaluate}
}

type jqOperator struct {
	cache map[string]*gojq.Code
	mu    sync.RWMutex
}

func (j *jqOperator) evaluate(operand, input any, ctx *engine.Context) (any, error) {
	source, err := evalString(ctx, "$jq", operand, input)
	if err != nil {
		return nil, err
	}

	code, err := j.compile(source)
	if err != nil {
		return nil, operandErr("$jq", "invalid jq program %q: %s", source, err.Error())
	}

	iter := code.Run(input)
	var results []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if runErr, isErr := v.(error); isErr {
			return nil, operandErr("$jq", "jq evaluation failed: %s", runErr.Error())
		}
		results = append(results, v)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

func (j *jqOperator) compile(source string) (*gojq.Code, error) {
	j.mu.RLock()
	if code, ok := j.cache[source]; ok {
		j.mu.RUnlock()
		return code, nil
	}
	j.mu.RUnlock()

	query, err := gojq.Parse(source)
	if err != nil {
		return nil, err
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	j.cache[source] = code
	j.mu.Unlock()

	return code, nil
}
