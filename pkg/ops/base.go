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

// Package ops provides the operator packs for the expression engine.
//
// Every operator is a pure function of (operand, input): same inputs,
// same result or same failure. That contract is what lets the engine
// re-run a failing evaluation to reconstruct error paths, and it is why
// there is no $now, no $random and no I/O anywhere in these packs.
//
// Base covers value access, logic, comparison, arithmetic, string,
// array and object operators. Temporal, Expr and JQ are opt-in packs;
// the latter two embed existing expression engines (expr-lang and jq)
// behind single operators.
package ops

import (
	"math"
	"strings"

	"github.com/tombee/jsonexpr/pkg/engine"
)

// Base returns the default operator pack.
func Base() engine.Pack {
	return engine.Pack{
		// value access & flow
		"$value":   opValue,
		"$get":     opGet,
		"$pipe":    opPipe,
		"$default": opDefault,
		"$type":    opType,
		"$isNull":  opIsNull,

		// logic & comparison
		"$and":    opAnd,
		"$or":     opOr,
		"$not":    opNot,
		"$if":     opIf,
		"$switch": opSwitch,
		"$eq":     opEq,
		"$ne":     opNe,
		"$gt":     compareOp("$gt", func(a, b float64) bool { return a > b }),
		"$gte":    compareOp("$gte", func(a, b float64) bool { return a >= b }),
		"$lt":     compareOp("$lt", func(a, b float64) bool { return a < b }),
		"$lte":    compareOp("$lte", func(a, b float64) bool { return a <= b }),

		// arithmetic
		"$add":      variadicNumericOp("$add", 0, func(acc, n float64) float64 { return acc + n }),
		"$multiply": variadicNumericOp("$multiply", 1, func(acc, n float64) float64 { return acc * n }),
		"$subtract": binaryNumericOp("$subtract", func(a, b float64) (float64, error) { return a - b, nil }),
		"$divide":   binaryNumericOp("$divide", opDivide),
		"$modulo":   binaryNumericOp("$modulo", opModulo),
		"$min":      extremumOp("$min", math.Min),
		"$max":      extremumOp("$max", math.Max),
		"$abs":      unaryNumericOp("$abs", math.Abs),
		"$round":    unaryNumericOp("$round", math.Round),
		"$floor":    unaryNumericOp("$floor", math.Floor),
		"$ceil":     unaryNumericOp("$ceil", math.Ceil),

		// string
		"$concat":       opConcat,
		"$upper":        unaryStringOp("$upper", func(s string) any { return strings.ToUpper(s) }),
		"$lower":        unaryStringOp("$lower", func(s string) any { return strings.ToLower(s) }),
		"$trim":         unaryStringOp("$trim", func(s string) any { return strings.TrimSpace(s) }),
		"$stringLength": unaryStringOp("$stringLength", func(s string) any { return float64(len([]rune(s))) }),
		"$split":        binaryStringOp("$split", opSplit),
		"$join":         opJoin,
		"$startsWith":   binaryStringOp("$startsWith", func(s, prefix string) (any, error) { return strings.HasPrefix(s, prefix), nil }),
		"$endsWith":     binaryStringOp("$endsWith", func(s, suffix string) (any, error) { return strings.HasSuffix(s, suffix), nil }),
		"$contains":     binaryStringOp("$contains", func(s, sub string) (any, error) { return strings.Contains(s, sub), nil }),
		"$matches":      binaryStringOp("$matches", opMatches),

		// array
		"$map":         opMap,
		"$filter":      opFilter,
		"$find":        opFind,
		"$some":        opSome,
		"$every":       opEvery,
		"$arrayLength": opArrayLength,
		"$in":          opIn,

		// object
		"$keys":   opKeys,
		"$values": opValues,
		"$merge":  opMerge,
		"$pick":   keySelection("$pick", true),
		"$omit":   keySelection("$omit", false),
	}
}
