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
	"time"

	"github.com/itchyny/timefmt-go"

	"github.com/tombee/jsonexpr/pkg/engine"
)

// Temporal returns the temporal operator pack. Timestamps are carried
// as RFC 3339 strings or epoch milliseconds; there is deliberately no
// $now, because every operator must be pure and reading the clock
// would break the evaluator's re-run strategy.
func Temporal() engine.Pack {
	return engine.Pack{
		"$parseTime":  opParseTime,
		"$formatTime": opFormatTime,
		"$timeDiff":   opTimeDiff,
	}
}

// opParseTime parses a timestamp string into epoch milliseconds.
// Operand: a string (RFC 3339) or [value, strftimeFormat].
func opParseTime(operand, input any, ctx *engine.Context) (any, error) {
	v, err := ctx.Apply(operand, input)
	if err != nil {
		return nil, err
	}

	value, format := "", ""
	switch arg := v.(type) {
	case string:
		value = arg
	case []any:
		if len(arg) != 2 {
			return nil, operandErr("$parseTime", "operand must be a string or [value, format]")
		}
		var ok bool
		if value, ok = arg[0].(string); !ok {
			return nil, operandErr("$parseTime", "value must be a string, got %s", typeName(arg[0]))
		}
		if format, ok = arg[1].(string); !ok {
			return nil, operandErr("$parseTime", "format must be a string, got %s", typeName(arg[1]))
		}
	default:
		return nil, operandErr("$parseTime", "operand must be a string or [value, format], got %s", typeName(v))
	}

	t, err := parseTimestamp(value, format)
	if err != nil {
		return nil, operandErr("$parseTime", "cannot parse %q: %s", value, err.Error())
	}
	return float64(t.UnixMilli()), nil
}

// opFormatTime renders epoch milliseconds as a timestamp string.
// Operand: a number (RFC 3339 output) or [millis, strftimeFormat].
func opFormatTime(operand, input any, ctx *engine.Context) (any, error) {
	v, err := ctx.Apply(operand, input)
	if err != nil {
		return nil, err
	}

	var raw any = v
	format := ""
	if pair, ok := v.([]any); ok {
		if len(pair) != 2 {
			return nil, operandErr("$formatTime", "operand must be a number or [millis, format]")
		}
		raw = pair[0]
		if format, ok = pair[1].(string); !ok {
			return nil, operandErr("$formatTime", "format must be a string, got %s", typeName(pair[1]))
		}
	}

	millis, ok := numberOf(raw)
	if !ok {
		return nil, operandErr("$formatTime", "millis must be a number, got %s", typeName(raw))
	}
	t := time.UnixMilli(int64(millis)).UTC()
	if format == "" {
		return t.Format(time.RFC3339), nil
	}
	return timefmt.Format(t, format), nil
}

// opTimeDiff returns the difference a-b in milliseconds. Operand:
// [a, b], each an RFC 3339 string or epoch milliseconds.
func opTimeDiff(operand, input any, ctx *engine.Context) (any, error) {
	args, err := evalArgs(ctx, "$timeDiff", operand, input, 2)
	if err != nil {
		return nil, err
	}
	a, err := timestampArg("$timeDiff", args[0])
	if err != nil {
		return nil, err
	}
	b, err := timestampArg("$timeDiff", args[1])
	if err != nil {
		return nil, err
	}
	return float64(a.Sub(b).Milliseconds()), nil
}

func parseTimestamp(value, format string) (time.Time, error) {
	if format == "" {
		return time.Parse(time.RFC3339, value)
	}
	return timefmt.Parse(value, format)
}

func timestampArg(op string, v any) (time.Time, error) {
	switch arg := v.(type) {
	case string:
		t, err := time.Parse(time.RFC3339, arg)
		if err != nil {
			return time.Time{}, operandErr(op, "cannot parse %q: %s", arg, err.Error())
		}
		return t, nil
	default:
		millis, ok := numberOf(v)
		if !ok {
			return time.Time{}, operandErr(op, "timestamp must be a string or number, got %s", typeName(v))
		}
		return time.UnixMilli(int64(millis)).UTC(), nil
	}
}
