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

// Package jsonexpr evaluates tree-shaped JSON documents that embed
// operator calls, so filters, projections and computed conditions can
// be expressed as data rather than code.
//
//	eng := jsonexpr.New(jsonexpr.Options{})
//	out, err := eng.Apply(
//		map[string]any{"$add": []any{map[string]any{"$get": "x"}, 5.0}},
//		map[string]any{"x": 10.0},
//	)
//	// out == 15.0
//
// This package is the convenience surface: New wires the default
// operator pack (ops.Base) into an engine.Engine. Callers needing full
// control over registry assembly use pkg/engine directly.
package jsonexpr

import (
	"github.com/tombee/jsonexpr/pkg/engine"
	"github.com/tombee/jsonexpr/pkg/ops"
)

// Re-exported engine types, so common usage needs a single import.
type (
	// Engine evaluates expression trees. See engine.Engine.
	Engine = engine.Engine
	// Options configures an Engine. See engine.Options.
	Options = engine.Options
	// Pack is an operator set keyed by name. See engine.Pack.
	Pack = engine.Pack
	// Operator is one operator implementation. See engine.Operator.
	Operator = engine.Operator
	// Middleware wraps operator invocations. See engine.Middleware.
	Middleware = engine.Middleware
)

// New constructs an engine with the default base pack merged in first,
// unless opts.SkipBase is set. Any opts.Base supplied by the caller
// takes precedence over the default.
func New(opts Options) *Engine {
	if opts.Base == nil {
		opts.Base = ops.Base()
	}
	return engine.New(opts)
}
