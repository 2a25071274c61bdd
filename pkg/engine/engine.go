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

// Operator evaluates one expression node. It receives the node's
// operand, the current input data, and a Context for recursing into
// sub-expressions.
//
// Operators must be referentially transparent: the same operand and
// input always yield the same result or the same failure. The dual-mode
// evaluator re-runs a failing evaluation to recover path information,
// which is only sound when re-running reliably fails again. An operator
// that performs I/O or reads the clock breaks this contract; the engine
// detects the divergence and reports an IntegrityError.
type Operator func(operand, input any, ctx *Context) (any, error)

// Context is handed to every operator invocation.
type Context struct {
	// Apply evaluates a sub-tree against input. The optional steps
	// attribute the nested evaluation to path segments under the
	// current operator, for error reporting: a string extends the path
	// with a key, an int with an array index. An operator evaluating
	// one of several named sub-clauses passes several steps.
	Apply func(tree, input any, steps ...any) (any, error)

	// IsExpression reports whether v is an expression node whose
	// operator is registered in this engine.
	IsExpression func(v any) bool

	// IsWrappedLiteral reports whether v is a {"$literal": ...} wrapper.
	IsWrappedLiteral func(v any) bool
}

// Options configures an Engine. The zero value yields an engine with
// only the literal-escape operator registered; callers normally go
// through jsonexpr.New, which supplies the default base pack.
type Options struct {
	// Base is the default operator pack, merged first. jsonexpr.New
	// fills this in with ops.Base().
	Base Pack

	// SkipBase disables merging Base.
	SkipBase bool

	// Packs are merged after Base, in order. Later packs win.
	Packs []Pack

	// Custom is the final override mapping, merged last.
	Custom Pack

	// Exclude lists operator names removed after all merging. Unknown
	// names are silently ignored. LiteralOperator cannot be excluded.
	Exclude []string

	// Middleware wraps every operator invocation, first entry outermost.
	Middleware []Middleware
}

// Engine evaluates expression trees against input data. Its registry is
// assembled once at construction and immutable thereafter, so a single
// instance may serve concurrent Apply calls without locking.
type Engine struct {
	registry *registry
	invoke   invoker

	// optimisticCtx is the shared operator context for the optimistic
	// pass. It carries the bare recursive walk, so the fast path
	// allocates nothing per descent.
	optimisticCtx *Context
}

// New constructs an engine from opts.
func New(opts Options) *Engine {
	e := &Engine{
		registry: newRegistry(opts),
		invoke:   composeMiddleware(opts.Middleware),
	}
	e.optimisticCtx = e.contextFor(noTrace{})
	return e
}

// Apply evaluates tree against input and returns the resulting JSON
// value. Values follow the encoding/json dynamic forms: map[string]any,
// []any, string, float64, bool and nil.
//
// Evaluation runs in optimistic mode first, which skips all path
// bookkeeping. On failure the whole evaluation re-runs in exact mode
// solely to attribute the error to the failing node, yielding messages
// of the shape "[pipe[0].get] <cause>". If the exact re-run does not
// fail, some operator violated the purity contract and an
// IntegrityError is returned instead.
func (e *Engine) Apply(tree, input any) (any, error) {
	out, err := e.walk(tree, input, noTrace{})
	if err == nil {
		return out, nil
	}

	if _, exactErr := e.walk(tree, input, exactTrace{}); exactErr != nil {
		return nil, exactErr
	}
	return nil, &IntegrityError{Cause: err}
}

// IsExpression reports whether v is an expression node whose operator
// is registered in this engine. An expression-shaped mapping naming an
// unregistered operator is not an expression; the evaluator rejects it
// with an UnknownOperatorError rather than treating it as data.
func (e *Engine) IsExpression(v any) bool {
	name, _, ok := expressionEntry(v)
	if !ok {
		return false
	}
	_, registered := e.registry.lookup(name)
	return registered
}

// ExpressionNames returns every registered operator name in
// registration order, LiteralOperator last. The slice is a copy.
func (e *Engine) ExpressionNames() []string {
	names := make([]string, len(e.registry.names))
	copy(names, e.registry.names)
	return names
}

func (e *Engine) unknownOperator(name string) *UnknownOperatorError {
	suggestion, sample := suggestOperator(name, e.registry.names)
	return &UnknownOperatorError{
		Operator:   name,
		Suggestion: suggestion,
		Sample:     sample,
	}
}
