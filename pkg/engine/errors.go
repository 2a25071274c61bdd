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
	"fmt"
	"strings"
)

// pathCarrier is implemented by engine error types that record the
// evaluation path on the error itself. Annotation mutates and re-raises
// the same object so the concrete type survives errors.As, and the
// recorded path doubles as the "already annotated" marker that prevents
// double prefixing.
type pathCarrier interface {
	error
	setPath(path string)
	annotated() bool
}

// EvaluationError wraps a failure raised by an operator with the
// dotted/bracketed path of the expression node it crossed.
//
// Its message has the shape "[<path>] <underlying message>", for
// example "[pipe[0].get] path operand must be a string".
type EvaluationError struct {
	// Path locates the failing node from the root of the expression
	// tree, e.g. "pipe[0].get". Empty for a root-level failure.
	Path string

	// Cause is the underlying error raised by the operator.
	Cause error
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	if e.Path == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("[%s] %s", e.Path, e.Cause.Error())
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

func (e *EvaluationError) setPath(path string) {
	if e.Path == "" {
		e.Path = path
	}
}

func (e *EvaluationError) annotated() bool { return e.Path != "" }

// UnknownOperatorError reports an expression-shaped node whose sole key
// is not a registered operator. It carries a best-effort suggestion
// (minimum edit-distance match against the registered names) or, when
// no close match exists, a short sample of valid names.
type UnknownOperatorError struct {
	// Operator is the unregistered name as written, sigil included.
	Operator string

	// Path locates the node containing the unknown operator.
	Path string

	// Suggestion is the closest registered name, if one is close enough.
	Suggestion string

	// Sample holds a few registered names, shown when no suggestion exists.
	Sample []string
}

// Error implements the error interface.
func (e *UnknownOperatorError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "[%s] ", e.Path)
	}
	fmt.Fprintf(&b, "Unknown expression operator: %q", e.Operator)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	} else if len(e.Sample) > 0 {
		fmt.Fprintf(&b, " (available operators include: %s)", strings.Join(e.Sample, ", "))
	}
	return b.String()
}

func (e *UnknownOperatorError) setPath(path string) {
	if e.Path == "" {
		e.Path = path
	}
}

func (e *UnknownOperatorError) annotated() bool { return e.Path != "" }

// OperandError reports an operand that violates an operator's contract,
// such as wrong arity or wrong type. Operators raise it themselves; the
// evaluator only annotates it with a path.
type OperandError struct {
	// Operator is the operator that rejected the operand, sigil included.
	Operator string

	// Path locates the operator's expression node.
	Path string

	// Message is the human-readable error description.
	Message string

	// Suggestion provides actionable guidance for fixing the operand.
	Suggestion string
}

// Error implements the error interface.
func (e *OperandError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "[%s] ", e.Path)
	}
	fmt.Fprintf(&b, "%s: %s", e.Operator, e.Message)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (%s)", e.Suggestion)
	}
	return b.String()
}

func (e *OperandError) setPath(path string) {
	if e.Path == "" {
		e.Path = path
	}
}

func (e *OperandError) annotated() bool { return e.Path != "" }

// IntegrityError reports a divergence between the optimistic and exact
// evaluation passes: the optimistic pass failed but the exact re-run
// did not. That can only happen when an operator is non-deterministic
// or side-effecting, which violates the operator contract. It is always
// fatal and never recoverable by the engine.
type IntegrityError struct {
	// Cause is the error raised by the optimistic pass that the exact
	// pass failed to reproduce.
	Cause error
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf(
		"error mode failed to throw - is your expression deterministic? (optimistic pass failed with: %s)",
		e.Cause.Error(),
	)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *IntegrityError) Unwrap() error {
	return e.Cause
}

// ValidationError aggregates every problem found by a full validation
// pass over an expression tree.
type ValidationError struct {
	// Problems holds one message per offending location.
	Problems []string
}

// Error implements the error interface, joining all problems with newlines.
func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "\n")
}

// annotate records path on err exactly once.
//
// Engine error types carrying their own Path field are mutated in place
// so their type and identity survive; everything else is wrapped in a
// new EvaluationError. Errors that already carry a path pass through
// untouched, so a prefix appears exactly once however deep the failure
// crossed nested Apply calls.
func annotate(err error, path string) error {
	if pc, ok := err.(pathCarrier); ok {
		if !pc.annotated() {
			pc.setPath(path)
		}
		return err
	}
	return &EvaluationError{Path: path, Cause: err}
}
