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

package pathutil

import "fmt"

// ErrorCode identifies the category of a path resolution error.
type ErrorCode int

const (
	// ErrInvalidPath indicates a malformed path expression.
	ErrInvalidPath ErrorCode = iota + 1
	// ErrKeyNotFound indicates a missing object key (strict mode).
	ErrKeyNotFound
	// ErrIndexOutOfBounds indicates an array index out of range (strict mode).
	ErrIndexOutOfBounds
	// ErrTypeMismatch indicates traversal through a value of the wrong type (strict mode).
	ErrTypeMismatch
)

// Error is the structured error type returned by all pathutil
// operations. Use Code to distinguish categories programmatically.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode
	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("path: %s", e.Message)
}

// IsNotFound reports whether err indicates a missing key or an
// out-of-range index from a strict lookup.
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrKeyNotFound || e.Code == ErrIndexOutOfBounds
	}
	return false
}
