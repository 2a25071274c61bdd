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

// Package pathutil resolves dotted and bracketed property paths into
// nested JSON values.
//
// Paths address values produced by encoding/json unmarshalling
// (map[string]any, []any, scalars):
//
//	user.name
//	items[0].price
//	headers["content-type"]
//	items[-1]            // negative indices count from the end
//
// Get is permissive: a missing key, out-of-range index or traversal
// through a scalar yields nil. GetStrict turns each of those into a
// typed error. GetWild additionally expands "*" or "[*]" segments over
// array elements; the plain accessors reject wildcard segments, so
// expansion is strictly opt-in.
package pathutil

import (
	"fmt"
	"strconv"
	"strings"
)

type segmentKind int

const (
	kindKey segmentKind = iota
	kindIndex
	kindWildcard
)

type segment struct {
	kind  segmentKind
	key   string
	index int
}

func (s segment) String() string {
	switch s.kind {
	case kindIndex:
		return fmt.Sprintf("[%d]", s.index)
	case kindWildcard:
		return "[*]"
	default:
		return s.key
	}
}

// Get resolves path against root. Missing keys, out-of-range indices
// and traversal through scalars all yield nil rather than an error; the
// only error conditions are a malformed path and wildcard segments,
// which require GetWild. An empty path returns root itself.
func Get(root any, path string) (any, error) {
	segments, err := parse(path)
	if err != nil {
		return nil, err
	}
	return resolve(root, segments, false)
}

// GetStrict resolves path against root, returning a typed error when a
// key is missing, an index is out of range, or the path traverses a
// value of the wrong type.
func GetStrict(root any, path string) (any, error) {
	segments, err := parse(path)
	if err != nil {
		return nil, err
	}
	return resolve(root, segments, true)
}

// GetWild resolves path against root with wildcard expansion: each "*"
// or "[*]" segment fans out over the elements of an array at that
// position. The result is the flat list of all matches; elements that
// do not resolve are skipped. A path without wildcards yields a
// single-element list (or an empty one when nothing matched).
func GetWild(root any, path string) ([]any, error) {
	segments, err := parse(path)
	if err != nil {
		return nil, err
	}
	var out []any
	expand(root, segments, &out)
	return out, nil
}

func resolve(node any, segments []segment, strict bool) (any, error) {
	for _, seg := range segments {
		switch seg.kind {
		case kindWildcard:
			return nil, &Error{
				Code:    ErrInvalidPath,
				Message: "wildcard segments are only supported by GetWild",
			}

		case kindKey:
			m, ok := node.(map[string]any)
			if !ok {
				if strict {
					return nil, &Error{
						Code:    ErrTypeMismatch,
						Message: fmt.Sprintf("cannot access key %q on %s", seg.key, typeName(node)),
					}
				}
				return nil, nil
			}
			v, exists := m[seg.key]
			if !exists {
				if strict {
					return nil, &Error{
						Code:    ErrKeyNotFound,
						Message: fmt.Sprintf("key %q not found", seg.key),
					}
				}
				return nil, nil
			}
			node = v

		case kindIndex:
			arr, ok := node.([]any)
			if !ok {
				if strict {
					return nil, &Error{
						Code:    ErrTypeMismatch,
						Message: fmt.Sprintf("cannot index %s", typeName(node)),
					}
				}
				return nil, nil
			}
			i := seg.index
			if i < 0 {
				i += len(arr)
			}
			if i < 0 || i >= len(arr) {
				if strict {
					return nil, &Error{
						Code:    ErrIndexOutOfBounds,
						Message: fmt.Sprintf("index %d out of range (length %d)", seg.index, len(arr)),
					}
				}
				return nil, nil
			}
			node = arr[i]
		}
	}
	return node, nil
}

func expand(node any, segments []segment, out *[]any) {
	if len(segments) == 0 {
		*out = append(*out, node)
		return
	}

	seg := segments[0]
	rest := segments[1:]

	switch seg.kind {
	case kindWildcard:
		arr, ok := node.([]any)
		if !ok {
			return
		}
		for _, elem := range arr {
			expand(elem, rest, out)
		}

	case kindKey:
		m, ok := node.(map[string]any)
		if !ok {
			return
		}
		v, exists := m[seg.key]
		if !exists {
			return
		}
		expand(v, rest, out)

	case kindIndex:
		arr, ok := node.([]any)
		if !ok {
			return
		}
		i := seg.index
		if i < 0 {
			i += len(arr)
		}
		if i < 0 || i >= len(arr) {
			return
		}
		expand(arr[i], rest, out)
	}
}

// parse splits a path into segments. The grammar is deliberately small:
// dot-separated keys, bracketed integer indices, bracketed quoted keys
// (single or double quotes) and the wildcard forms "*" and "[*]".
func parse(path string) ([]segment, error) {
	if path == "" {
		return nil, nil
	}

	var segments []segment
	i := 0
	expectKey := true

	for i < len(path) {
		switch {
		case path[i] == '.':
			if expectKey {
				return nil, &Error{
					Code:    ErrInvalidPath,
					Message: fmt.Sprintf("unexpected %q at position %d", ".", i),
				}
			}
			i++
			expectKey = true

		case path[i] == '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, &Error{
					Code:    ErrInvalidPath,
					Message: fmt.Sprintf("unterminated bracket at position %d", i),
				}
			}
			inner := path[i+1 : i+end]
			seg, err := parseBracket(inner, i)
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
			i += end + 1
			expectKey = false

		default:
			end := i
			for end < len(path) && path[end] != '.' && path[end] != '[' {
				end++
			}
			key := path[i:end]
			if key == "*" {
				segments = append(segments, segment{kind: kindWildcard})
			} else {
				segments = append(segments, segment{kind: kindKey, key: key})
			}
			i = end
			expectKey = false
		}
	}

	if expectKey {
		return nil, &Error{
			Code:    ErrInvalidPath,
			Message: "path ends with a dangling separator",
		}
	}
	return segments, nil
}

func parseBracket(inner string, pos int) (segment, error) {
	switch {
	case inner == "*":
		return segment{kind: kindWildcard}, nil

	case len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\''):
		quote := inner[0]
		if inner[len(inner)-1] != quote {
			return segment{}, &Error{
				Code:    ErrInvalidPath,
				Message: fmt.Sprintf("unterminated quote in bracket at position %d", pos),
			}
		}
		return segment{kind: kindKey, key: inner[1 : len(inner)-1]}, nil

	default:
		idx, err := strconv.Atoi(inner)
		if err != nil {
			return segment{}, &Error{
				Code:    ErrInvalidPath,
				Message: fmt.Sprintf("invalid bracket segment %q at position %d", inner, pos),
			}
		}
		return segment{kind: kindIndex, index: idx}, nil
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
