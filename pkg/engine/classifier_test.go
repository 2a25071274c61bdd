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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeExpression(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "sigil key", v: map[string]any{"$get": "x"}, want: true},
		{name: "unknown sigil key still looks like one", v: map[string]any{"$whatever": 1.0}, want: true},
		{name: "literal wrapper", v: map[string]any{"$literal": 1.0}, want: true},
		{name: "no sigil", v: map[string]any{"get": "x"}, want: false},
		{name: "two keys", v: map[string]any{"$get": "x", "$add": "y"}, want: false},
		{name: "empty mapping", v: map[string]any{}, want: false},
		{name: "array", v: []any{map[string]any{"$get": "x"}}, want: false},
		{name: "string with sigil", v: "$get", want: false},
		{name: "nil", v: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeExpression(tt.v))
		})
	}
}

func TestIsWrappedLiteral(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "literal wrapper", v: map[string]any{"$literal": map[string]any{"$x": 1.0}}, want: true},
		{name: "literal of nil", v: map[string]any{"$literal": nil}, want: true},
		{name: "other operator", v: map[string]any{"$get": "x"}, want: false},
		{name: "extra key", v: map[string]any{"$literal": 1.0, "note": "x"}, want: false},
		{name: "scalar", v: "literal", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWrappedLiteral(tt.v))
		})
	}
}
