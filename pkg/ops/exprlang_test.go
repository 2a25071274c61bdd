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

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/jsonexpr/pkg/ops"
)

func TestExprPack(t *testing.T) {
	eng := newEngine(t, ops.Expr())

	tests := []struct {
		name  string
		tree  string
		input string
		want  any
	}{
		{
			name:  "arithmetic over input keys",
			tree:  `{"$expr": "x * 2 + y"}`,
			input: `{"x": 10, "y": 1}`,
			want:  21,
		},
		{
			name:  "whole input as identifier",
			tree:  `{"$expr": "input.user.name"}`,
			input: `{"user": {"name": "Ada"}}`,
			want:  "Ada",
		},
		{
			name:  "non-object input via input identifier",
			tree:  `{"$expr": "len(input)"}`,
			input: `[1, 2, 3]`,
			want:  3,
		},
		{
			name:  "string functions",
			tree:  `{"$expr": "upper(name)"}`,
			input: `{"name": "ada"}`,
			want:  "ADA",
		},
		{
			name:  "undefined variable is nil",
			tree:  `{"$expr": "missing == nil"}`,
			input: `{}`,
			want:  true,
		},
		{
			name:  "computed source string",
			tree:  `{"$expr": {"$concat": ["1 + ", "2"]}}`,
			input: `{}`,
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := apply(t, eng, tt.tree, tt.input)
			require.NoError(t, err)
			assert.EqualValues(t, tt.want, out)
		})
	}
}

func TestExprPackErrors(t *testing.T) {
	eng := newEngine(t, ops.Expr())

	_, err := apply(t, eng, `{"$expr": "1 +"}`, `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile")

	_, err = apply(t, eng, `{"$expr": 42}`, `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$expr: operand must evaluate to a string")
}

func TestExprPackResultsComposable(t *testing.T) {
	eng := newEngine(t, ops.Expr())

	// expr-lang returns int for whole numbers; the numeric operators
	// must accept that alongside encoding/json's float64.
	out, err := apply(t, eng, `{"$add": [{"$expr": "2 + 3"}, 1.5]}`, `{}`)
	require.NoError(t, err)
	assert.Equal(t, 6.5, out)
}
