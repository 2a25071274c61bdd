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
	"github.com/stretchr/testify/require"
)

func TestValidateExpression(t *testing.T) {
	eng := testEngine(t)

	tests := []struct {
		name string
		tree string
		want []string
	}{
		{
			name: "valid tree",
			tree: `{"$pipe": [{"$get": "x"}, {"$add": [1, 2]}]}`,
			want: nil,
		},
		{
			name: "single unknown at root",
			tree: `{"$nope": 1}`,
			want: []string{`Unknown expression operator: "$nope"`},
		},
		{
			name: "literal content is not checked",
			tree: `{"$literal": {"$nope": 1}}`,
			want: nil,
		},
		{
			name: "operand of unknown operator is not checked",
			tree: `{"$nope": {"$also-wrong": 1}}`,
			want: []string{`Unknown expression operator: "$nope"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := eng.ValidateExpression(j(t, tt.tree))
			require.Len(t, problems, len(tt.want))
			for i, want := range tt.want {
				assert.Contains(t, problems[i], want)
			}
		})
	}
}

func TestValidateExpression_CollectsAllProblems(t *testing.T) {
	eng := testEngine(t)

	tree := j(t, `{
		"$pipe": [
			{"$first-bad": 1},
			{"$get": "x"},
			{"$second-bad": 2}
		]
	}`)

	problems := eng.ValidateExpression(tree)
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0], `[pipe[0]] Unknown expression operator: "$first-bad"`)
	assert.Contains(t, problems[1], `[pipe[2]] Unknown expression operator: "$second-bad"`)
}

func TestValidateExpression_NoExecution(t *testing.T) {
	calls := 0
	eng := New(Options{
		Base: Pack{
			"$count": func(_, _ any, _ *Context) (any, error) {
				calls++
				return nil, nil
			},
		},
	})

	problems := eng.ValidateExpression(j(t, `{"$count": {"$count": null}}`))
	assert.Empty(t, problems)
	assert.Zero(t, calls)
}

func TestEnsureValidExpression(t *testing.T) {
	eng := testEngine(t)

	require.NoError(t, eng.EnsureValidExpression(j(t, `{"$get": "x"}`)))

	err := eng.EnsureValidExpression(j(t, `[{"$a-bad": 1}, {"$b-bad": 2}]`))
	require.Error(t, err)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Len(t, validation.Problems, 2)
	assert.Contains(t, err.Error(), "\n")
}
