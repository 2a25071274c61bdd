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

// constOperator returns an operator that ignores its arguments and
// yields v, for observing which registration won a merge.
func constOperator(v any) Operator {
	return func(_, _ any, _ *Context) (any, error) {
		return v, nil
	}
}

func TestRegistryPrecedence(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		op   string
		want any
	}{
		{
			name: "base operator available",
			opts: Options{Base: Pack{"$x": constOperator("base")}},
			op:   "$x",
			want: "base",
		},
		{
			name: "pack overrides base",
			opts: Options{
				Base:  Pack{"$x": constOperator("base")},
				Packs: []Pack{{"$x": constOperator("pack")}},
			},
			op:   "$x",
			want: "pack",
		},
		{
			name: "later pack overrides earlier pack",
			opts: Options{
				Packs: []Pack{
					{"$x": constOperator("first")},
					{"$x": constOperator("second")},
				},
			},
			op:   "$x",
			want: "second",
		},
		{
			name: "custom overrides everything",
			opts: Options{
				Base:   Pack{"$x": constOperator("base")},
				Packs:  []Pack{{"$x": constOperator("pack")}},
				Custom: Pack{"$x": constOperator("custom")},
			},
			op:   "$x",
			want: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(tt.opts)
			out, err := eng.Apply(map[string]any{tt.op: nil}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRegistrySkipBase(t *testing.T) {
	eng := New(Options{
		Base:     Pack{"$x": constOperator("base")},
		SkipBase: true,
		Packs:    []Pack{{"$y": constOperator("pack")}},
	})

	out, err := eng.Apply(map[string]any{"$y": nil}, nil)
	require.NoError(t, err)
	assert.Equal(t, "pack", out)

	_, err = eng.Apply(map[string]any{"$x": nil}, nil)
	require.Error(t, err)
	var unknown *UnknownOperatorError
	assert.ErrorAs(t, err, &unknown)
}

func TestRegistryExclusion(t *testing.T) {
	eng := New(Options{
		Base:    Pack{"$x": constOperator("base"), "$y": constOperator("base")},
		Exclude: []string{"$x", "$never-registered"},
	})

	_, err := eng.Apply(map[string]any{"$x": nil}, nil)
	var unknown *UnknownOperatorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "$x", unknown.Operator)

	// Unknown exclusion names are ignored; the rest of the pack stands.
	out, err := eng.Apply(map[string]any{"$y": nil}, nil)
	require.NoError(t, err)
	assert.Equal(t, "base", out)
}

func TestRegistryExclusionBeatsEveryPack(t *testing.T) {
	eng := New(Options{
		Base:    Pack{"$x": constOperator("base")},
		Packs:   []Pack{{"$x": constOperator("pack")}},
		Custom:  Pack{"$x": constOperator("custom")},
		Exclude: []string{"$x"},
	})

	_, err := eng.Apply(map[string]any{"$x": nil}, nil)
	var unknown *UnknownOperatorError
	require.ErrorAs(t, err, &unknown)
	assert.NotContains(t, eng.ExpressionNames(), "$x")
}

func TestRegistryLiteralImmunity(t *testing.T) {
	t.Run("override is discarded", func(t *testing.T) {
		eng := New(Options{
			Custom: Pack{LiteralOperator: constOperator("hijacked")},
		})
		out, err := eng.Apply(map[string]any{LiteralOperator: map[string]any{"$x": 1.0}}, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"$x": 1.0}, out)
	})

	t.Run("exclusion is a no-op", func(t *testing.T) {
		eng := New(Options{Exclude: []string{LiteralOperator}})
		out, err := eng.Apply(map[string]any{LiteralOperator: "kept"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "kept", out)
	})
}

func TestExpressionNames(t *testing.T) {
	eng := New(Options{
		Base:  Pack{"$b": constOperator(nil), "$a": constOperator(nil)},
		Packs: []Pack{{"$p": constOperator(nil)}},
	})

	names := eng.ExpressionNames()
	assert.Equal(t, []string{"$a", "$b", "$p", LiteralOperator}, names)

	// The returned slice is a copy.
	names[0] = "mutated"
	assert.Equal(t, "$a", eng.ExpressionNames()[0])
}
