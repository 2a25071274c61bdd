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

func TestSuggestOperator(t *testing.T) {
	names := []string{"$get", "$add", "$filter", "$concat", "$merge", "$pick", "$omit"}

	tests := []struct {
		name           string
		unknown        string
		wantSuggestion string
		wantSample     int
	}{
		{name: "one edit away", unknown: "$gett", wantSuggestion: "$get"},
		{name: "transposed", unknown: "$fitler", wantSuggestion: "$filter"},
		{name: "exact prefix", unknown: "$merg", wantSuggestion: "$merge"},
		{name: "nothing close", unknown: "$zzzzzzzzzz", wantSample: sampleSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, sample := suggestOperator(tt.unknown, names)
			assert.Equal(t, tt.wantSuggestion, suggestion)
			assert.Len(t, sample, tt.wantSample)
		})
	}
}

func TestSuggestOperator_ShortNameList(t *testing.T) {
	suggestion, sample := suggestOperator("$nope", []string{"$literal"})
	assert.Empty(t, suggestion)
	assert.Equal(t, []string{"$literal"}, sample)
}
