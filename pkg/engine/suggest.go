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

import "github.com/agext/levenshtein"

// maxSuggestionDistance bounds how far a registered name may be from
// the unknown one and still be offered as a suggestion.
const maxSuggestionDistance = 3

// sampleSize is how many registered names are listed when no name is
// close enough to suggest.
const sampleSize = 5

// suggestOperator finds the registered name closest to the unknown one.
// When nothing is within maxSuggestionDistance it returns a short
// sample of registered names instead.
func suggestOperator(unknown string, names []string) (suggestion string, sample []string) {
	best := maxSuggestionDistance + 1
	for _, name := range names {
		if dist := levenshtein.Distance(unknown, name, nil); dist < best {
			best = dist
			suggestion = name
		}
	}
	if suggestion != "" {
		return suggestion, nil
	}

	n := len(names)
	if n > sampleSize {
		n = sampleSize
	}
	sample = make([]string, n)
	copy(sample, names[:n])
	return "", sample
}
