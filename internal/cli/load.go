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

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadDocument reads a JSON or YAML document from path, or from stdin
// when path is "-". YAML is selected by the .yaml/.yml extension and
// decoded into the same dynamic forms encoding/json produces, so the
// engine sees map[string]any/[]any/float64 regardless of source format.
func loadDocument(path string, stdin io.Reader) (any, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", describeSource(path), err)
	}

	if isYAMLPath(path) {
		return decodeYAML(data, path)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s as JSON: %w", describeSource(path), err)
	}
	return doc, nil
}

func decodeYAML(data []byte, path string) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s as YAML: %w", describeSource(path), err)
	}

	// Round-trip through encoding/json to normalize yaml.v3's
	// map[string]any/int values into the engine's dynamic forms
	// (float64 numbers, no int surprises).
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("document %s is not representable as JSON: %w", describeSource(path), err)
	}
	var out any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", describeSource(path), err)
	}
	return out, nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(path)
	return strings.HasSuffix(ext, ".yaml") || strings.HasSuffix(ext, ".yml")
}

func describeSource(path string) string {
	if path == "-" {
		return "stdin"
	}
	return fmt.Sprintf("%q", path)
}
