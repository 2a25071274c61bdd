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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.False(t, cfg.AddSource)
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantLevel  string
		wantFormat Format
		wantSource bool
	}{
		{
			name:       "defaults",
			env:        map[string]string{},
			wantLevel:  "info",
			wantFormat: FormatJSON,
		},
		{
			name:       "debug flag wins",
			env:        map[string]string{"JSONEXPR_DEBUG": "1", "LOG_LEVEL": "error"},
			wantLevel:  "debug",
			wantFormat: FormatJSON,
			wantSource: true,
		},
		{
			name:       "app-specific level beats generic",
			env:        map[string]string{"JSONEXPR_LOG_LEVEL": "warn", "LOG_LEVEL": "error"},
			wantLevel:  "warn",
			wantFormat: FormatJSON,
		},
		{
			name:       "generic level",
			env:        map[string]string{"LOG_LEVEL": "ERROR"},
			wantLevel:  "error",
			wantFormat: FormatJSON,
		},
		{
			name:       "text format and source",
			env:        map[string]string{"LOG_FORMAT": "text", "LOG_SOURCE": "1"},
			wantLevel:  "info",
			wantFormat: FormatText,
			wantSource: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"JSONEXPR_DEBUG", "JSONEXPR_LOG_LEVEL", "LOG_LEVEL", "LOG_FORMAT", "LOG_SOURCE"} {
				t.Setenv(key, tt.env[key])
			}
			cfg := FromEnv()
			assert.Equal(t, tt.wantLevel, cfg.Level)
			assert.Equal(t, tt.wantFormat, cfg.Format)
			assert.Equal(t, tt.wantSource, cfg.AddSource)
		})
	}
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "debug", Format: FormatJSON, Output: &buf})

	logger.Debug("hello", slog.String(OperatorKey, "$get"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "$get", entry[OperatorKey])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Format: FormatJSON, Output: &buf})

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestWithComponentAndRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	WithRunID(WithComponent(logger, "cli"), "run-123").Info("evaluating")

	out := buf.String()
	assert.Contains(t, out, `"component":"cli"`)
	assert.Contains(t, out, `"run_id":"run-123"`)
}
