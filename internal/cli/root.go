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

// Package cli implements the jsonexpr command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root Cobra command for jsonexpr.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonexpr",
		Short: "jsonexpr - declarative JSON expression engine",
		Long: `jsonexpr evaluates tree-shaped JSON documents that embed operator calls
against a piece of JSON input data. Expressions are plain data: a mapping
with a single $-prefixed key names an operator, its value is the operand.

Expression and input documents may be JSON or YAML; YAML is detected by
the .yaml/.yml file extension.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	cmd.AddCommand(newEvalCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newOpsCommand())
	cmd.AddCommand(newSchemaCommand())

	return cmd
}
