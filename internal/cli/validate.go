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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tombee/jsonexpr/internal/log"
)

// newValidateCommand creates the validate command.
func newValidateCommand() *cobra.Command {
	var (
		exprPath string
		flags    engineFlags
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an expression for unknown operators without evaluating it",
		Long: `Validate scans an expression document for operator names that are not
registered in the engine, without executing anything. Every problem in
the tree is reported in one pass; content inside $literal wrappers is
skipped, since it is data by definition.

Exits with status 1 when the expression is invalid.`,
		Example: `  # Example 1: Validate an expression file
  jsonexpr validate -e expr.json

  # Example 2: Validate against the jq pack as well
  jsonexpr validate -e expr.yaml --packs jq`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, exprPath, &flags)
		},
	}

	cmd.Flags().StringVarP(&exprPath, "expression", "e", "", "Expression document (file path or \"-\" for stdin)")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("expression")

	return cmd
}

func runValidate(cmd *cobra.Command, exprPath string, flags *engineFlags) error {
	logger := log.WithComponent(log.New(log.FromEnv()), "validate")

	eng, err := flags.buildEngine(logger)
	if err != nil {
		return err
	}

	tree, err := loadDocument(exprPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	problems := eng.ValidateExpression(tree)
	if len(problems) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "expression is valid")
		return nil
	}

	for _, problem := range problems {
		fmt.Fprintln(cmd.ErrOrStderr(), problem)
	}
	return fmt.Errorf("expression has %d problem(s)", len(problems))
}
