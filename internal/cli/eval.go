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
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tombee/jsonexpr/internal/log"
)

// newEvalCommand creates the eval command.
func newEvalCommand() *cobra.Command {
	var (
		exprPath string
		dataPath string
		compact  bool
		flags    engineFlags
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an expression against input data",
		Long: `Eval reads an expression document and an optional input data document,
evaluates the expression, and prints the result as JSON on stdout.

Both documents may be JSON or YAML, from a file or from stdin ("-").
Without --data the input is null.`,
		Example: `  # Example 1: Evaluate an expression file against a data file
  jsonexpr eval -e expr.json -d data.json

  # Example 2: Pipe the input data through stdin
  cat data.json | jsonexpr eval -e expr.json -d -

  # Example 3: Enable the jq and temporal operator packs
  jsonexpr eval -e expr.yaml -d data.json --packs jq,temporal

  # Example 4: Trace operator calls (debug logging)
  JSONEXPR_DEBUG=1 jsonexpr eval -e expr.json -d data.json --log-operators`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, exprPath, dataPath, compact, &flags)
		},
	}

	cmd.Flags().StringVarP(&exprPath, "expression", "e", "", "Expression document (file path or \"-\" for stdin)")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Input data document (file path or \"-\" for stdin)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Always print compact JSON, even on a TTY")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("expression")

	return cmd
}

func runEval(cmd *cobra.Command, exprPath, dataPath string, compact bool, flags *engineFlags) error {
	runID := uuid.New().String()
	logger := log.WithRunID(log.WithComponent(log.New(log.FromEnv()), "eval"), runID)

	eng, err := flags.buildEngine(logger)
	if err != nil {
		return err
	}

	tree, err := loadDocument(exprPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var input any
	if dataPath != "" {
		input, err = loadDocument(dataPath, cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	out, err := eng.Apply(tree, input)
	if err != nil {
		logger.Error("evaluation failed", log.Error(err))
		return err
	}

	return printJSON(cmd, out, compact)
}

// printJSON renders v on stdout: indented when stdout is a TTY,
// compact otherwise or when forced.
func printJSON(cmd *cobra.Command, v any, compact bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if !compact && isTTY() {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// isTTY reports whether stdout is a terminal with color support.
func isTTY() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "dumb" || t == "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
