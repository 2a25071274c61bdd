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

// newOpsCommand creates the ops command.
func newOpsCommand() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the registered operator names",
		Long: `Ops prints every operator name registered for the given engine
configuration, one per line, in registration order. The literal-escape
operator $literal is always present and always listed last.`,
		Example: `  # Example 1: List the base pack
  jsonexpr ops

  # Example 2: List with extra packs enabled and an exclusion
  jsonexpr ops --packs jq,expr --exclude '$divide'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent(log.New(log.FromEnv()), "ops")
			eng, err := flags.buildEngine(logger)
			if err != nil {
				return err
			}
			for _, name := range eng.ExpressionNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
