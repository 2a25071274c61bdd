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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tombee/jsonexpr"
	"github.com/tombee/jsonexpr/pkg/engine"
	"github.com/tombee/jsonexpr/pkg/ops"
)

// engineFlags holds the engine configuration flags shared by the
// commands that construct an engine.
type engineFlags struct {
	packs       []string
	exclude     []string
	noBase      bool
	logOperator bool
}

func (f *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.packs, "packs", nil, "Extra operator packs to enable (jq, expr, temporal)")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "Operator names to remove from the registry")
	cmd.Flags().BoolVar(&f.noBase, "no-base", false, "Skip the default base operator pack")
	cmd.Flags().BoolVar(&f.logOperator, "log-operators", false, "Log every operator invocation (debug level)")
}

// buildEngine assembles an engine from the flags. logger is only used
// when --log-operators is set.
func (f *engineFlags) buildEngine(logger *slog.Logger) (*engine.Engine, error) {
	opts := jsonexpr.Options{
		SkipBase: f.noBase,
		Exclude:  f.exclude,
	}

	for _, name := range f.packs {
		switch name {
		case "jq":
			opts.Packs = append(opts.Packs, ops.JQ())
		case "expr":
			opts.Packs = append(opts.Packs, ops.Expr())
		case "temporal":
			opts.Packs = append(opts.Packs, ops.Temporal())
		default:
			return nil, fmt.Errorf("unknown operator pack %q (available: jq, expr, temporal)", name)
		}
	}

	if f.logOperator {
		opts.Middleware = append(opts.Middleware, engine.LoggingMiddleware(logger))
	}

	return jsonexpr.New(opts), nil
}
