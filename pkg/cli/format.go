// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/server-composer/pkg/validator"
)

func formatCmd() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "Add or remove thousands separators in memory sizes",
		ArgsUsage: "<value>...",
		Description: `Print each value with a comma every three digits, or with --remove print
the integer a comma-grouped value stands for.

# Examples

  composer format 8388608
  composer format --remove 131,072`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "remove",
				Aliases: []string{"r"},
				Usage:   "Strip commas instead of adding them",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one value is required")
			}

			w := cmd.Root().Writer
			for _, arg := range args {
				n, err := validator.FormatRemoveCommas(arg)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				if cmd.Bool("remove") {
					fmt.Fprintln(w, n)
					continue
				}
				fmt.Fprintln(w, validator.FormatWithCommas(n))
			}
			return nil
		},
	}
}
