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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/server-composer/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate one or more memory sizes",
		ArgsUsage:             "<memory>...",
		Description: `Validate memory sizes in megabytes. Sizes may contain comma separators.

A size is valid when it is a whole number between 2,048 and 8,388,608 that is
a multiple of 1024 and a power of 2. An invalid size is reported as a result,
not as an error, unless --fail-on-error is set.

# Examples

  composer validate 4096 131,072
  composer validate --fail-on-error --format json 3072`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any memory size is invalid",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one memory size is required")
			}

			ctx, cancel := commandContext(ctx)
			defer cancel()

			reports := make([]*validator.Report, 0, len(args))
			invalid := 0
			for _, arg := range args {
				r := validator.NewReport(version, arg)
				if !r.Result.Valid {
					invalid++
				}
				slog.Debug("memory validated", "input", arg, "valid", r.Result.Valid, "kind", r.Result.Kind.String())
				reports = append(reports, r)
			}

			var doc any = reports
			if len(reports) == 1 {
				doc = reports[0]
			}
			if err := writeDocument(ctx, cmd, doc); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && invalid > 0 {
				return fmt.Errorf("validation failed: %d of %d memory size(s) invalid", invalid, len(reports))
			}
			return nil
		},
	}
}
