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
	"net/url"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/server-composer/pkg/hardware"
	"github.com/NVIDIA/server-composer/pkg/recommender"
	"github.com/NVIDIA/server-composer/pkg/request"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		Aliases:               []string{"rec"},
		EnableShellCompletion: true,
		Usage:                 "Decide the server models eligible for a hardware configuration",
		Description: `Decide the eligible server models for a CPU model, memory size, and GPU
accelerator choice. The configuration is given with flags or loaded from a
HardwareConfig file in JSON or YAML.

# Examples

  composer recommend --cpu Power --memory 262,144
  composer recommend --cpu ARM --memory 524288 --gpu --format json
  composer recommend --config hardware.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  request.ParamCPU,
				Value: hardware.DefaultCPUModel.String(),
				Usage: fmt.Sprintf("CPU model (supported values: %s)",
					hardware.SupportedCPUModelNames()),
				Sources: cli.EnvVars(envPrefix + "CPU"),
			},
			&cli.StringFlag{
				Name:    request.ParamMemory,
				Aliases: []string{"m"},
				Usage:   "Memory size in MB, comma separators allowed (e.g., 131,072)",
				Sources: cli.EnvVars(envPrefix + "MEMORY"),
			},
			&cli.BoolFlag{
				Name:    request.ParamGPU,
				Usage:   "Require a GPU accelerator",
				Sources: cli.EnvVars(envPrefix + "GPU"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"f"},
				Usage: `Path to a HardwareConfig file (JSON or YAML).
	If provided, the cpu, memory, and gpu flags are ignored.`,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(ctx)
			defer cancel()

			rec, err := recommender.New(recommender.WithVersion(version)).Recommend(ctx, cfg)
			if err != nil {
				return fmt.Errorf("error deciding server models: %w", err)
			}

			slog.Debug("recommendation", "config", cfg.String(), "matched", rec.Matched, "models", rec.Labels)

			return writeDocument(ctx, cmd, rec)
		},
	}
}

// configFromCmd builds a HardwareConfig from the --config file or from the
// individual flags, which share the HTTP query parameter rules.
func configFromCmd(cmd *cli.Command) (hardware.HardwareConfig, error) {
	if path := cmd.String("config"); path != "" {
		slog.Info("loading hardware config", "path", path)
		cfg, err := request.LoadConfigFromFile(path)
		if err != nil {
			return hardware.HardwareConfig{}, fmt.Errorf("failed to load hardware config from %q: %w", path, err)
		}
		return cfg, nil
	}

	values := url.Values{}
	values.Set(request.ParamCPU, cmd.String(request.ParamCPU))
	values.Set(request.ParamMemory, cmd.String(request.ParamMemory))
	values.Set(request.ParamGPU, strconv.FormatBool(cmd.Bool(request.ParamGPU)))

	cfg, err := request.ParseConfigFromValues(values)
	if err != nil {
		return hardware.HardwareConfig{}, fmt.Errorf("error parsing hardware config flags: %w", err)
	}
	return cfg, nil
}
