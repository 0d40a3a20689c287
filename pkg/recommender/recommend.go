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

package recommender

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
	"github.com/NVIDIA/server-composer/pkg/hardware"
	"github.com/NVIDIA/server-composer/pkg/header"
)

// Recommender builds Recommendation documents for hardware configurations.
type Recommender struct {
	Version string
}

// Option is a functional option for configuring the Recommender.
type Option func(*Recommender)

// WithVersion sets the tool version recorded in recommendation metadata.
func WithVersion(version string) Option {
	return func(r *Recommender) {
		r.Version = version
	}
}

// New creates a new Recommender with the provided options.
func New(opts ...Option) *Recommender {
	r := &Recommender{}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Recommend decides the eligible server models for cfg and wraps them in a
// Recommendation. A configuration that matches nothing is not an error.
func (r *Recommender) Recommend(ctx context.Context, cfg hardware.HardwareConfig) (*Recommendation, error) {
	start := time.Now()
	defer func() {
		recommendDuration.Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		recommendTotal.WithLabelValues(outcomeError).Inc()
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "recommendation canceled", err)
	}

	if cfg.MemorySize < 0 {
		recommendTotal.WithLabelValues(outcomeError).Inc()
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"memory size cannot be negative", map[string]any{"memorySize": cfg.MemorySize})
	}

	if cfg.CPU == "" {
		cfg.CPU = hardware.DefaultCPUModel
	}

	if !cfg.CPU.IsValid() {
		recommendTotal.WithLabelValues(outcomeError).Inc()
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unsupported cpu model", map[string]any{"cpu": cfg.CPU.String()})
	}

	res := DecideServerModels(cfg)

	rec := &Recommendation{
		Config:  cfg,
		Matched: res.Matched,
		Models:  res.Models,
		Labels:  res.Labels(),
	}
	rec.Display = rec.Lines()
	rec.Init(header.KindRecommendation, header.APIVersion, r.Version)

	outcome := outcomeNoMatch
	if res.Matched {
		outcome = outcomeMatch
	}
	recommendTotal.WithLabelValues(outcome).Inc()

	slog.Debug("server models decided",
		"cpu", cfg.CPU.String(),
		"memorySize", cfg.MemorySize,
		"gpuAccelerator", cfg.GPUAccelerator,
		"matched", res.Matched,
		"models", rec.Labels,
	)

	return rec, nil
}
