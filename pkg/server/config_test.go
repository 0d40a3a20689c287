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

package server

import (
	"testing"
	"time"

	"github.com/NVIDIA/server-composer/pkg/defaults"
	"golang.org/x/time/rate"
)

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != defaults.ServerPort {
			t.Errorf("expected port %d, got %d", defaults.ServerPort, cfg.Port)
		}
		if cfg.RateLimit != defaults.ServerRateLimit {
			t.Errorf("expected rate limit %d, got %v", defaults.ServerRateLimit, cfg.RateLimit)
		}
		if cfg.RateLimitBurst != defaults.ServerRateLimitBurst {
			t.Errorf("expected burst %d, got %d", defaults.ServerRateLimitBurst, cfg.RateLimitBurst)
		}
		if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
			t.Errorf("expected shutdown timeout %v, got %v", defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
		}
		if cfg.ReadHeaderTimeout != defaults.ServerReadHeaderTimeout {
			t.Errorf("expected read header timeout %v, got %v", defaults.ServerReadHeaderTimeout, cfg.ReadHeaderTimeout)
		}
	})

	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "port from environment",
			env:  map[string]string{EnvPort: "9090"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 9090 {
					t.Errorf("expected port 9090, got %d", cfg.Port)
				}
			},
		},
		{
			name: "invalid port keeps default",
			env:  map[string]string{EnvPort: "invalid"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != defaults.ServerPort {
					t.Errorf("expected default port, got %d", cfg.Port)
				}
			},
		},
		{
			name: "out of range port keeps default",
			env:  map[string]string{EnvPort: "70000"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != defaults.ServerPort {
					t.Errorf("expected default port, got %d", cfg.Port)
				}
			},
		},
		{
			name: "shutdown timeout seconds",
			env:  map[string]string{EnvShutdownTimeoutSeconds: "45"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ShutdownTimeout != 45*time.Second {
					t.Errorf("expected 45s, got %v", cfg.ShutdownTimeout)
				}
			},
		},
		{
			name: "zero shutdown timeout keeps default",
			env:  map[string]string{EnvShutdownTimeoutSeconds: "0"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
					t.Errorf("expected default, got %v", cfg.ShutdownTimeout)
				}
			},
		},
		{
			name: "rate limit and burst",
			env:  map[string]string{EnvRateLimit: "2.5", EnvRateLimitBurst: "5"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.RateLimit != rate.Limit(2.5) {
					t.Errorf("expected rate 2.5, got %v", cfg.RateLimit)
				}
				if cfg.RateLimitBurst != 5 {
					t.Errorf("expected burst 5, got %d", cfg.RateLimitBurst)
				}
			},
		},
		{
			name: "negative rate limit keeps default",
			env:  map[string]string{EnvRateLimit: "-1"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.RateLimit != defaults.ServerRateLimit {
					t.Errorf("expected default rate, got %v", cfg.RateLimit)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, parseConfig())
		})
	}
}
