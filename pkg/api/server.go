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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/server-composer/pkg/logging"
	"github.com/NVIDIA/server-composer/pkg/server"
)

const (
	name           = "composerd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/server-composer/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the application routes served by composerd.
func Routes(h *Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/recommendations": h.HandleRecommendations,
		"/v1/memory/validate": h.HandleValidateMemory,
		"/v1/options":         h.HandleOptions,
	}
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)

	cfg := server.NewConfig()
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"port", cfg.Port,
		"rateLimit", float64(cfg.RateLimit),
		"rateLimitBurst", cfg.RateLimitBurst,
	)

	if err := newServer(cfg).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newServer builds the composerd server from cfg with the composer routes.
func newServer(cfg *server.Config) *server.Server {
	return server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(NewHandler(WithVersion(version)))),
	)
}
