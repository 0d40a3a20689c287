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
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/server-composer/pkg/defaults"
	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
	"github.com/NVIDIA/server-composer/pkg/hardware"
	"github.com/NVIDIA/server-composer/pkg/recommender"
	"github.com/NVIDIA/server-composer/pkg/request"
	"github.com/NVIDIA/server-composer/pkg/serializer"
	"github.com/NVIDIA/server-composer/pkg/server"
	"github.com/NVIDIA/server-composer/pkg/validator"
)

// Handler serves the composer API routes.
type Handler struct {
	version     string
	recommender *recommender.Recommender
}

// Option is a functional option for configuring the Handler.
type Option func(*Handler)

// WithVersion sets the version recorded in response metadata.
func WithVersion(version string) Option {
	return func(h *Handler) {
		h.version = version
	}
}

// NewHandler creates a Handler with the provided options.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	h.recommender = recommender.New(recommender.WithVersion(h.version))
	return h
}

// HandleRecommendations decides the server models for a hardware
// configuration given as GET query parameters or as a POST body in JSON or
// YAML.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	var cfg hardware.HardwareConfig
	var err error

	switch r.Method {
	case http.MethodGet:
		cfg, err = request.ParseConfigFromValues(r.URL.Query())
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
		defer body.Close()
		cfg, err = request.ParseConfigFromBody(body, r.Header.Get("Content-Type"))
	default:
		writeMethodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid hardware config", nil)
		return
	}

	slog.Debug("hardware config",
		"requestID", server.RequestID(r.Context()),
		"cpu", cfg.CPU.String(),
		"memorySize", cfg.MemorySize,
		"gpuAccelerator", cfg.GPUAccelerator,
	)

	rec, err := h.recommender.Recommend(ctx, cfg)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrCodeTimeout) {
			slog.Warn("recommendation did not complete",
				"requestID", server.RequestID(r.Context()),
				"timeout", defaults.RecommendHandlerTimeout,
				"error", err)
		}
		server.WriteErrorFromErr(w, r, err, "Failed to decide server models", nil)
		return
	}

	if r.Method == http.MethodGet {
		w.Header().Set("Cache-Control", cacheControl(defaults.RecommendCacheTTL.Seconds()))
	}

	serializer.RespondJSON(w, http.StatusOK, rec)
}

// HandleValidateMemory validates the memory query parameter. An invalid
// size is a normal result and is answered with 200.
func (h *Handler) HandleValidateMemory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	raw, ok := r.URL.Query()[request.ParamMemory]
	if !ok || strings.TrimSpace(raw[0]) == "" {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"memory query parameter is required", false, map[string]any{
				"parameter": request.ParamMemory,
			})
		return
	}

	resp := validator.NewReport(h.version, raw[0])

	slog.Debug("memory validated",
		"requestID", server.RequestID(r.Context()),
		"input", resp.Input,
		"valid", resp.Result.Valid,
		"kind", resp.Result.Kind.String(),
	)

	w.Header().Set("Cache-Control", cacheControl(defaults.RecommendCacheTTL.Seconds()))
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleOptions lists the supported CPU models, server models, and memory
// bounds.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	w.Header().Set("Cache-Control", cacheControl(defaults.OptionsCacheTTL.Seconds()))
	serializer.RespondJSON(w, http.StatusOK, recommender.NewOptions(h.version))
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}

func cacheControl(seconds float64) string {
	return fmt.Sprintf("public, max-age=%d", int(seconds))
}
