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
	"net/http"
	"time"

	apperrors "github.com/NVIDIA/server-composer/pkg/errors"
	"github.com/NVIDIA/server-composer/pkg/serializer"
)

// States reported in HealthResponse.Status.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string `json:"status" yaml:"status"`
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth answers liveness: the process is up and serving.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondStatus(w, r, http.StatusOK, StatusHealthy, "")
}

// handleReady answers 503 until Start has bound the listener and again once
// shutdown begins.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.isReady() {
		s.respondStatus(w, r, http.StatusServiceUnavailable, StatusNotReady, "server is starting or draining")
		return
	}
	s.respondStatus(w, r, http.StatusOK, StatusReady, "")
}

func (s *Server) respondStatus(w http.ResponseWriter, r *http.Request, status int, state, reason string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, status, HealthResponse{
		Status:    state,
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Reason:    reason,
	})
}
