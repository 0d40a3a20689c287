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
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/server-composer/pkg/server"
)

func TestRoutes(t *testing.T) {
	routes := Routes(NewHandler())

	for _, path := range []string{"/v1/recommendations", "/v1/memory/validate", "/v1/options"} {
		h, ok := routes[path]
		require.True(t, ok, path)
		require.NotNil(t, h, path)
	}
	assert.Len(t, routes, 3)
}

func TestRoutes_Serve(t *testing.T) {
	mux := http.NewServeMux()
	for path, h := range Routes(NewHandler()) {
		mux.HandleFunc(path, h)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations?cpu=X86&memory=2048", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"TowerServer"`)
}

func TestNewServer(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	t.Setenv(server.EnvRateLimitBurst, "50")
	cfg := server.NewConfig()
	assert.Equal(t, 50, cfg.RateLimitBurst)
	cfg.Address = "127.0.0.1"
	cfg.Port = port
	cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- newServer(cfg).Start(ctx)
	}()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	get := func(path string) (int, string) {
		resp, err := http.Get(base + path) //nolint:noctx // local test server
		if err != nil {
			return 0, ""
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(body)
	}

	require.Eventually(t, func() bool {
		code, _ := get("/ready")
		return code == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	code, body := get("/v1/options")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"cpuModels"`)

	code, _ = get("/v1/recommendations?memory=%204096")
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = get("/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "composerd")

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
