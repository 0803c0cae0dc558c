package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"create-image-relay/modules/common/config"
	"create-image-relay/modules/common/middleware"
)

func newTestServer(t *testing.T, upstreamURL string) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!doctype html><h1>Create Image</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("// app"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Host:             "127.0.0.1",
		Port:             "5053",
		StaticDir:        dir,
		SiliconFlowURL:   upstreamURL,
		SiliconFlowModel: config.DefaultModel,
	}
	srv := httptest.NewServer(NewRouter(cfg))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestEveryResponseHasCORSAndRequestID(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	srv := newTestServer(t, "http://127.0.0.1:1/unused")

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/app.js", http.StatusOK},
		{http.MethodGet, "/api/ping", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodOptions, "/api/generate", http.StatusNoContent},
		{http.MethodPost, "/api/generate", http.StatusInternalServerError},
		{http.MethodGet, "/api/generate", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/generate", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api/generate", http.StatusMethodNotAllowed},
		{http.MethodOptions, "/api/ping", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
		{http.MethodGet, "/missing.css", http.StatusNotFound},
		{http.MethodDelete, "/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, "")

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != middleware.AllowOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q", got)
			}
			if got := resp.Header.Get("Access-Control-Allow-Headers"); got != middleware.AllowHeaders {
				t.Errorf("Access-Control-Allow-Headers = %q", got)
			}
			if got := resp.Header.Get("Access-Control-Allow-Methods"); got != middleware.AllowMethods {
				t.Errorf("Access-Control-Allow-Methods = %q", got)
			}
			if resp.Header.Get(middleware.RequestIDHeader) == "" {
				t.Error("X-Request-ID missing")
			}
		})
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-e2e" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid token"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"images":[{"url":"https://cdn.example.com/fox.png"}]}`))
	}))
	defer upstream.Close()

	t.Setenv(config.APIKeyEnv, "sk-e2e")
	srv := newTestServer(t, upstream.URL)

	resp := do(t, http.MethodPost, srv.URL+"/api/generate", `{"prompt":"a red fox","image_size":"1024x1024","num_inference_steps":20}`)
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "fox.png") {
		t.Errorf("body = %s", body)
	}
}

func TestPingBodyIsExact(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/unused")

	resp := do(t, http.MethodGet, srv.URL+"/api/ping", "")
	body, _ := io.ReadAll(resp.Body)

	if string(body) != "pong" {
		t.Errorf("body = %q, want pong", body)
	}
}
