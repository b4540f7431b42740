package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ziadkadry99/sampleapi/internal/routes"
)

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestServer(t *testing.T, cfg Config) (*Server, *syncBuffer) {
	t.Helper()
	logs := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	srv := New(cfg, logger)
	routes.RegisterRoutes(srv.Router())
	return srv, logs
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "UP" {
		t.Errorf("expected status 'UP', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/api/users", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	srv, _ := newTestServer(t, Config{Port: 0, AllowedOrigins: []string{"https://allowed.example"}})

	req := httptest.NewRequest("GET", "/api/hello", nil)
	req.Header.Set("Origin", "https://other.example")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Allow-Origin %q for a disallowed origin", got)
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestNotFound(t *testing.T) {
	srv, _ := newTestServer(t, Config{Port: 0})

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/unknown"},
		{"GET", "/api"},
		{"GET", "/api/users/1"},
		{"POST", "/api/users"},
		{"DELETE", "/api/orders"},
		{"PUT", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != `{"error":"not found"}` {
				t.Errorf("body = %s", got)
			}
		})
	}
}

func TestHeadServedByGetRoutes(t *testing.T) {
	srv, _ := newTestServer(t, Config{Port: 0})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	for _, rt := range routes.Table() {
		t.Run(rt.Path, func(t *testing.T) {
			resp, err := http.Head(ts.URL + rt.Path)
			if err != nil {
				t.Fatalf("HEAD: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if len(body) != 0 {
				t.Errorf("HEAD returned a body: %q", body)
			}
		})
	}
}

func TestHeadUnknownPath(t *testing.T) {
	srv, _ := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("HEAD", "/api/unknown", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestNewTimeouts(t *testing.T) {
	srv := New(Config{
		Port:              3000,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      4 * time.Second,
		IdleTimeout:       5 * time.Second,
	}, nil)
	if srv.httpServer.ReadHeaderTimeout != 3*time.Second ||
		srv.httpServer.WriteTimeout != 4*time.Second ||
		srv.httpServer.IdleTimeout != 5*time.Second {
		t.Errorf("timeouts not taken from config: %+v", srv.httpServer)
	}

	bare := New(Config{}, nil)
	if bare.httpServer.ReadHeaderTimeout != 0 || bare.httpServer.WriteTimeout != 0 || bare.httpServer.IdleTimeout != 0 {
		t.Error("zero config timeouts should stay unset")
	}
	routes.RegisterRoutes(bare.Router())
	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	bare.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status without request timeout = %d, want 200", w.Code)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	srv, logs := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/api/users", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("expected a generated request id")
	}
	if !strings.Contains(logs.String(), "request_id="+id) {
		t.Errorf("request log missing id %s: %s", id, logs.String())
	}
	if !strings.Contains(logs.String(), "path=/api/users") || !strings.Contains(logs.String(), "status=200") {
		t.Errorf("request log missing fields: %s", logs.String())
	}
}

func TestRequestIDPropagated(t *testing.T) {
	srv, _ := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestServeAndShutdown(t *testing.T) {
	srv, logs := newTestServer(t, Config{Port: 0})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/hello")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := strings.TrimSpace(string(body)); got != `{"message":"Hello from Express API!"}` {
		t.Errorf("body = %s", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Serve returned %v after shutdown", err)
	}

	want := "Application is running on port " + strconv.Itoa(port)
	if !strings.Contains(logs.String(), want) {
		t.Errorf("startup line %q not logged: %s", want, logs.String())
	}
	if !strings.Contains(logs.String(), "port="+strconv.Itoa(port)) {
		t.Errorf("startup line missing port attribute: %s", logs.String())
	}
}

func TestStartPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	srv, _ := newTestServer(t, Config{Host: "127.0.0.1", Port: ln.Addr().(*net.TCPAddr).Port})
	if err := srv.Start(); err == nil {
		t.Fatal("expected listen error for a port already in use")
	}
}
