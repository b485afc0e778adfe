package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/zod/latest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"zod","version":"3.23.8"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if got := c.LatestVersion(context.Background(), "zod"); got != "3.23.8" {
		t.Errorf("version = %q, want 3.23.8", got)
	}
}

func TestLatestVersionFailuresMapToUnknown(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFound.Close()

	badBody := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer badBody.Close()

	tests := []struct {
		name     string
		endpoint string
	}{
		{"404 response", notFound.URL},
		{"unparsable body", badBody.URL},
		{"unreachable endpoint", "http://127.0.0.1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.endpoint, time.Second)
			if got := c.LatestVersion(context.Background(), "zod"); got != VersionUnknown {
				t.Errorf("version = %q, want %q", got, VersionUnknown)
			}
		})
	}
}

// A slow registry is bounded by the client timeout, not retried.
func TestLatestVersionTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	c := New(slow.URL, 50*time.Millisecond)
	start := time.Now()
	got := c.LatestVersion(context.Background(), "zod")
	if got != VersionUnknown {
		t.Errorf("version = %q, want %q", got, VersionUnknown)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("lookup took %v, expected the timeout to bound it", elapsed)
	}
}
