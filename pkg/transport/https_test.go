package transport

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("expected non-nil config")
	}

	if config.MinTLSVersion != TLS12 {
		t.Errorf("expected MinTLSVersion TLS12, got %d", config.MinTLSVersion)
	}
	if config.MaxTLSVersion != TLS13 {
		t.Errorf("expected MaxTLSVersion TLS13, got %d", config.MaxTLSVersion)
	}
	if len(config.CipherSuites) == 0 {
		t.Error("expected CipherSuites to be set")
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("expected Timeout 30s, got %v", config.Timeout)
	}
	if config.IdleConnTimeout != 90*time.Second {
		t.Errorf("expected IdleConnTimeout 90s, got %v", config.IdleConnTimeout)
	}
}

func TestRecommendedTLS12CipherSuites(t *testing.T) {
	if len(RecommendedTLS12CipherSuites) == 0 {
		t.Error("expected recommended cipher suites to be defined")
	}

	for _, suite := range RecommendedTLS12CipherSuites {
		if tls.CipherSuiteName(suite) == "" {
			t.Errorf("unknown cipher suite: %d", suite)
		}
	}
}

func TestNewClient_NilConfig(t *testing.T) {
	client := NewClient(nil)

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.client == nil {
		t.Error("expected http.Client to be initialized")
	}
	if client.config == nil {
		t.Error("expected config to be set to default")
	}
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.Header.Get("User-Agent") != "go-opensearch/1.0" {
			t.Errorf("unexpected User-Agent %q", r.Header.Get("User-Agent"))
		}

		w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
		w.Write([]byte("<feed/>"))
	}))
	defer server.Close()

	client := NewClient(nil)

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "<feed/>" {
		t.Errorf("unexpected body: %s", string(resp.Body))
	}
	mt := resp.MediaType()
	if mt.Type != "application" || mt.Subtype != "atom+xml" {
		t.Errorf("unexpected media type: %s/%s", mt.Type, mt.Subtype)
	}
}

func TestClient_Get_ErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("gone"))
	}))
	defer server.Close()

	client := NewClient(nil)

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
	if resp.Reason() != "Not Found" {
		t.Errorf("unexpected reason: %s", resp.Reason())
	}
	if string(resp.Body) != "gone" {
		t.Errorf("unexpected body: %s", string(resp.Body))
	}
}

func TestClient_Get_RequestOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/atom+xml" {
			t.Errorf("unexpected Accept header %q", r.Header.Get("Accept"))
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "alice" || pass != "s3cret" {
			t.Errorf("unexpected credentials %q/%q", user, pass)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(nil)

	_, err := client.Get(context.Background(), server.URL,
		WithHeader("Accept", "application/atom+xml"),
		WithBasicAuth("alice", "s3cret"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Get_InvalidURL(t *testing.T) {
	client := NewClient(nil)

	_, err := client.Get(context.Background(), "http://invalid.invalid.invalid:99999")
	if err == nil {
		t.Error("expected error for invalid URL")
	}
}

func TestClient_Get_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(&Config{
		Timeout: 10 * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, server.URL)
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestTLSConstants(t *testing.T) {
	if TLS12 != tls.VersionTLS12 {
		t.Errorf("TLS12 constant mismatch")
	}
	if TLS13 != tls.VersionTLS13 {
		t.Errorf("TLS13 constant mismatch")
	}
}
