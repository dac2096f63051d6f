package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	client := New()

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.HTTPClient == nil {
		t.Fatal("Expected HTTPClient to be initialized")
	}

	if client.HTTPClient.Timeout != defaultTimeout {
		t.Errorf("Expected timeout %v, got %v", defaultTimeout, client.HTTPClient.Timeout)
	}

	if client.Retries != defaultRetries {
		t.Errorf("Expected retries %d, got %d", defaultRetries, client.Retries)
	}

	if client.UserAgent != userAgentValue {
		t.Errorf("Expected user agent '%s', got '%s'", userAgentValue, client.UserAgent)
	}
}

func TestNewWith(t *testing.T) {
	cfg := Config{
		Timeout:   10 * time.Second,
		Retries:   5,
		UserAgent: "Custom Agent",
		ProxyURL:  "http://proxy.example.com:8080",
	}

	client := NewWith(cfg)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.HTTPClient.Timeout != cfg.Timeout {
		t.Errorf("Expected timeout %v, got %v", cfg.Timeout, client.HTTPClient.Timeout)
	}

	if client.Retries != cfg.Retries {
		t.Errorf("Expected retries %d, got %d", cfg.Retries, client.Retries)
	}

	if client.UserAgent != cfg.UserAgent {
		t.Errorf("Expected user agent '%s', got '%s'", cfg.UserAgent, client.UserAgent)
	}
}

func TestNewWithZeroValues(t *testing.T) {
	cfg := Config{}

	client := NewWith(cfg)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.HTTPClient.Timeout != defaultTimeout {
		t.Errorf("Expected timeout %v, got %v", defaultTimeout, client.HTTPClient.Timeout)
	}

	if client.Retries != defaultRetries {
		t.Errorf("Expected retries %d, got %d", defaultRetries, client.Retries)
	}

	if client.UserAgent != userAgentValue {
		t.Errorf("Expected user agent '%s', got '%s'", userAgentValue, client.UserAgent)
	}
}

func TestGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("test response"))
	}))
	defer server.Close()

	client := New()
	resp, err := client.Get(server.URL)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp == nil {
		t.Fatal("Expected response to be non-nil")
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	_ = resp.Body.Close()
}

func TestGetSetsUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent := r.Header.Get("User-Agent")
		if userAgent != userAgentValue {
			t.Errorf("Expected User-Agent '%s', got '%s'", userAgentValue, userAgent)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New()
	resp, err := client.Get(server.URL)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_ = resp.Body.Close()
}

func TestDoKeepsCallerHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Cookie"); got != "SID=abc" {
			t.Errorf("Expected Cookie header 'SID=abc', got '%s'", got)
		}
		if got := r.Header.Get("User-Agent"); got != "agent under test" {
			t.Errorf("Expected caller User-Agent to be kept, got '%s'", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest("GET", server.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Cookie", "SID=abc")
	req.Header.Set("User-Agent", "agent under test")

	client := New()
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	_ = resp.Body.Close()
}

func TestDoRetriesServerErrors(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &Client{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Retries:    3,
	}

	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 after retries, got %d", resp.StatusCode)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
	_ = resp.Body.Close()
}
