package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"writeassist/internal/domain"
)

func newTestClient(t *testing.T, url string, retries int) *Client {
	t.Helper()
	t.Setenv("TEST_OPENAI_KEY", "secret")
	c, err := NewClient(Config{BaseURL: url, APIKeyEnv: "TEST_OPENAI_KEY", Model: "m", Timeout: 2 * time.Second, MaxRetries: retries})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Model != "m" || len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Errorf("request = %+v", req)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi there"}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, 0).Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hi there" {
		t.Errorf("Generate = %q", got)
	}
}

func TestGenerateRetriesOnUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, 2).Generate(context.Background(), "p")
	if err != nil || got != "ok" {
		t.Fatalf("Generate = %q, %v", got, err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestGenerateClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv.URL, 3).Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv.URL, 0).Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestNewClientMissingKey(t *testing.T) {
	t.Setenv("TEST_OPENAI_MISSING", "")
	_, err := NewClient(Config{APIKeyEnv: "TEST_OPENAI_MISSING"})
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("err = %v, want ErrRemoteUnavailable", err)
	}
}

func TestRetryDelay(t *testing.T) {
	t.Parallel()

	if retryDelay(0) != 200*time.Millisecond || retryDelay(1) != 400*time.Millisecond {
		t.Errorf("unexpected backoff: %v %v", retryDelay(0), retryDelay(1))
	}
	if retryDelay(10) != 5*time.Second {
		t.Errorf("backoff not capped: %v", retryDelay(10))
	}
}
