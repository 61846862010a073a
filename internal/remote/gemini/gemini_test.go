package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"writeassist/internal/domain"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	t.Setenv("TEST_GEMINI_KEY", "k")
	c, err := NewClient(Config{BaseURL: url, APIKeyEnv: "TEST_GEMINI_KEY", Model: "gemini-test", Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-test:generateContent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "k" {
			t.Errorf("missing api key header")
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "summarize this" {
			t.Errorf("request = %+v", req)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"part one, "},{"text":"part two"}]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Generate(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "part one, part two" {
		t.Errorf("Generate = %q", got)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"upstream error", http.StatusInternalServerError, `{"error":"down"}`},
		{"no candidates", http.StatusOK, `{"candidates":[]}`},
		{"bad json", http.StatusOK, `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			if _, err := newTestClient(t, srv.URL).Generate(context.Background(), "p"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGenerateCanceled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := newTestClient(t, srv.URL).Generate(ctx, "p")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestNewClientMissingKey(t *testing.T) {
	t.Setenv("TEST_GEMINI_MISSING", "")
	if _, err := NewClient(Config{APIKeyEnv: "TEST_GEMINI_MISSING"}); !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("err = %v, want ErrRemoteUnavailable", err)
	}
}
