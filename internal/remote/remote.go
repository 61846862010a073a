// Package remote wraps an optional generative backend behind an explicit
// availability state. The service decides between the remote path and the
// local heuristics by switching on Outcome.Status.
package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"writeassist/internal/domain"
)

// Status tags an Outcome.
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}

// Outcome is the result of one remote attempt.
type Outcome struct {
	Status  Status
	Text    string
	Backend string
	Err     error
}

// Backend is the capability handed to the service at start-up.
type Backend struct {
	gen     domain.Generator
	reason  string
	timeout time.Duration
}

// NewBackend returns an available backend over gen. A nil gen is unavailable.
func NewBackend(gen domain.Generator, timeout time.Duration) *Backend {
	if gen == nil {
		return Unavailable("no remote backend configured")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Backend{gen: gen, timeout: timeout}
}

// Unavailable returns a backend that never attempts a call.
func Unavailable(reason string) *Backend {
	return &Backend{reason: reason}
}

// Available reports whether calls will be attempted.
func (b *Backend) Available() bool { return b != nil && b.gen != nil }

// Name returns the backend's name, or "" when unavailable.
func (b *Backend) Name() string {
	if !b.Available() {
		return ""
	}
	return b.gen.Name()
}

// Reason explains why the backend is unavailable.
func (b *Backend) Reason() string {
	if b == nil {
		return "no remote backend configured"
	}
	return b.reason
}

// Attempt runs prompt under the backend timeout.
func (b *Backend) Attempt(ctx context.Context, prompt string) Outcome {
	if !b.Available() {
		return Outcome{Status: StatusUnavailable, Err: fmt.Errorf("%s: %w", b.Reason(), domain.ErrRemoteUnavailable)}
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	text, err := b.gen.Generate(ctx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty response")
	}
	if err != nil {
		return Outcome{Status: StatusFailed, Backend: b.gen.Name(), Err: fmt.Errorf("%s: %v: %w", b.gen.Name(), err, domain.ErrRemoteUnavailable)}
	}
	return Outcome{Status: StatusOK, Text: strings.TrimSpace(text), Backend: b.gen.Name()}
}

// MissingKeyError reports an API key env var that is unset.
type MissingKeyError struct {
	Env string
}

func (e *MissingKeyError) Error() string {
	return "missing API key in env " + e.Env
}

// Is lets callers treat a missing key as an unavailable backend.
func (e *MissingKeyError) Is(target error) bool { return target == domain.ErrRemoteUnavailable }
