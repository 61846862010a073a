package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput rejects blank or whitespace-only text before any processing.
	ErrEmptyInput = errors.New("text is required")
	// ErrRemoteUnavailable means no remote backend is configured, or the call failed.
	// Callers fall back to the local heuristic.
	ErrRemoteUnavailable = errors.New("remote backend unavailable")
	// ErrInvalidOption is returned for option values outside their enumerated set.
	ErrInvalidOption = errors.New("invalid option")
)

// InputTooLargeError rejects text longer than the configured maximum.
type InputTooLargeError struct {
	Length int
	Max    int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("text too long (%d characters, maximum %d)", e.Length, e.Max)
}

// InputTooShortError rejects text below an operation's minimum length.
type InputTooShortError struct {
	Length int
	Min    int
}

func (e *InputTooShortError) Error() string {
	return fmt.Sprintf("text too short (minimum %d characters)", e.Min)
}

// ComputationError reports a scoring formula that received degenerate input.
type ComputationError struct {
	Component string
	Reason    string
}

func (e *ComputationError) Error() string {
	return e.Component + ": " + e.Reason
}
