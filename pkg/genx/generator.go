// Package genx wraps the external text-generation collaborator behind a
// small interface so business code never depends on a concrete model
// client.
package genx

import (
	"context"
	"errors"
)

// ErrUnavailable reports that no generator backend is configured.
var ErrUnavailable = errors.New("genx: no generator configured")

// Generator produces free text from a prompt. Implementations are opaque:
// callers only check the returned text for presence, never parse it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Unavailable is a Generator that always fails. It is wired when no API
// key is configured so callers surface a structured failure instead of
// fabricated text.
type Unavailable struct{}

func (Unavailable) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrUnavailable
}
