// Package requestid carries the per-request correlation id through
// context.Context so adapters outside the HTTP layer can log it.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// MaxLength bounds ids accepted from callers.
const MaxLength = 128

type contextKey struct{}

// New generates a fresh id.
func New() string {
	return uuid.New().String()
}

// Valid reports whether id may be echoed back to the caller: non-empty,
// bounded, printable ASCII without spaces.
func Valid(id string) bool {
	if id == "" || len(id) > MaxLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
