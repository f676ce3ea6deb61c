package requestid

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id := New()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.True(t, Valid(id))
	assert.NotEqual(t, id, New())
}

func TestValid(t *testing.T) {
	tests := []struct {
		id       string
		expected bool
	}{
		{"req-123", true},
		{"", false},
		{"has space", false},
		{"line\nbreak", false},
		{"ünïcode", false},
		{strings.Repeat("a", MaxLength), true},
		{strings.Repeat("a", MaxLength+1), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Valid(tt.id), "%q", tt.id)
	}
}

func TestContextRoundTrip(t *testing.T) {
	assert.Empty(t, FromContext(context.Background()))

	ctx := NewContext(context.Background(), "req-789")
	assert.Equal(t, "req-789", FromContext(ctx))
}
