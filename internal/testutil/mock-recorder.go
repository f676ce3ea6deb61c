package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	ports "horoscope-service/internal/core/ports/output"
)

// MockOutcomeRecorder is a mock of OutcomeRecorder.
type MockOutcomeRecorder struct {
	mock.Mock
}

func (m *MockOutcomeRecorder) RecordOutcome(ctx context.Context, outcome ports.Outcome) {
	m.Called(ctx, outcome)
}

// CollectingRecorder keeps every outcome it receives. Safe for concurrent use.
type CollectingRecorder struct {
	mu       sync.Mutex
	outcomes []ports.Outcome
}

func (r *CollectingRecorder) RecordOutcome(_ context.Context, outcome ports.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

// Outcomes returns a copy of the recorded outcomes.
func (r *CollectingRecorder) Outcomes() []ports.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}
