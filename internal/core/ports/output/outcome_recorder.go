package ports

import (
	"context"

	"horoscope-service/internal/core/domain"
)

// Outcome describes the result of a single birthdate lookup.
type Outcome struct {
	Input string
	Sign  domain.ZodiacSign
	Err   error
	Kind  domain.ValidationKind // empty unless Err is a validation error
}

// Failed reports whether the lookup was rejected.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// OutcomeRecorder receives one structured event per lookup.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, outcome Outcome)
}
