package logging

import (
	"context"

	log "github.com/sirupsen/logrus"

	ports "horoscope-service/internal/core/ports/output"
	"horoscope-service/internal/requestid"
)

// OutcomeLogger writes lookup outcomes as structured logrus entries.
type OutcomeLogger struct {
	entry *log.Entry
}

// NewOutcomeLogger creates an OutcomeLogger on top of logger.
func NewOutcomeLogger(logger *log.Logger) *OutcomeLogger {
	return &OutcomeLogger{entry: log.NewEntry(logger).WithField("component", "horoscope")}
}

func (l *OutcomeLogger) RecordOutcome(ctx context.Context, outcome ports.Outcome) {
	entry := l.entry.WithContext(ctx).WithField("birthdate", outcome.Input)
	if id := requestid.FromContext(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}

	if outcome.Failed() {
		entry.WithError(outcome.Err).
			WithField("error_kind", string(outcome.Kind)).
			Warn("invalid birthdate")
		return
	}

	entry.WithField("zodiac_sign", string(outcome.Sign)).
		Infof("zodiac sign for birthdate %s is %s", outcome.Input, outcome.Sign)
}
