package logging

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horoscope-service/internal/core/domain"
	ports "horoscope-service/internal/core/ports/output"
	"horoscope-service/internal/requestid"
)

func TestOutcomeLogger_Success(t *testing.T) {
	logger, hook := test.NewNullLogger()
	recorder := NewOutcomeLogger(logger)

	recorder.RecordOutcome(context.Background(), ports.Outcome{Input: "1998-07-27", Sign: domain.Leo})

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "zodiac sign for birthdate 1998-07-27 is Leo", entry.Message)
	assert.Equal(t, "1998-07-27", entry.Data["birthdate"])
	assert.Equal(t, "Leo", entry.Data["zodiac_sign"])
	assert.Equal(t, "horoscope", entry.Data["component"])
	assert.NotContains(t, entry.Data, "error_kind")
	assert.NotContains(t, entry.Data, "request_id")
}

func TestOutcomeLogger_RequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	recorder := NewOutcomeLogger(logger)

	ctx := requestid.NewContext(context.Background(), "req-42")
	recorder.RecordOutcome(ctx, ports.Outcome{Input: "1990-01-01", Sign: domain.Capricorn})

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "req-42", hook.LastEntry().Data["request_id"])
}

func TestOutcomeLogger_Failure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	recorder := NewOutcomeLogger(logger)

	err := &domain.ValidationError{Kind: domain.KindInvalidCalendarDate, Input: "1999-02-29"}
	recorder.RecordOutcome(context.Background(), ports.Outcome{
		Input: "1999-02-29",
		Err:   err,
		Kind:  domain.KindInvalidCalendarDate,
	})

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, "invalid birthdate", entry.Message)
	assert.Equal(t, "1999-02-29", entry.Data["birthdate"])
	assert.Equal(t, "invalid_calendar_date", entry.Data["error_kind"])
	assert.Equal(t, err, entry.Data[log.ErrorKey])
}

func TestOutcomeLogger_RespectsLevel(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.WarnLevel)
	recorder := NewOutcomeLogger(logger)

	recorder.RecordOutcome(context.Background(), ports.Outcome{Input: "1990-01-01", Sign: domain.Capricorn})
	assert.Empty(t, hook.AllEntries())
}
