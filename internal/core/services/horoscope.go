package services

import (
	"context"

	"horoscope-service/internal/core/domain"
	ports "horoscope-service/internal/core/ports/output"
)

// HoroscopeService resolves birthdates to zodiac signs
type HoroscopeService struct {
	recorder ports.OutcomeRecorder
}

// NewHoroscopeService creates a new horoscope service. recorder may be nil.
func NewHoroscopeService(recorder ports.OutcomeRecorder) *HoroscopeService {
	return &HoroscopeService{recorder: recorder}
}

// Lookup validates raw as a YYYY-MM-DD birthdate and classifies it.
// Validation failures are returned as *domain.ValidationError.
func (s *HoroscopeService) Lookup(ctx context.Context, raw string) (domain.ZodiacSign, error) {
	date, err := domain.ParseCalendarDate(raw)
	if err != nil {
		kind, _ := domain.KindOf(err)
		s.record(ctx, ports.Outcome{Input: raw, Err: err, Kind: kind})
		return "", err
	}

	sign := domain.Classify(date)
	s.record(ctx, ports.Outcome{Input: raw, Sign: sign})
	return sign, nil
}

func (s *HoroscopeService) record(ctx context.Context, outcome ports.Outcome) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordOutcome(ctx, outcome)
}
