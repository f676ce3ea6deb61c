package dto

import "horoscope-service/internal/core/domain"

// ProcessingErrorMessage is returned with 500 responses.
const ProcessingErrorMessage = "Error processing the birthdate"

// ============================================================================
// Request DTOs
// ============================================================================

// BirthdateParam is the query parameter read by GET /horoscope
const BirthdateParam = "birthdate"

// ============================================================================
// Response DTOs
// ============================================================================

// HoroscopeResponse is the success body of GET /horoscope
type HoroscopeResponse struct {
	ZodiacSign string `json:"zodiacSign"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// ValidationErrorResponse is the body of every 400 response
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// ErrorResponse is the body of every 500 response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// Converters
// ============================================================================

// ToHoroscopeResponse converts a sign to its response body
func ToHoroscopeResponse(sign domain.ZodiacSign) HoroscopeResponse {
	return HoroscopeResponse{ZodiacSign: string(sign)}
}

// NewBirthdateValidationError reports value as an invalid birthdate query
// parameter.
func NewBirthdateValidationError(value string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Errors: []FieldError{{
			Type:     "field",
			Value:    value,
			Msg:      domain.InvalidBirthdateMessage,
			Path:     BirthdateParam,
			Location: "query",
		}},
	}
}
