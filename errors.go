package nandoku

import "errors"

// Sentinel errors for the place-data API. Callers map these onto HTTP
// status codes (404 and 500 respectively).
var (
	ErrPlaceNotFound    = errors.New("place not found")
	ErrPlaceUnavailable = errors.New("place data source unavailable")
)

// GenerationError classifies any failure of a distractor generation
// attempt: transport errors, backend errors, malformed responses, or a
// recovered panic. The caller decides the fallback policy.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "distractor generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }
