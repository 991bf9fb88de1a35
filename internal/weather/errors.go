package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrPlaceNotFound is returned when geocoding resolves to nothing.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrNoData supplies the generic FetchError reason when an upstream
	// call fails without a provider-supplied message.
	ErrNoData = errors.New("no weather data")

	// ErrMalformedPayload is returned when a required field is missing or
	// has the wrong shape in an upstream payload.
	ErrMalformedPayload = errors.New("malformed provider payload")
)

// FetchError is the single error surfaced by the aggregator for any upstream
// failure; Reason carries the provider's human-readable message when one was
// available.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Reason != "" {
		return "weather fetch failed: " + e.Reason
	}
	return "weather fetch failed: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// newFetchError wraps an upstream error, preserving sentinel identity for
// errors.Is while attaching the readable reason. A provider response that
// carried no message falls back to the generic no-data reason.
func newFetchError(err error) error {
	if err == nil {
		err = ErrNoData
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}

	reason := err.Error()
	var provErr *ProviderError
	if errors.As(err, &provErr) && provErr.Message == "" {
		reason = ErrNoData.Error()
	}
	return &FetchError{Reason: reason, Err: err}
}

// ProviderError carries a non-2xx provider response: its HTTP status and the
// message body field, e.g. {"cod":"404","message":"city not found"}.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("provider returned %d", e.Status)
}
