package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRateNotFound is returned when a rate id does not exist.
	ErrRateNotFound = errors.New("rate not found")
	// ErrConversionNotFound is returned when a conversion id does not exist.
	ErrConversionNotFound = errors.New("conversion not found")
	// ErrRateUnavailable is returned when neither the store nor any provider
	// can price a pair.
	ErrRateUnavailable = errors.New("rate not available")
	// ErrPatchNotAllowed is returned for updates of immutable conversions.
	ErrPatchNotAllowed = errors.New("PATCH method not allowed for conversions")
	// ErrStoreUnavailable marks a write that required durability against an
	// unreachable store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError lists every violated constraint of a request.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Details, "; ")
}

func newValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func validationDetail(field, constraint string) string {
	return fmt.Sprintf("%s: %s", field, constraint)
}
