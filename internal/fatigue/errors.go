package fatigue

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. The typed errors below unwrap to
// these, so callers can branch on the category without caring about details.
var (
	ErrValidation       = errors.New("validation failed")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrInsufficientData = errors.New("insufficient data")
)

// ValidationError reports a raw input field the clamping policy cannot repair,
// such as an unrecognized time-of-day value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// SchemaMismatchError reports a feature vector whose length does not match the
// canonical ordering a model was trained on.
type SchemaMismatchError struct {
	Want int
	Got  int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("feature vector has %d values, expected %d", e.Got, e.Want)
}

func (e *SchemaMismatchError) Unwrap() error { return ErrSchemaMismatch }

// InsufficientDataError reports a dataset too small for the requested
// operation, e.g. a minority class without interpolation neighbors.
type InsufficientDataError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d samples, got %d", e.Op, e.Need, e.Got)
}

func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }
