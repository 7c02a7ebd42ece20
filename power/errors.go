// Package power defines the vocabulary shared by all the power and area
// models: frequency, energy metric, per-component results and configuration
// errors.
package power

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports an unknown name or a parameter outside of its
// valid range. An estimate that hits one is abandoned as a whole.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}

	return fmt.Sprintf("configuration error: %s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) succeed.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// MustBePositive returns a ConfigurationError if v is not greater than 0.
func MustBePositive(field string, v float64) error {
	if v > 0 {
		return nil
	}

	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf("must be positive, got %g", v),
	}
}

// MustNotBeNegative returns a ConfigurationError if v is less than 0.
func MustNotBeNegative(field string, v float64) error {
	if v >= 0 {
		return nil
	}

	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf("must not be negative, got %g", v),
	}
}
