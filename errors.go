package sparks

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a pool, preset or config file
// describes something the simulation cannot run, such as a zero capacity.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	// Op is the operation that failed (e.g., "sparks.NewParticlesState").
	Op string
	// Field names the offending setting, if any.
	Field string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// invalid builds a ConfigError wrapping ErrInvalidConfiguration.
func invalid(op, field, format string, args ...any) error {
	return &ConfigError{
		Op:    op,
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...)),
	}
}
