package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Configuration errors - fatal at startup, the process must not
	// open a listener when one of these is returned.
	ErrorTypeMissingKey ErrorType = "CONFIG_MISSING_KEY"
	ErrorTypeCoercion   ErrorType = "CONFIG_COERCION"
	ErrorTypeInvalid    ErrorType = "CONFIG_INVALID"

	// Request errors
	ErrorTypeRateLimit ErrorType = "RATE_LIMIT"
	ErrorTypeInternal  ErrorType = "INTERNAL"
)

// ConfigError describes why a configuration value could not be loaded.
// Key is the environment variable name the value resolves from.
type ConfigError struct {
	Type    ErrorType
	Key     string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (caused by: %v)", e.Type, e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Key, e.Message)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// MissingKey reports a required environment variable that resolved to
// no value from any source.
func MissingKey(key string) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeMissingKey,
		Key:     key,
		Message: "required value is missing",
	}
}

// Coercion reports a value that could not be converted to the declared type.
func Coercion(key, value, kind string, cause error) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeCoercion,
		Key:     key,
		Message: fmt.Sprintf("cannot parse %q as %s", value, kind),
		Cause:   cause,
	}
}

// Invalid reports a value that parsed but failed validation.
func Invalid(key, message string) *ConfigError {
	return &ConfigError{
		Type:    ErrorTypeInvalid,
		Key:     key,
		Message: message,
	}
}

// IsConfigError reports whether err (or anything it wraps) is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
