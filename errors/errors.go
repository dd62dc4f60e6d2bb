package errors

import "fmt"

// ConfigError is the unified configuration error type. Every validation
// failure during resolution aborts with one of these; no partial
// configuration is ever returned alongside it.
type ConfigError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message naming the violated rule.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *ConfigError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *ConfigError) WithCause(cause error) *ConfigError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *ConfigError) WithDetail(key string, value any) *ConfigError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new ConfigError.
func New(code ErrorCode, message string) *ConfigError {
	return &ConfigError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidInput creates a new ConfigError for a setting with an invalid value.
func InvalidInput(setting, reason string) *ConfigError {
	return &ConfigError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid value for %s: %s", setting, reason),
		Details: map[string]any{"setting": setting},
	}
}

// MissingSetting creates a new ConfigError for a required setting that is absent.
func MissingSetting(setting, reason string) *ConfigError {
	return &ConfigError{
		Code: ErrCodeMissingSetting, Message: reason,
		Details: map[string]any{"setting": setting},
	}
}

// Conflicting creates a new ConfigError for two settings that cannot be used together.
func Conflicting(a, b, reason string) *ConfigError {
	return &ConfigError{
		Code: ErrCodeConflictingSettings, Message: reason,
		Details: map[string]any{"settings": []string{a, b}},
	}
}

// Incompatible creates a new ConfigError for a setting combination that is not supported.
func Incompatible(reason string) *ConfigError {
	return &ConfigError{
		Code: ErrCodeIncompatibleSettings, Message: reason,
	}
}

// Validation creates a new ConfigError with a plain validation message.
func Validation(message string) *ConfigError {
	return &ConfigError{
		Code: ErrCodeInvalidInput, Message: message,
	}
}

// ClientConstruction wraps an error returned by the HTTP client constructor.
func ClientConstruction(cause error) *ConfigError {
	return &ConfigError{
		Code: ErrCodeClientConstruction, Message: "failed to construct HTTP client",
		Cause: cause,
	}
}

// SecretUnavailable creates a new ConfigError for a secret that could not be read.
func SecretUnavailable(setting string, cause error) *ConfigError {
	return &ConfigError{
		Code: ErrCodeSecretUnavailable, Message: fmt.Sprintf("Unable to read secret value for %s", setting),
		Details: map[string]any{"setting": setting}, Cause: cause,
	}
}
