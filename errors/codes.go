package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors raised during configuration resolution.
const (
	// ErrCodeInvalidInput indicates a setting has an invalid value.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingSetting indicates a required setting is absent.
	ErrCodeMissingSetting ErrorCode = "MISSING_SETTING"
	// ErrCodeConflictingSettings indicates two settings are mutually exclusive.
	ErrCodeConflictingSettings ErrorCode = "CONFLICTING_SETTINGS"
	// ErrCodeIncompatibleSettings indicates a setting combination is not supported.
	ErrCodeIncompatibleSettings ErrorCode = "INCOMPATIBLE_SETTINGS"
)

// Collaborator errors surfaced unchanged by the resolver.
const (
	// ErrCodeClientConstruction indicates the HTTP client could not be built.
	ErrCodeClientConstruction ErrorCode = "CLIENT_CONSTRUCTION"
	// ErrCodeSecretUnavailable indicates a secret value could not be revealed.
	ErrCodeSecretUnavailable ErrorCode = "SECRET_UNAVAILABLE"
)
