package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Validation errors: empty required fields, bad arguments. The
	// command aborts without mutating any state.
	ErrValidation      = "VALIDATION_FAILED"
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrInvalidInput    = "INVALID_INPUT"

	// Not-found errors: missing record or missing content file. Reported
	// inline; the session or process continues.
	ErrNotFound = "NOT_FOUND"

	// Editor errors: the external process failed to start. No file or
	// record is mutated.
	ErrEditorLaunch = "EDITOR_LAUNCH_FAILED"

	// Store errors: the underlying persistence layer failed. Fatal for
	// the current command.
	ErrStore = "STORE_ERROR"

	// File errors
	ErrFileRead  = "FILE_READ_ERROR"
	ErrFileWrite = "FILE_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
