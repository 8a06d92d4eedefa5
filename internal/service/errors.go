package service

// ValidationError reports malformed or out-of-contract input. The message is
// surfaced verbatim to the API caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}
