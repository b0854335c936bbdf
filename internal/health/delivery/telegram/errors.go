package telegram

import (
	"errors"

	"health-tracker/internal/health"
)

const (
	msgGenericError = "Something went wrong while processing your message. Please try again."
	msgEmptyMessage = "Please send some text describing your exercise or meal."
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, health.ErrEmptyInput):
		return msgEmptyMessage
	default:
		return msgGenericError
	}
}
