package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	logger *log.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle turns err into a user-facing error for operation. Not-found errors
// are logged at debug level and swallowed: acting on a task that no longer
// exists leaves the list as it was.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if eh.IsNotFoundError(err) {
		eh.debug("ignored missing task", operation, err)
		return nil
	}
	if errors.ShouldLogError(err) && eh.logger != nil {
		eh.logger.Error("operation failed", append([]interface{}{"op", operation, "err", err}, appErrorFields(err)...)...)
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

func (eh *ErrorHandler) debug(msg, operation string, err error) {
	if eh.logger == nil {
		return
	}
	eh.logger.Debug(msg, append([]interface{}{"op", operation}, appErrorFields(err)...)...)
}

func appErrorFields(err error) []interface{} {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Fields()
	}
	return nil
}
