package validation

import (
	"todo-list/internal/config"
)

// FieldText is the name of the task text input field.
const FieldText = "text"

// TaskValidator validates user input before a task is created.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honoring configured limits.
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateText validates the text of a new task. Text is kept as typed, so
// only the empty string is rejected.
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	if text == "" {
		validationError.AddRequiredError(FieldText, tv.validator.requiredMessage())
		return validationError
	}

	if max := tv.validator.textMaxLength(); !tv.validator.IsWithinMaxLength(text, max) {
		validationError.AddInvalidLengthError(FieldText, text, max)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidText returns text unchanged if it is valid
func (tv *TaskValidator) GetValidText(text string) (string, error) {
	if err := tv.ValidateText(text); err != nil {
		return "", err
	}
	return text, nil
}

// ValidateTaskRef validates a reference typed by the user to select a task.
func (tv *TaskValidator) ValidateTaskRef(ref string) error {
	if !tv.validator.IsNonEmptyString(ref) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task", ref, "a position or id is required")
		return validationError
	}
	return nil
}
