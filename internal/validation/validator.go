package validation

import (
	"strings"
	"unicode/utf8"

	"todo-list/internal/config"
)

// DefaultRequiredMessage is shown under the input when a task is submitted empty.
const DefaultRequiredMessage = "This field is required!"

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength reports whether s, counted in runes, is at most max
// characters. A max of zero or less means unlimited.
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	if max <= 0 {
		return true
	}
	return utf8.RuneCountInString(s) <= max
}

func (v *Validator) textMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TextMaxLength
	}
	return 0
}

func (v *Validator) requiredMessage() string {
	if v.config != nil && v.config.Validation.RequiredMessage != "" {
		return v.config.Validation.RequiredMessage
	}
	return DefaultRequiredMessage
}
