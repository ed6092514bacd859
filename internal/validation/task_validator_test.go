package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
)

func TestTaskValidator_ValidateText(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid text", "Buy milk", false, ""},
		{"Empty text", "", true, ErrorTypeRequired},
		{"Whitespace only is kept as typed", "   ", false, ""},
		{"Any characters allowed", "Task@#$% ✓", false, ""},
		{"Long text allowed by default", strings.Repeat("a", 1000), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateText(tt.input)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.errorType, validationErr.Errors[0].Type)
			assert.Equal(t, FieldText, validationErr.Errors[0].Field)
		})
	}
}

func TestTaskValidator_RequiredMessage(t *testing.T) {
	t.Run("default message", func(t *testing.T) {
		err := NewTaskValidator().ValidateText("")
		require.Error(t, err)
		assert.Equal(t, DefaultRequiredMessage, err.(*ValidationError).FieldMessage(FieldText))
	})

	t.Run("configured message", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Validation.RequiredMessage = "Esse campo é obrigatório!"

		err := NewTaskValidatorWithConfig(cfg).ValidateText("")
		require.Error(t, err)
		assert.Equal(t, "Esse campo é obrigatório!", err.(*ValidationError).GetUserFriendlyMessage())
	})
}

func TestTaskValidator_ConfiguredMaxLength(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TextMaxLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	assert.NoError(t, validator.ValidateText("hello"))

	err := validator.ValidateText("hello world")
	require.Error(t, err)
	assert.Equal(t, ErrorTypeInvalidLength, err.(*ValidationError).Errors[0].Type)
}

func TestTaskValidator_GetValidText(t *testing.T) {
	validator := NewTaskValidator()

	text, err := validator.GetValidText("  Walk  the dog\t")
	require.NoError(t, err)
	assert.Equal(t, "  Walk  the dog\t", text)

	text, err = validator.GetValidText("")
	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestTaskValidator_ValidateTaskRef(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskRef("1"))
	assert.NoError(t, validator.ValidateTaskRef("3f2a"))
	assert.Error(t, validator.ValidateTaskRef(""))
	assert.Error(t, validator.ValidateTaskRef("  "))
}
