package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotBlank(t *testing.T) {
	type payload struct {
		Name string `validate:"notblank"`
	}

	tests := []struct {
		value string
		valid bool
	}{
		{"Lớp 10A", true},
		{"", true},
		{" \t\n", false},
		{" x ", true},
	}
	for _, tt := range tests {
		err := GetValidator().ValidateStruct(payload{Name: tt.value})
		if tt.valid {
			assert.NoError(t, err, "value %q", tt.value)
		} else {
			assert.Error(t, err, "value %q", tt.value)
		}
	}
}

func TestFormatValidationError(t *testing.T) {
	type payload struct {
		Name   string `validate:"required"`
		Cost   int    `validate:"min=1"`
		Reason string `validate:"max=3"`
		ID     string `validate:"uuid"`
		Other  string `validate:"email"`
	}

	err := GetValidator().ValidateStruct(payload{Cost: 0, Reason: "toolong", ID: "x", Other: "y"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "Must be at least 1", fields["cost"])
	assert.Equal(t, "Must be at most 3", fields["reason"])
	assert.Equal(t, "Must be a valid ID", fields["id"])
	assert.Equal(t, "Invalid value", fields["other"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
