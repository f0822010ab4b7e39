package validator

import (
	"strings"
	"testing"

	"qrattendance/errors"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "Alice", wantErr: false},
		{input: "  Alice  ", wantErr: false},
		{input: "", wantErr: true},
		{input: " \t\n", wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !errors.HasCode(err, errors.ErrCodeRequiredField) {
			t.Fatalf("expected REQUIRED_FIELD, got %v", err)
		}
	}
}

func TestValidateStructNamesFailingFields(t *testing.T) {
	type sample struct {
		SecretKey string `validate:"required"`
		Driver    string `validate:"oneof=sheets memory"`
	}

	err := ValidateStruct(sample{Driver: "mongo"})
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
	msg := errors.GetAppError(err).Message
	if !strings.Contains(msg, "SecretKey (required)") || !strings.Contains(msg, "Driver (oneof)") {
		t.Fatalf("unexpected message %q", msg)
	}

	if err := ValidateStruct(sample{SecretKey: "s", Driver: "memory"}); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}
