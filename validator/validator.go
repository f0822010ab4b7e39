package validator

import (
	"fmt"
	"strings"

	"qrattendance/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeName trims surrounding whitespace from a submitted name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName rejects names that are empty after trimming.
func ValidateName(name string) error {
	if NormalizeName(name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name cannot be empty.", errors.ErrEmptyName)
	}
	return nil
}

// ValidateStruct runs the `validate` tags of v and flattens failures into
// a single INVALID_CONFIG error naming every offending field.
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.ErrCodeInvalidConfig, "invalid configuration", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return errors.NewAppError(errors.ErrCodeInvalidConfig,
		"invalid configuration: "+strings.Join(fields, ", "), err)
}
