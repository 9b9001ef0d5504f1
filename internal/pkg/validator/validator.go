// Package validator wraps go-playground/validator with the error format used
// across the service. Field names in messages come from the envconfig tag
// when present, so configuration errors name the environment variable.
package validator

import (
	"errors"
	"fmt"
	"reflect"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'ETHERSCAN_API_KEY': value '' does not meet the requirements for the 'required_if' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(fieldName)
}

// fieldName reports the envconfig variable name of a field, or its Go name.
func fieldName(f reflect.StructField) string {
	if name := f.Tag.Get("envconfig"); name != "" && name != "-" {
		return name
	}

	return f.Name
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // report the misconfiguration
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
