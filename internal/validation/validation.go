// Package validation checks request payloads against their `validate` struct
// tags and reports the first failing field as a readable message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError describes the first constraint a payload failed.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e *FieldError) Error() string {
	switch e.Tag {
	case "required", "notblank":
		return fmt.Sprintf("%s should not be empty", e.Field)
	case "min", "gte":
		return fmt.Sprintf("%s must not be less than %s", e.Field, e.Param)
	case "max", "lte":
		return fmt.Sprintf("%s must not be greater than %s", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that names fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		// Only fails for an empty tag or nil func.
		panic(err)
	}
	return &Validator{validate: v}
}

// Struct validates input. It returns nil when every constraint holds, a
// *FieldError for the first field that fails, or the validator's own error
// when input cannot be validated at all.
func (v *Validator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	return &FieldError{Field: first.Field(), Tag: first.Tag(), Param: first.Param()}
}
