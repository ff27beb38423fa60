package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground struct validation and converts its
// failures into the ValidationErrors shape handlers serialize.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs struct tag validation and returns nil when the value is
// valid.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Rule    string      `json:"rule"`
	Value   interface{} `json:"value,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// ToValidationErrors converts go-playground errors into our shape.
func ToValidationErrors(err error) ValidationErrors {
	var out ValidationErrors

	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			out = append(out, ValidationError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageFor(fe),
				Rule:    fe.Tag(),
				Value:   fe.Value(),
			})
		}
		return out
	}

	return ValidationErrors{{Field: "", Message: err.Error(), Rule: "struct"}}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
